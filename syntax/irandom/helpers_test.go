package irandom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// countingSource 记录消耗的字节数
type countingSource struct {
	src   ByteSource
	drawn int
}

func (c *countingSource) Bytes(n int) ([]byte, error) {
	c.drawn += n
	return c.src.Bytes(n)
}

func constant(b byte) ByteSource {
	return SourceFunc(func(n int) ([]byte, error) {
		out := make([]byte, n)
		for i := range out {
			out[i] = b
		}
		return out, nil
	})
}

func failing() ByteSource {
	return SourceFunc(func(int) ([]byte, error) { return nil, errBoom })
}

func requireMembers(t *testing.T, s string, alphabet string) {
	t.Helper()
	allowed := make(map[rune]bool)
	for _, c := range alphabet {
		allowed[c] = true
	}
	for i, c := range s {
		require.Truef(t, allowed[c], "char %q at %d not in %q", c, i, alphabet)
	}
}
