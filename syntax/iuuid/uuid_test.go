package iuuid

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/isource"
)

func TestV4(t *testing.T) {
	id, err := V4(isource.Counting())
	require.NoError(t, err)
	assert.Equal(t, "00010203-0405-4607-8809-0a0b0c0d0e0f", id)

	id, err = V4(isource.Crypto())
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, id)
}

func TestV4ShortRead(t *testing.T) {
	_, err := V4(isource.FromReader(strings.NewReader("short")))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = V4(irandom.SourceFunc(func(n int) ([]byte, error) { return []byte{1}, nil }))
	assert.ErrorIs(t, err, irandom.ErrShortRead)
}
