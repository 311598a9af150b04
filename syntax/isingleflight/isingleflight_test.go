package isingleflight

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDeduplicates(t *testing.T) {
	var g Group[[]string]
	var calls int32
	release := make(chan struct{})

	fn := func() ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"a", "b"}, nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([][]string, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			v, _, err := g.Do("ns", fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// 等所有 goroutine 进入 Do
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, []string{"a", "b"}, r)
	}
}

func TestGroupError(t *testing.T) {
	var g Group[int]
	boom := errors.New("boom")

	v, _, err := g.Do("k", func() (int, error) { return 7, boom })
	assert.Equal(t, boom, err)
	assert.Zero(t, v)

	v, shared, err := g.Do("k", func() (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.False(t, shared)
	assert.Equal(t, 3, v)
}
