package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	assert.Equal(t, 3, pool.Workers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.Workers())
}

func TestBlocksCoversEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 97, 1000} {
		hits := make([]int32, n)
		pool.Blocks(n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestChunksCoversEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, grain := range []int{0, 1, 7, 64, 500} {
		n := 333
		hits := make([]int32, n)
		pool.Chunks(n, grain, func(lo, hi int) {
			assert.LessOrEqual(t, hi-lo, max(grain, 1))
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("grain=%d: index %d visited %d times", grain, i, h)
			}
		}
	}
}

func TestEmptyRange(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.Blocks(0, func(lo, hi int) { called = true })
	pool.Chunks(-1, 4, func(lo, hi int) { called = true })
	assert.False(t, called)
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var sum int64
	pool.Chunks(100, 10, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sum += int64(i)
		}
	})
	assert.Equal(t, int64(4950), sum)
}

func TestChunksContext(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	err := pool.ChunksContext(context.Background(), 100, 8, func(_ context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			total.Add(int64(i))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4950), total.Load())

	boom := errors.New("bad pair")
	err = pool.ChunksContext(context.Background(), 100, 8, func(_ context.Context, lo, hi int) error {
		if lo <= 50 && 50 < hi {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pool.ChunksContext(ctx, 100, 8, func(context.Context, int, int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkChunks(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.Chunks(len(data), 1024, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				data[i] += 1
			}
		})
	}
}

func TestCloseDuringUse(t *testing.T) {
	for range 20 {
		pool := New(4)
		const callers, n = 8, 200

		var wg sync.WaitGroup
		var total atomic.Int64
		for c := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fn := func(lo, hi int) { total.Add(int64(hi - lo)) }
				if c%2 == 0 {
					pool.Blocks(n, fn)
				} else {
					pool.Chunks(n, 7, fn)
				}
			}()
		}
		pool.Close()
		wg.Wait()
		require.Equal(t, int64(callers*n), total.Load())
	}
}
