package parallel

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForRange_VisitsEveryIndexOnce(t *testing.T) {
	cfg := Config{Workers: 4, MinChunkSize: 8}

	n := 1000
	hits := make([]int32, n)
	ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i) // visited exactly once
	}
}

func TestForRange_Sequential(t *testing.T) {
	cfg := Config{Workers: 1}

	calls := 0
	ForRange(100, func(lo, hi int) {
		calls++
		require.Equal(t, 0, lo)
		require.Equal(t, 100, hi)
	}, cfg)

	require.Equal(t, 1, calls)
}

func TestForRange_CoversDisjoint(t *testing.T) {
	cfg := Config{Workers: 3, MinChunkSize: 4}

	var mu sync.Mutex
	var spans [][2]int
	ForRange(50, func(lo, hi int) {
		mu.Lock()
		spans = append(spans, [2]int{lo, hi})
		mu.Unlock()
	}, cfg)

	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	require.Greater(t, len(spans), 1) // actually split
	next := 0
	for _, s := range spans {
		require.Equal(t, next, s[0]) // contiguous, no overlap
		require.Less(t, s[0], s[1])  // non-empty
		next = s[1]
	}
	require.Equal(t, 50, next) // full coverage
}

func TestForRange_SmallFallsBack(t *testing.T) {
	cfg := Config{Workers: 8, MinChunkSize: 16}

	calls := 0
	ForRange(20, func(lo, hi int) {
		calls++
		require.Equal(t, 0, lo)
		require.Equal(t, 20, hi)
	}, cfg)

	require.Equal(t, 1, calls) // below 2*MinChunkSize runs inline
}

func TestForRange_ZeroMinChunkUsesDefault(t *testing.T) {
	cfg := Config{Workers: 8}

	calls := 0
	ForRange(2*DefaultMinChunkSize-1, func(_, _ int) { calls++ }, cfg)
	require.Equal(t, 1, calls) // default chunk keeps small ranges inline
}

func TestForRange_Empty(t *testing.T) {
	ForRange(0, func(lo, hi int) {
		t.Fatalf("unexpected call %d..%d", lo, hi)
	}, Config{Workers: 4})
}

func BenchmarkForRange(b *testing.B) {
	n := 10000
	sum := func(cfg Config) {
		var total int64
		ForRange(n, func(lo, hi int) {
			var local int64
			for k := lo; k < hi; k++ {
				local += int64(k)
			}
			atomic.AddInt64(&total, local)
		}, cfg)
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum(Config{Workers: 4, MinChunkSize: DefaultMinChunkSize})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sum(Config{Workers: 1})
		}
	})
}
