// SPDX-License-Identifier: MIT

// Package parallel splits an index range into contiguous chunks and runs them
// on a bounded number of goroutines. It is used by matrix.Mul to fill result
// rows; callers must write disjoint outputs per index.
package parallel

import "sync"

// DefaultMinChunkSize is the smallest index range handed to one goroutine.
const DefaultMinChunkSize = 16

// Config controls parallel execution behavior.
type Config struct {
	Workers      int // goroutines to use; <= 1 means sequential
	MinChunkSize int // minimum indices per goroutine to avoid overhead
}

// ForRange calls f(lo, hi) for contiguous, non-overlapping ranges covering [0, n).
// Falls back to a single f(0, n) call when parallelism is disabled or n is too small.
// It returns after every range has been processed.
func ForRange(n int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	minChunk := cfg.MinChunkSize
	if minChunk < 1 {
		minChunk = DefaultMinChunkSize
	}
	if cfg.Workers <= 1 || n < 2*minChunk {
		f(0, n) // sequential fallback
		return
	}

	chunkSize := max((n+cfg.Workers-1)/cfg.Workers, minChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(start, end)
	}
	wg.Wait()
}
