// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernel.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, worker count never changes results.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "github.com/katalvlaran/linalg/internal/parallel"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines Mul uses. 1 ⇒ sequential.
	DefaultWorkers = 1

	// DefaultMinRowsPerWorker is the smallest row chunk handed to one worker.
	// Products with fewer result rows than this run sequentially.
	DefaultMinRowsPerWorker = parallel.DefaultMinChunkSize
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicMinRowsInvalid = "matrix: WithMinRowsPerWorker: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	workers          int // >= 1; DefaultWorkers
	minRowsPerWorker int // >= 1; DefaultMinRowsPerWorker
}

// WithWorkers sets how many goroutines Mul may use to fill result rows.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - Each result cell is still reduced sequentially over k ascending, so results
//     are bit-identical to the sequential kernel for any n.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinRowsPerWorker sets the chunk floor for parallel Mul.
// Panics when n < 1.
func WithMinRowsPerWorker(n int) Option {
	if n < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRowsPerWorker = n }
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// MinRowsPerWorker reports the resolved chunk floor.
func (o Options) MinRowsPerWorker() int { return o.minRowsPerWorker }

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over the documented defaults.
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//   - Stage 2: apply setters in order; last-writer-wins.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:          DefaultWorkers,
		minRowsPerWorker: DefaultMinRowsPerWorker,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}

	return o
}
