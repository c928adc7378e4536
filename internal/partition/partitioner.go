// Package partition implements the pSCAN engine's work partitioner
// (spec Component E): it splits a vertex or core range into contiguous
// chunks whose summed degree stays under a phase-specific threshold, then
// runs one task per chunk on a bounded worker pool, joining before
// returning - the Bulk-Synchronous-Parallel join barrier spec Section 5
// requires between phases.
//
// Grounded on the teacher's service/parallel_executor.go goroutine+channel
// shape, rewritten on top of sourcegraph/conc's worker pool the way
// github.com/ludo-technologies/jscan's service/parallel_executor.go adopts
// golang.org/x/sync/errgroup in place of hand-rolled WaitGroup bookkeeping.
package partition

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Range is a half-open [Start, End) index range over a vertex or core
// array, assigned as one task to the worker pool.
type Range struct {
	Start, End int
}

// Weigher returns the cost (typically vertex degree) of index i, used to
// decide when a growing range has accumulated enough work to submit.
type Weigher func(i int) int64

// BuildRanges greedily grows [start, i] while the summed weight of members
// stays at or under threshold; once it's exceeded, the range is closed and
// a new one starts at i+1. A final trailing range is always emitted for
// any remainder, even if empty ranges are never produced for n==0.
//
// This is a pure function so the chunking policy (spec's "performance
// tuning defaults, not correctness-critical") can be unit-tested without
// spinning up goroutines.
func BuildRanges(n int, weight Weigher, threshold int64) []Range {
	if n <= 0 {
		return nil
	}
	if threshold <= 0 {
		threshold = 1
	}

	var ranges []Range
	start := 0
	var sum int64
	for i := 0; i < n; i++ {
		sum += weight(i)
		if sum > threshold {
			ranges = append(ranges, Range{Start: start, End: i + 1})
			start = i + 1
			sum = 0
		}
	}
	if start < n {
		ranges = append(ranges, Range{Start: start, End: n})
	}
	return ranges
}

// EqualSlabs splits [0, n) into contiguous slabs of max(1, n/workerCount)
// elements each, the last slab holding whatever is left over (so there can
// be more slabs than workerCount), used by the MarkMinId phase per spec's
// partition table
// ("max(1, n / worker_count) equal-size slabs").
func EqualSlabs(n, workerCount int) []Range {
	if n <= 0 {
		return nil
	}
	if workerCount < 1 {
		workerCount = 1
	}
	step := n / workerCount
	if step < 1 {
		step = 1
	}

	var ranges []Range
	for start := 0; start < n; start += step {
		end := start + step
		if end > n {
			end = n
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}

// resolveWorkers maps the request's WorkerCount convention (0 = auto) onto
// an actual concurrency limit.
func resolveWorkers(workerCount int) int {
	if workerCount > 0 {
		return workerCount
	}
	return runtime.NumCPU()
}

// Run submits one task per range to a worker pool bounded at workerCount
// goroutines (0 = runtime.NumCPU()) and blocks until every task completes -
// the phase-end join barrier. task panics propagate out of Run once every
// other task has finished, matching conc's "don't let a worker's panic
// vanish silently" guarantee.
func Run(ranges []Range, workerCount int, task func(start, end int)) {
	if len(ranges) == 0 {
		return
	}
	p := pool.New().WithMaxGoroutines(resolveWorkers(workerCount))
	for _, r := range ranges {
		r := r
		p.Go(func() {
			task(r.Start, r.End)
		})
	}
	p.Wait()
}

// RunCollecting is Run's variant for phases whose tasks produce a
// per-task local buffer that must be concatenated after the join (spec's
// ClusterNonCore phase: "Worker tasks return buffers; the driver
// concatenates them into the final noncore_cluster list"). Task order in
// the result is not meaningful - callers must not depend on it.
func RunCollecting[T any](ranges []Range, workerCount int, task func(start, end int) []T) []T {
	if len(ranges) == 0 {
		return nil
	}
	rp := pool.NewWithResults[[]T]().WithMaxGoroutines(resolveWorkers(workerCount))
	for _, r := range ranges {
		r := r
		rp.Go(func() []T {
			return task(r.Start, r.End)
		})
	}
	buffers := rp.Wait()

	var total int
	for _, b := range buffers {
		total += len(b)
	}
	out := make([]T, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}
