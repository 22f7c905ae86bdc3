package combin

import "math"

// Value is the set of integer widths an Engine can operate at.
//
//   - int32 — limit 2^31−1 total combinations; half the table memory.
//   - int64 — limit 2^63−1; one of the largest feasible cases is
//     66 choose 33 = 7,219,428,434,016,265,740.
//
// Table construction, ranking and unranking are identical algorithms
// performed at the corresponding width.
type Value interface {
	int32 | int64
}

// Engine is an immutable rank/unrank codec for K-element combinations
// of {0..N-1}. Construct once with New (amortizing the O(N·K) table
// build), then call Rank and Unrank freely; after construction the
// engine is read-only and safe for concurrent use as long as callers
// do not share output buffers across calls.
type Engine[V Value] struct {
	n     int // item count N, N > K
	k     int // group size K, K ≥ 1
	total V   // C(N,K), fits V by construction

	// K−1 index tables in one flat arena: row i (0 = most significant)
	// spans data[offs[i] : offs[i]+N−i] and holds C(j, K−i) at column j.
	// Both slices stay nil in the K=1 degenerate case.
	data []V
	offs []int
}

// Total returns C(N,K), the number of ranks the engine addresses.
// Complexity: O(1).
func (e *Engine[V]) Total() V {
	return e.total
}

// Items returns N, the number of distinct items.
// Complexity: O(1).
func (e *Engine[V]) Items() int {
	return e.n
}

// GroupSize returns K, the number of items per combination.
// Complexity: O(1).
func (e *Engine[V]) GroupSize() int {
	return e.k
}

// Rows returns the number of index tables, K−1 (0 when K=1).
// Complexity: O(1).
func (e *Engine[V]) Rows() int {
	return len(e.offs)
}

// Row returns a copy of index table i for diagnostic and testing use.
// Row i has length N−i and satisfies Row(i)[j] == C(j, K−i).
// A copy is returned so the arena stays immutable.
// Complexity: O(N−i) time and memory.
func (e *Engine[V]) Row(i int) ([]V, error) {
	if i < 0 || i >= len(e.offs) {
		return nil, ErrRowIndex
	}
	src := e.row(i)
	dst := make([]V, len(src))
	copy(dst, src)

	return dst, nil
}

// row returns the live arena slice for table i. Internal use only;
// callers must never mutate it after construction.
func (e *Engine[V]) row(i int) []V {
	return e.data[e.offs[i] : e.offs[i]+e.n-i]
}

// widthCeiling reports the maximum total V can represent.
func widthCeiling[V Value]() uint64 {
	switch any(V(0)).(type) {
	case int32:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}
