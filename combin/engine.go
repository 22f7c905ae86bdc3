package combin

import "github.com/katalvlaran/combinadic/binom"

// New constructs an Engine for K-element combinations of {0..N-1} at
// width V.
// Stage 1 (Validate): K ≥ 1 and N > K, else ErrGroupSize / ErrItemCount.
// Stage 2 (Feasibility): C(N,K) is computed through the checked wide
// path and compared against V's ceiling — overflow is detected before
// any table is allocated, so a partially built engine never escapes.
// Stage 3 (Build): the K−1 index tables are constructed eagerly; the
// engine is immutable from here on.
// Complexity: O(N·K) time and memory.
func New[V Value](n, k int) (*Engine[V], error) {
	// Validate the inputs.
	if k < 1 {
		return nil, ErrGroupSize
	}
	if n <= k {
		return nil, ErrItemCount
	}
	// Feasibility check against the width ceiling.
	wide, err := binom.Binomial(n, k)
	if err != nil || wide > widthCeiling[V]() {
		return nil, ErrOverflow
	}

	e := &Engine[V]{n: n, k: k, total: V(wide)}
	e.buildTables()

	return e, nil
}

// New32 constructs a 32-bit engine (total limited to 2^31−1).
func New32(n, k int) (*Engine[int32], error) {
	return New[int32](n, k)
}

// New64 constructs a 64-bit engine (total limited to 2^63−1).
func New64(n, k int) (*Engine[int64], error) {
	return New[int64](n, k)
}

// Rank maps a combination tuple to its rank in [0, Total()).
//
// When sorted is true the caller asserts tuple is strictly descending;
// when false the tuple is first normalized in place into descending
// order, and the returned rank matches that sorted interpretation.
// The tuple is validated defensively: each element must lie in its
// position's domain (0 ≤ tuple[i] < N−i after sorting) and all elements
// must be distinct — a wrong-but-plausible rank is never produced.
//
// For the 13-choose-5 poker layout, the tuple (12,11,10,9,8) — the
// A-K-Q-J-T rank group — maps to 1286, the highest rank.
// Complexity: O(K), plus O(K log K) when normalization runs.
func (e *Engine[V]) Rank(tuple []int, sorted bool) (V, error) {
	if len(tuple) != e.k {
		return 0, ErrTupleLength
	}
	// N choose 1: the bijection is the identity.
	if e.k == 1 {
		if tuple[0] < 0 || tuple[0] >= e.n {
			return 0, ErrIndexRange
		}

		return V(tuple[0]), nil
	}
	if !sorted {
		SortDescending(tuple)
	}
	// Validate domain and strict descent in one pass.
	var i int
	for i = 0; i < e.k; i++ {
		if tuple[i] < 0 || tuple[i] >= e.n-i {
			return 0, ErrIndexRange
		}
		if i > 0 && tuple[i] >= tuple[i-1] {
			if tuple[i] == tuple[i-1] {
				return 0, ErrDuplicateIndex
			}

			return 0, ErrUnsorted
		}
	}

	// Accumulate one table cell per significant position, then the
	// least significant element contributes itself.
	var r V
	for i = 0; i < e.k-1; i++ {
		r += e.row(i)[tuple[i]]
	}
	r += V(tuple[e.k-1])

	return r, nil
}

// Unrank maps a rank back to its combination, writing the strictly
// descending tuple into out (len(out) must equal K). This is the exact
// inverse of Rank: for every valid r, Rank(out, true) == r afterwards.
//
// Decoding is a greedy largest-fit per table: scanning row i from its
// highest column downward, the first cell not exceeding the remaining
// value is that position's element; the cell is subtracted and the
// remainder flows to the next row. The final slot receives the
// remainder itself.
// Complexity: O(N·K) worst case, O(K) amortized over a full enumeration.
func (e *Engine[V]) Unrank(r V, out []int) error {
	if len(out) != e.k {
		return ErrTupleLength
	}
	if r < 0 || r >= e.total {
		return ErrRankRange
	}
	// N choose 1: the bijection is the identity.
	if e.k == 1 {
		out[0] = int(r)

		return nil
	}

	rem := r
	var i, j int
	for i = 0; i < e.k-1; i++ {
		row := e.row(i)
		// Greedy largest fit: rows are monotonically non-decreasing in j,
		// so the scan stops at the largest column whose cell still fits.
		for j = len(row) - 1; j >= 0; j-- {
			if row[j] <= rem {
				out[i] = j
				rem -= row[j]
				break
			}
		}
	}
	out[e.k-1] = int(rem)

	return nil
}

// Combination is an allocating convenience around Unrank.
// Complexity: same as Unrank plus one O(K) allocation.
func (e *Engine[V]) Combination(r V) ([]int, error) {
	out := make([]int, e.k)
	if err := e.Unrank(r, out); err != nil {
		return nil, err
	}

	return out, nil
}
