package combin

// buildTables constructs the K−1 index tables inside the flat arena.
//
// Table shape invariant (the load-bearing property of the package):
//
//	row(i)[j] == C(j, K−i)   for i = 0..K−2, j = 0..N−i−1
//
// where C(x,y) = 0 when x < y. Ranking sums one cell per row; unranking
// greedily peels the largest cell per row — both correct exactly because
// of this invariant.
//
// Construction (combinatorial-number-system prefix scheme):
//  1. Row K−2 holds C(j,2), the triangular numbers: 1, 3, 6, 10, ...
//     accumulated with increments 2, 3, 4, ...; cells j < 2 stay zero.
//  2. Rows K−3 down to 0 follow Pascal's rule
//     C(j, K−i) = C(j−1, K−i) + C(j−1, K−i−1):
//     the first meaningful cell (j = K−i) is 1, every later cell is
//     "previous cell in this row" + "one column back in the row below",
//     over a window that starts one column later and ends one column
//     later as i decreases (rows grow by one cell toward the top).
//
// K=1 allocates nothing: the bijection degenerates to the identity.
// Complexity: O(N·K) time, O(N·K) memory, performed once per Engine.
func (e *Engine[V]) buildTables() {
	if e.k == 1 {
		return
	}
	rows := e.k - 1

	// Lay out the arena: row i spans N−i cells starting at offs[i].
	e.offs = make([]int, rows)
	size := 0
	for i := 0; i < rows; i++ {
		e.offs[i] = size
		size += e.n - i
	}
	e.data = make([]V, size)

	// Seed the least significant row with triangular numbers C(j,2).
	last := e.row(rows - 1)
	value, inc := V(1), V(2)
	for j := 2; j < len(last); j++ {
		last[j] = value
		value += inc
		inc++
	}

	// Propagate upward with Pascal's rule over the shifting window.
	start, end := 3, e.n-(rows-2)
	for i := rows - 2; i >= 0; i-- {
		prev, cur := e.row(i+1), e.row(i)
		cur[start] = 1 // C(K−i, K−i)
		for j := start + 1; j < end; j++ {
			cur[j] = cur[j-1] + prev[j-1]
		}
		start++
		end++
	}
}
