package combin

import "sort"

// SortDescending normalizes a combination tuple into strictly descending
// order in place. Ties are broken arbitrarily: duplicate values are not a
// valid combination and are reported by Rank, not here.
// Complexity: O(K log K).
func SortDescending(tuple []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(tuple)))
}
