// Package combin implements the combinatorial number system ("combinadic"):
// a bijection between the K-element combinations of {0..N-1}, enumerated
// in descending lexicographic order, and dense integer ranks in [0, C(N,K)).
//
// 🚀 What is combin?
//
//	Treat "the i-th combination" as an array index instead of storing or
//	searching C(N,K) tuples.  Widely useful for:
//	  • Poker hand rank tables (13 choose 5, 52 choose 7, ...)
//	  • Lottery and draw enumeration
//	  • Perfect hashing of fixed-size subsets
//	  • Compact indexing of experiment/feature subsets
//
// ✨ Key features:
//   - O(K) Rank and amortized O(K) Unrank after one O(N·K) construction
//   - K−1 index tables in a single flat arena (cache-friendly, one allocation)
//   - generic over the two supported widths: int32 and int64 (Value)
//   - construction rejects overflow positively — never a truncated total
//   - immutable after construction: safe for concurrent Rank/Unrank
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinadic/combin"
//
//	eng, err := combin.New64(13, 5)      // C(13,5) = 1287 ranks
//	r, err := eng.Rank([]int{12, 11, 10, 9, 8}, true)  // r == 1286
//
//	out := make([]int, 5)
//	err = eng.Unrank(1286, out)          // out == [12 11 10 9 8]
//
// Rank 0 always maps to (K-1, K-2, ..., 0) and rank Total()-1 to
// (N-1, N-2, ..., N-K).
//
// Performance:
//
//   - Construction: O(N·K) time, O(N·K) memory (none when K=1)
//   - Rank:   O(K) (+ O(K log K) when the input needs normalization)
//   - Unrank: O(N·K) worst case, O(K) amortized over a full enumeration
//
// Errors:
//
//   - ErrGroupSize: K < 1 at construction.
//   - ErrItemCount: N ≤ K at construction.
//   - ErrOverflow: C(N,K) exceeds the engine width (wraps binom.ErrOverflow).
//   - ErrTupleLength: tuple or output buffer length differs from K.
//   - ErrIndexRange: a tuple element lies outside its position's domain.
//   - ErrDuplicateIndex: two tuple elements share a value.
//   - ErrUnsorted: sorted=true was asserted on a non-descending tuple.
//   - ErrRankRange: rank outside [0, Total()).
//   - ErrRowIndex: diagnostic Row(i) index out of range.
package combin
