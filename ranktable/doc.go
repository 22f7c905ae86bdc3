// Package ranktable attaches an arbitrary payload to every combination
// of a combin.Engine, addressed by the engine's rank.
//
// 🚀 What is ranktable?
//
//	A thin, generic, index-addressed store: the engine's Rank is the
//	array index, the caller's element type is the array value. There is
//	no eviction, no consistency machinery — just a growable backing
//	slice capped at Total():
//	  • Append — fill the table in rank order
//	  • Put / PutCombination — overwrite by rank or by tuple
//	  • At / AtCombination — read back by rank or by tuple
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinadic/ranktable"
//
//	eng, _ := combin.New32(13, 5)
//	hands, _ := ranktable.New[string](eng)
//	_ = hands.PutCombination([]int{12, 11, 10, 9, 8}, true, "AKQJT")
//
// Put grows the table when addressing past its current end, filling the
// gap with the supplied value — handy for initializing in a non-linear
// order, mirroring append-only tables built out of sequence.
//
// Errors:
//
//   - ErrNilEngine: no engine supplied.
//   - ErrTableFull: Append past Total().
//   - ErrRankRange: rank outside [0, Total()).
//   - ErrNotStored: reading a rank no write has reached yet.
package ranktable
