// Package render writes full combinadic enumerations as configurable
// text: every rank of an engine, unranked and formatted onto a
// line-oriented stream or into a slice of strings.
//
// 🚀 What is render?
//
//	A presentation layer over combin.Engine. It never influences core
//	correctness — it only iterates ranks 0..Total()−1 (or the reverse),
//	calls Unrank for each, and renders the resulting tuples:
//	  • numeric fields right-aligned to a fixed width, or
//	  • per-value display substitution (card faces, item labels, ...)
//	  • custom element and group separators
//	  • optional line wrapping at a character threshold
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinadic/render"
//
//	eng, _ := combin.New64(5, 2)
//	opts := render.DefaultOptions()
//	opts.DispChars = []string{"a", "b", "c", "d", "e"}
//	opts.Sep = ""
//	_ = render.Write(os.Stdout, eng, opts)
//
// Performance:
//
//   - Time:   O(Total · K), Memory: O(K) beyond the output buffer
//
// Errors:
//
//   - ErrNilEngine: no engine supplied.
//   - ErrNilWriter: no writer supplied to Write.
//   - ErrDispChars: substitution table shorter than the engine's N.
package render
