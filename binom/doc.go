// Package binom computes binomial coefficients C(n,k) — the number of
// unique K-element combinations of N items — under fixed integer widths,
// with positive overflow detection.
//
// 🚀 What is binom?
//
//	C(n,k) = n! / (k! · (n-k)!) counts combinations.  It is the place
//	value of the combinatorial number system and the feasibility gate
//	for every combin.Engine:
//	  • Binomial — wide, overflow-resistant path (the authority)
//	  • BinomialInt64 / BinomialInt32 — checked narrowing to engine widths
//	  • BinomialUnchecked — the classic fast product, no guard rails
//
// ✨ Key features:
//   - interleaved multiply/divide keeps intermediates near the final magnitude
//   - 128-bit products (math/bits) turn silent wraparound into ErrOverflow
//   - exact integer arithmetic throughout — no floating point drift
//   - C(n,k) = 0 whenever k > n (no valid combinations)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinadic/binom"
//
//	total, err := binom.BinomialInt64(52, 7)
//	// total == 133784560, err == nil
//
// Performance:
//
//   - Time:   O(min(k, n-k)) multiplications
//   - Memory: O(1)
//
// Errors:
//
//   - ErrNegativeInput: n or k is negative.
//   - ErrOverflow: the true result exceeds the requested width.
package binom
