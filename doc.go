// Package combinadic is your in-memory toolkit for the combinatorial
// number system — a bijection between K-element combinations of N items
// and dense integer ranks in [0, C(N,K)).
//
// 🚀 What is combinadic?
//
//	A modern, allocation-conscious, pure-Go library that brings together:
//		• Binomial coefficients: overflow-resistant C(n,k) with positive detection
//		• Index tables: O(K) ranking/unranking via precomputed prefix tables
//		• Rank/Unrank: combination → integer and back, both directions exact
//		• Rendering: write whole enumerations as configurable text
//		• Rank tables: attach any payload type to each combination's rank
//
// ✨ Why choose combinadic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – checked overflow, immutable tables, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Two widths – int32 and int64 engines from one generic core
//
// Under the hood, everything is organized under four subpackages:
//
//	binom/     — binomial coefficients under two integer widths
//	combin/    — the Engine: index tables, Rank, Unrank
//	render/    — text export of full enumerations
//	ranktable/ — generic payload storage addressed by rank
//
// Quick ASCII example (N=5, K=3 → C(5,3)=10 ranks):
//
//	rank 0 ↔ (2,1,0)    rank 9 ↔ (4,3,2)
//
//	every strictly descending triple from {0..4} owns exactly one
//	slot in [0,10) — no search, no storage of the full list.
//
// Dive into the package docs of each subpackage, the runnable scenarios
// under examples/, and DESIGN.md for the internal layout.
//
//	go get github.com/katalvlaran/combinadic
package combinadic
