package binom_test

import (
	"testing"

	"github.com/katalvlaran/combinadic/binom"
)

// benchmarkBinomial runs the checked path for a fixed (n,k) pair.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkBinomial(b *testing.B, n, k int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := binom.Binomial(n, k); err != nil {
			b.Fatalf("Binomial(%d,%d) failed: %v", n, k, err)
		}
	}
}

// BenchmarkBinomial_Small benchmarks the checked path on 13 choose 5.
func BenchmarkBinomial_Small(b *testing.B) {
	benchmarkBinomial(b, 13, 5)
}

// BenchmarkBinomial_Deck benchmarks the checked path on 52 choose 7.
func BenchmarkBinomial_Deck(b *testing.B) {
	benchmarkBinomial(b, 52, 7)
}

// BenchmarkBinomial_NearCeiling benchmarks the checked path at the
// int64 feasibility edge, 66 choose 33.
func BenchmarkBinomial_NearCeiling(b *testing.B) {
	benchmarkBinomial(b, 66, 33)
}

// BenchmarkBinomialUnchecked_Deck benchmarks the unguarded product on
// 52 choose 7 for comparison against the checked path.
func BenchmarkBinomialUnchecked_Deck(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if binom.BinomialUnchecked(52, 7) == 0 {
			b.Fatal("BinomialUnchecked(52,7) returned 0")
		}
	}
}
