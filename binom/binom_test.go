package binom_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/combinadic/binom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigBinomial is the independent oracle: math/big computes C(n,k) with
// arbitrary precision, so any fixed-width discrepancy is our bug.
func bigBinomial(n, k int) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}

// TestBinomial_MatchesBigInt cross-checks Binomial against math/big
// over a dense grid of small inputs.
func TestBinomial_MatchesBigInt(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for k := 0; k <= 40; k++ {
			got, err := binom.Binomial(n, k)
			require.NoErrorf(t, err, "Binomial(%d,%d) must not error", n, k)
			want := bigBinomial(n, k)
			if k > n {
				assert.Zerof(t, got, "Binomial(%d,%d) with k>n must be 0", n, k)
				continue
			}
			assert.Equalf(t, want.Uint64(), got, "Binomial(%d,%d)", n, k)
		}
	}
}

// TestBinomial_KnownValues pins a few classic results.
func TestBinomial_KnownValues(t *testing.T) {
	cases := []struct {
		n, k int
		want uint64
	}{
		{13, 5, 1287},
		{7, 3, 35},
		{52, 7, 133784560},
		{52, 5, 2598960},
		{66, 33, 7219428434016265740},
	}
	for _, c := range cases {
		got, err := binom.Binomial(c.n, c.k)
		require.NoErrorf(t, err, "Binomial(%d,%d)", c.n, c.k)
		assert.Equalf(t, c.want, got, "Binomial(%d,%d)", c.n, c.k)
	}
}

// TestBinomial_NegativeInput verifies negative n or k is rejected.
func TestBinomial_NegativeInput(t *testing.T) {
	_, err := binom.Binomial(-1, 2)
	assert.ErrorIs(t, err, binom.ErrNegativeInput, "negative n must error")

	_, err = binom.Binomial(5, -2)
	assert.ErrorIs(t, err, binom.ErrNegativeInput, "negative k must error")
}

// TestBinomial_Uint64Overflow verifies positive detection once the true
// result no longer fits 64 bits: C(68,34) ≈ 2.8×10^19 > 2^64−1.
func TestBinomial_Uint64Overflow(t *testing.T) {
	// C(67,33) = 14,226,520,737,620,288,370 still fits uint64.
	got, err := binom.Binomial(67, 33)
	require.NoError(t, err, "C(67,33) fits uint64")
	assert.Equal(t, uint64(14226520737620288370), got)

	// C(68,34) exceeds 2^64−1 and must be detected, not wrapped.
	_, err = binom.Binomial(68, 34)
	assert.ErrorIs(t, err, binom.ErrOverflow, "C(68,34) must overflow uint64")
}

// TestBinomialInt64_CeilingAndOverflow pins the int64 engine width:
// 66 choose 33 is feasible, 67 choose 33 fits uint64 but not int64.
func TestBinomialInt64_CeilingAndOverflow(t *testing.T) {
	v, err := binom.BinomialInt64(66, 33)
	require.NoError(t, err, "C(66,33) fits int64")
	assert.Equal(t, int64(7219428434016265740), v)

	_, err = binom.BinomialInt64(67, 33)
	assert.ErrorIs(t, err, binom.ErrOverflow, "C(67,33) must overflow int64")

	_, err = binom.BinomialInt64(68, 34)
	assert.ErrorIs(t, err, binom.ErrOverflow, "C(68,34) must overflow int64")
}

// TestBinomialInt32_CeilingAndOverflow pins the int32 engine width:
// C(33,16) fits 2^31−1, C(34,17) does not.
func TestBinomialInt32_CeilingAndOverflow(t *testing.T) {
	v, err := binom.BinomialInt32(33, 16)
	require.NoError(t, err, "C(33,16) fits int32")
	assert.Equal(t, int32(1166803110), v)
	assert.LessOrEqual(t, int64(v), int64(math.MaxInt32))

	_, err = binom.BinomialInt32(34, 17)
	assert.ErrorIs(t, err, binom.ErrOverflow, "C(34,17) must overflow int32")
}

// TestBinomialUnchecked_AgreesOnSafeRange verifies the unguarded fast
// path matches the checked path everywhere overflow cannot occur.
func TestBinomialUnchecked_AgreesOnSafeRange(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			want, err := binom.Binomial(n, k)
			require.NoError(t, err)
			assert.Equalf(t, want, binom.BinomialUnchecked(n, k),
				"BinomialUnchecked(%d,%d)", n, k)
		}
	}
}

// TestBinomialUnchecked_Degenerate covers k>n and the k∈{0,1} shortcuts.
func TestBinomialUnchecked_Degenerate(t *testing.T) {
	assert.Zero(t, binom.BinomialUnchecked(3, 5), "k>n yields 0")
	assert.Equal(t, uint64(1), binom.BinomialUnchecked(9, 0), "C(n,0)=1")
	assert.Equal(t, uint64(9), binom.BinomialUnchecked(9, 1), "C(n,1)=n")
	assert.Equal(t, uint64(1), binom.BinomialUnchecked(9, 9), "C(n,n)=1")
}
