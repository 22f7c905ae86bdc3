package binom

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrNegativeInput indicates n or k below zero.
	ErrNegativeInput = errors.New("binom: n and k must be non-negative")

	// ErrOverflow indicates the true C(n,k) exceeds the requested integer width.
	ErrOverflow = errors.New("binom: result exceeds the requested integer width")
)

// Binomial computes C(n,k) in uint64 via the overflow-resistant
// incremental form r = r·(n-d+1)/d for d = 1..k, interleaving multiply
// and divide so intermediates stay close to the final magnitude.
// Each step multiplies into a 128-bit product; a high word the divisor
// cannot absorb means the quotient no longer fits 64 bits and the call
// fails with ErrOverflow instead of wrapping.
//
// Returns 0 (no valid combinations) when k > n.
// Complexity: O(min(k, n-k)) time, O(1) memory.
func Binomial(n, k int) (uint64, error) {
	// Stage 1 (Validate): reject negative inputs outright.
	if n < 0 || k < 0 {
		return 0, ErrNegativeInput
	}
	// Stage 2 (Degenerate): k > n has no valid combinations.
	if k > n {
		return 0, nil
	}
	// Exploit symmetry C(n,k) = C(n,n-k) to shorten the loop; since
	// C(n,d) grows monotonically for d ≤ n/2, every intermediate stays
	// at or below the final value and overflow detection is exact.
	if k > n-k {
		k = n - k
	}

	// Stage 3 (Accumulate): after step d the accumulator equals C(n,d)
	// exactly — the falling product n·(n-1)···(n-d+1) is always divisible
	// by d! when the division is interleaved in this order.
	var r uint64 = 1
	for d := 1; d <= k; d++ {
		hi, lo := bits.Mul64(r, uint64(n-d+1))
		if hi >= uint64(d) {
			return 0, ErrOverflow // quotient would need more than 64 bits
		}
		r, _ = bits.Div64(hi, lo, uint64(d))
	}

	return r, nil
}

// BinomialInt64 computes C(n,k) checked against the int64 ceiling,
// the width used by the 64-bit engine. One of the largest feasible
// cases is 66 choose 33 = 7,219,428,434,016,265,740.
// Complexity: O(min(k, n-k)).
func BinomialInt64(n, k int) (int64, error) {
	v, err := Binomial(n, k)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(v), nil
}

// BinomialInt32 computes C(n,k) checked against the int32 ceiling,
// the width used by the 32-bit engine (limit 2^31 − 1).
// Complexity: O(min(k, n-k)).
func BinomialInt32(n, k int) (int32, error) {
	v, err := Binomial(n, k)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, ErrOverflow
	}

	return int32(v), nil
}

// BinomialUnchecked computes C(n,k) via the direct multiplicative
// formula: the falling product n·(n-1)···(n-k+1) divided by k!.
// It is the fastest path but carries no overflow guard — the running
// product wraps silently for large n,k. Callers must pre-validate the
// domain through Binomial before trusting the result; the engines in
// package combin never size themselves from this function.
//
// Returns 0 when k > n.
// Complexity: O(k) time, O(1) memory.
func BinomialUnchecked(n, k int) uint64 {
	if k > n || k < 0 || n < 0 {
		return 0
	}
	switch k {
	case 0:
		return 1
	case 1:
		return uint64(n)
	}

	// Falling product n·(n-1)···(n-k+1).
	start := n - k + 1
	total := uint64(start)
	for i := start + 1; i <= n; i++ {
		total *= uint64(i)
	}
	// Divide once by k! = 2·3···k.
	divisor := uint64(2)
	for i := 3; i <= k; i++ {
		divisor *= uint64(i)
	}

	return total / divisor
}
