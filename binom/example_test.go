package binom_test

import (
	"fmt"

	"github.com/katalvlaran/combinadic/binom"
)

// ExampleBinomial counts 7-card hands drawn from a 52-card deck.
func ExampleBinomial() {
	total, err := binom.Binomial(52, 7)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("C(52,7)=%d\n", total)
	// Output:
	// C(52,7)=133784560
}

// ExampleBinomialInt32 shows the 32-bit ceiling rejecting a count that
// cannot be represented without truncation.
func ExampleBinomialInt32() {
	if _, err := binom.BinomialInt32(34, 17); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: binom: result exceeds the requested integer width
}
