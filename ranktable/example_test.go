package ranktable_test

import (
	"fmt"

	"github.com/katalvlaran/combinadic/combin"
	"github.com/katalvlaran/combinadic/ranktable"
)

// ExampleNew attaches a label to selected 5-card rank groups of the
// 13-choose-5 space and reads one back by its combination.
func ExampleNew() {
	eng, err := combin.New32(13, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	hands, err := ranktable.New[string](eng)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Address by combination: AKQJT, the top rank group.
	_ = hands.PutCombination([]int{12, 11, 10, 9, 8}, true, "broadway")

	label, _ := hands.AtCombination([]int{8, 9, 10, 11, 12}, false)
	fmt.Println(label)
	fmt.Println(hands.Len(), "of", eng.Total(), "ranks occupied")
	// Output:
	// broadway
	// 1287 of 1287 ranks occupied
}
