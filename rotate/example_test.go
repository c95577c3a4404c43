package rotate_test

import (
	"fmt"

	"github.com/joshuapare/rotkit/rotate"
)

func ExampleLeft() {
	s := []int{1, 2, 3, 4, 5}
	rotate.Left(s, 2)
	fmt.Println(s)
	// Output: [3 4 5 1 2]
}

func ExampleRight() {
	s := []string{"a", "b", "c", "d", "e"}
	rotate.Right(s, 2)
	fmt.Println(s)
	// Output: [d e a b c]
}

func ExampleRotate_cycleOnly() {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	rotate.Rotate(s, 4, rotate.DirLeft, rotate.Config{Mode: rotate.ModeCycleOnly})
	fmt.Println(s)
	// Output: [5 6 7 8 9 10 1 2 3 4]
}

func ExamplePlan() {
	steps, err := rotate.Plan(14, 10, rotate.DirLeft, 1, rotate.Config{Mode: rotate.ModeNoScratch})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, st := range steps {
		fmt.Println(st)
	}
	// Output:
	// block-swap base=0 left=10 right=4 rounds=2 swap=8
	// block-swap base=0 left=2 right=4 rounds=2 swap=4
}

func ExampleRecords() {
	data := []byte("AAABBBCCCDDD")
	if err := rotate.Records(data, 3, 1, rotate.DirRight, rotate.Config{}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output: DDDAAABBBCCC
}
