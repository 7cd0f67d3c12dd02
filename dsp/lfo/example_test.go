package lfo_test

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

func ExampleModulator() {
	m, err := lfo.New(8, lfo.Config{Shape: lfo.Square, Frequency: 2, Depth: 0.5})
	if err != nil {
		panic(err)
	}

	for range 6 {
		fmt.Print(m.Next(), " ")
	}
	fmt.Println()

	// Output:
	// 0.5 0.5 1.5 1.5 0.5 0.5
}
