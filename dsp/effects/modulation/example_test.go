package modulation_test

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/effects/modulation"
	"github.com/cwbudde/algo-delayfx/dsp/lfo"
)

func ExampleFlanger() {
	f, err := modulation.NewFlanger(1000, modulation.FlangerParams{
		DecayPct:  50,
		DelayMs:   2,
		Modulator: lfo.Config{Shape: lfo.Sine, Frequency: 2, Depth: 0},
	})
	if err != nil {
		fmt.Println("error")
		return
	}

	buf := []float64{1, 0, 0, 0, 0}
	f.ProcessInPlace(buf)

	fmt.Println(buf)
	// Output:
	// [1 0 0.5 0 0.25]
}
