package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/effects"
	"github.com/cwbudde/algo-delayfx/measure/response"
)

func ExampleAnalyzer_Analyze() {
	fx, _ := effects.NewDoubleDelay(1000, effects.DoubleDelayParams{
		Dry: 1, Wet1: 0.5, Wet2: 0.25, Delay1Ms: 10, Delay2Ms: 30,
	})

	h, _ := response.Capture(fx, 64)
	m, _ := response.NewAnalyzer(1000).Analyze(h)

	fmt.Println(m.Onsets, m.FirstEchoMs)
	// Output:
	// [0 10 30] 10
}
