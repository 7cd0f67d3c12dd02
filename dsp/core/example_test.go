package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(48000), core.WithBlockSize(0))

	fmt.Println(cfg.SampleRate, cfg.BlockSize, cfg.Channels)

	// Output:
	// 48000 256 2
}

func ExampleLimit() {
	fmt.Println(core.MsToSamples(10, 44100))
	fmt.Println(core.Limit(1.2, core.DelayCeiling), core.Limit(0.5, core.DelayCeiling))

	// Output:
	// 441
	// 0.999 0.5
}
