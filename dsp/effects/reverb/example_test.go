package reverb_test

import (
	"fmt"

	"github.com/cwbudde/algo-delayfx/dsp/effects/reverb"
)

func ExampleReverb2_Params() {
	r, err := reverb.NewReverb2(44100, 256, reverb.DefaultReverb2Params())
	if err != nil {
		fmt.Println("error")
		return
	}

	p := r.Params()
	fmt.Println(p.MixPct, p.Combs[0], p.Allpasses[1])
	// Output:
	// 50 {32 50} {3995 50}
}
