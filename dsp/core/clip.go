package core

// Output ceilings used when a sample leaves the unit range.
const (
	// DelayCeiling replaces samples beyond ±1 in the basic delays.
	DelayCeiling = 0.999
	// FilterCeiling bounds filter, chorus and reverb outputs.
	FilterCeiling = 0.9999
)

// Limit folds samples strictly beyond ±1 back to ±ceiling and leaves
// everything else untouched.
func Limit(x, ceiling float64) float64 {
	if x > 1 {
		return ceiling
	}

	if x < -1 {
		return -ceiling
	}

	return x
}

// ClampSymmetric limits x to [-bound, bound].
func ClampSymmetric(x, bound float64) float64 {
	if x > bound {
		return bound
	}

	if x < -bound {
		return -bound
	}

	return x
}

// ClampBlock applies ClampSymmetric to every sample of buf.
func ClampBlock(buf []float64, bound float64) {
	for i, x := range buf {
		buf[i] = ClampSymmetric(x, bound)
	}
}
