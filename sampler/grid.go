package sampler

// linspace returns n evenly spaced points over [lo,hi] and the step between
// consecutive points (1, per spec.md 4.6, when n==1).
func linspace(lo, hi float64, n int) ([]float64, float64) {
	if n <= 1 {
		return []float64{lo}, 1
	}
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out, step
}

// gridAxis returns the grid points and step for one momentum axis. A
// non-positive max fixes the axis at a single point, 0.
func gridAxis(max float64, n int) ([]float64, float64) {
	if max <= 0 {
		return []float64{0}, 1
	}
	m := abs(max)
	return linspace(-m, m, n)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
