package testutil

// Linspace returns n evenly spaced samples over [lo, hi] inclusive.
// n=1 returns []float64{lo}.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// CentralDifference approximates f'(t) using a symmetric finite-difference
// stencil with step h, for a real-valued function of a real argument.
func CentralDifference(f func(float64) float64, t, h float64) float64 {
	return (f(t+h) - f(t-h)) / (2 * h)
}

// CentralDifferenceComplex approximates f'(t) using a symmetric
// finite-difference stencil with step h, for a complex-valued function
// evaluated at real t (the function itself may accept complex arguments).
func CentralDifferenceComplex(f func(complex128) complex128, t, h float64) complex128 {
	return (f(complex(t+h, 0)) - f(complex(t-h, 0))) / complex(2*h, 0)
}
