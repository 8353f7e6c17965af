// Package batchmath provides small batch reductions over parallel
// real/imaginary slices, the same shape as algo-vecmath's Magnitude/Power
// operations, re-implemented as plain Go since the sampler's per-batch
// candidate counts (O(10^2)-O(10^4)) do not warrant SIMD/CPU-arch dispatch.
package batchmath

import "math"

// Power computes dst[i] = re[i]^2 + im[i]^2 for every index, the rate
// |amp|^2 of a complex ADK amplitude sampled across a batch of candidates.
//
// All slices must have equal length. Panics if lengths differ.
func Power(dst, re, im []float64) {
	if len(dst) != len(re) || len(dst) != len(im) {
		panic("batchmath: Power slice length mismatch")
	}
	for i := range dst {
		dst[i] = re[i]*re[i] + im[i]*im[i]
	}
}

// Magnitude computes dst[i] = sqrt(re[i]^2 + im[i]^2) for every index.
//
// All slices must have equal length. Panics if lengths differ.
func Magnitude(dst, re, im []float64) {
	if len(dst) != len(re) || len(dst) != len(im) {
		panic("batchmath: Magnitude slice length mismatch")
	}
	for i := range dst {
		dst[i] = math.Hypot(re[i], im[i])
	}
}

// SplitComplex decomposes a complex128 batch into its real and imaginary
// parts, returned as two newly allocated slices.
func SplitComplex(amps []complex128) (re, im []float64) {
	re = make([]float64, len(amps))
	im = make([]float64, len(amps))
	for i, a := range amps {
		re[i] = real(a)
		im[i] = imag(a)
	}
	return re, im
}
