//go:build fastmath

package amplitude

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using a fast approximation; the tunneling exponential
// is evaluated once per candidate and dominates the sampler's hot path.
func mathExp(x float64) float64 { return approx.FastExp(x) }

// mathSqrt computes sqrt(x) using a fast approximation.
func mathSqrt(x float64) float64 { return approx.FastSqrt(x) }
