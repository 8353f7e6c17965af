//go:build !fastmath

package amplitude

import "math"

// mathExp computes e^x using standard library math.
func mathExp(x float64) float64 { return math.Exp(x) }

// mathSqrt computes sqrt(x) using standard library math.
func mathSqrt(x float64) float64 { return math.Sqrt(x) }
