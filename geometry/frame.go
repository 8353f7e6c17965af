// Package geometry computes the instantaneous field-frame (FF) triad from
// the lab-frame field vector and the Euler angles that carry the FF into
// the target's molecular frame (MF), per spec.md 4.4 (C4).
package geometry

import "math"

// Frame holds the instantaneous field magnitude, exit azimuth, and the FF
// triad expressed in lab-frame coordinates.
type Frame struct {
	F       float64
	PhiExit float64
	X, Y, Z [3]float64
}

// FieldFrame computes the FF triad from the instantaneous lab-frame field
// components (fx, fy). z_FF is the lab z axis; x_FF points along the
// tunneling-exit direction -Fhat; y_FF = z_FF x x_FF.
func FieldFrame(fx, fy float64) Frame {
	f := math.Hypot(fx, fy)
	phiExit := math.Atan2(-fy, -fx)

	cosPhi, sinPhi := math.Cos(phiExit), math.Sin(phiExit)
	return Frame{
		F:       f,
		PhiExit: phiExit,
		X:       [3]float64{cosPhi, sinPhi, 0},
		Y:       [3]float64{-sinPhi, cosPhi, 0},
		Z:       [3]float64{0, 0, 1},
	}
}

// ProjectComplex resolves a complex lab-frame vector v (e.g. a shifted
// momentum k_ts with an imaginary sub-barrier component) onto the FF triad.
func (fr Frame) ProjectComplex(v [3]complex128) (x, y, z complex128) {
	dot := func(a [3]complex128, b [3]float64) complex128 {
		return a[0]*complex(b[0], 0) + a[1]*complex(b[1], 0) + a[2]*complex(b[2], 0)
	}
	return dot(v, fr.X), dot(v, fr.Y), dot(v, fr.Z)
}

// EulerAngles returns the Euler angles (alpha, beta, gamma) that carry the
// FF into the target's molecular/quantization frame (C4). The lab->FF
// rotation is a pure rotation about the shared z axis by PhiExit, so in
// the ZYZ convention composing it with the target's own lab->MF rotation
// (alphaT, betaT, gammaT) collapses to a shift of the last Euler angle:
//
//	R(alphaT,betaT,gammaT) o Rz(-PhiExit) = R(alphaT, betaT, gammaT-PhiExit)
func EulerAngles(fr Frame, alphaT, betaT, gammaT float64) (alpha, beta, gamma float64) {
	return alphaT, betaT, gammaT - fr.PhiExit
}
