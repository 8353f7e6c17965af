package amplitude

import (
	"math"

	"github.com/strongfield/adksampler/angular"
	"github.com/strongfield/adksampler/geometry"
	"github.com/strongfield/adksampler/internal/batchmath"
)

// Batch holds everything about a pulse/target pair that is fixed for a
// single real birth time tr: the instantaneous field, the FF triad and
// Euler angles, the Wigner-D memo table, and the c/c_cc rate constants.
// Callers evaluate one Candidate per (kd,kz) enumerated in the batch.
type Batch struct {
	builder *Builder

	tr     float64
	fx, fy float64
	frame  geometry.Frame
	wigner *angular.Table
	lMax   int
	c, cCC float64
}

// Field returns the instantaneous field magnitude for this batch.
func (bt *Batch) Field() float64 { return bt.frame.F }

// PhiExit returns the tunneling-exit azimuth for this batch.
func (bt *Batch) PhiExit() float64 { return bt.frame.PhiExit }

// Candidate is one tunneling-exit trajectory seed before cutoff filtering.
type Candidate struct {
	KX, KY, KZ float64
	X0, Y0, Z0 float64
	Tr         float64
	Rate       float64
	Phase      float64
	Amp        complex128
}

// Evaluate computes the complex ADK amplitude and resulting Candidate for
// transverse/longitudinal momentum (kd,kz), given the sample-volume factor
// delta for this candidate (SPEC_FULL.md / spec.md 4.6-4.7).
func (bt *Batch) Evaluate(kd, kz, delta float64) Candidate {
	c, amp := bt.candidate(kd, kz, delta)
	c.Rate = real(amp)*real(amp) + imag(amp)*imag(amp)
	c.Phase = math.Atan2(imag(amp), real(amp))
	return c
}

// candidate computes the geometry and amplitude shared by Evaluate and
// EvaluateBatch, leaving the |amp|^2/arg(amp) reduction to the caller.
func (bt *Batch) candidate(kd, kz, delta float64) (Candidate, complex128) {
	f := bt.frame.F
	phiExit := bt.frame.PhiExit
	ip := bt.builder.target.Ip()
	kappa := bt.builder.kappa

	kx := -kd * math.Sin(phiExit)
	ky := kd * math.Cos(phiExit)

	ti := mathSqrt(kappa*kappa+kd*kd+kz*kz) / f
	r0 := (ip + (kd*kd+kz*kz)/2) / f

	amp := bt.amplitude(kx, ky, kz, kd, ti, delta)

	return Candidate{
		KX: kx, KY: ky, KZ: kz,
		X0:  r0 * math.Cos(phiExit),
		Y0:  r0 * math.Sin(phiExit),
		Z0:  0,
		Tr:  bt.tr,
		Amp: amp,
	}, amp
}

// EvaluateBatch computes every Candidate for the parallel (kds,kzs,deltas)
// slices in one call, reducing the |amp|^2 rates across the whole set with
// batchmath's vectorized Power instead of one scalar squared-modulus per
// candidate (mirrors dsp/spectrum.go's magnitude/power reduction over an
// FFT frame). All three slices must have equal length.
func (bt *Batch) EvaluateBatch(kds, kzs, deltas []float64) []Candidate {
	if len(kds) != len(kzs) || len(kds) != len(deltas) {
		panic("amplitude: EvaluateBatch requires kds, kzs, deltas of equal length")
	}

	cands := make([]Candidate, len(kds))
	amps := make([]complex128, len(kds))
	for i := range kds {
		cands[i], amps[i] = bt.candidate(kds[i], kzs[i], deltas[i])
	}

	re, im := batchmath.SplitComplex(amps)
	rates := make([]float64, len(amps))
	batchmath.Power(rates, re, im)

	for i := range cands {
		cands[i].Rate = rates[i]
		cands[i].Phase = math.Atan2(im[i], re[i])
	}
	return cands
}

// amplitude assembles amp = sqrt(delta) * E * P_S(...) * sqrt(F)^[Jac in S]
// (spec.md 4.6).
func (bt *Batch) amplitude(kx, ky, kz, kd, ti, delta float64) complex128 {
	f := bt.frame.F
	ip := bt.builder.target.Ip()
	nStar := bt.builder.nStar

	var p complex128 = 1
	switch {
	case bt.builder.prefix.Has(Pre):
		denom := math.Pow((kx*kx+ky*ky+kz*kz+2*ip)*f*f, (nStar+1)/4)
		p = complex(bt.c/denom, 0) * bt.angularSum(kx, ky, kz, ti)
	case bt.builder.prefix.Has(PreCC):
		denom := math.Pow((kx*kx+ky*ky+kz*kz+2*ip)*f*f, (nStar+1)/4)
		p = complex(bt.cCC/denom, 0) * bt.angularSum(kx, ky, kz, ti)
	}
	if bt.builder.prefix.Has(Jac) {
		p *= complex(mathSqrt(f), 0)
	}

	expFactor := mathExp(-math.Pow(kd*kd+kz*kz+2*ip, 1.5) / (3 * f))
	return complex(mathSqrt(delta)*expFactor, 0) * p
}

// angularSum evaluates Pi(k_ts) = sum C_{l,m} * D^l_{m',m} * Y_{l,m'}(k_ts
// projected onto the FF triad, in units of kappa), per spec.md 4.6.
func (bt *Batch) angularSum(kx, ky, kz, ti float64) complex128 {
	ktsX := complex(kx, -ti*bt.fx)
	ktsY := complex(ky, -ti*bt.fy)
	ktsZ := complex(kz, 0)

	xFF, yFF, zFF := bt.frame.ProjectComplex([3]complex128{ktsX, ktsY, ktsZ})
	invKappa := complex(1/bt.builder.kappa, 0)
	y := angular.SolidHarmonics(bt.lMax, xFF*invKappa, yFF*invKappa, zFF*invKappa)

	var sum complex128
	for l := 0; l <= bt.lMax; l++ {
		for m := -l; m <= l; m++ {
			clm := bt.builder.target.Coefficient(l, m)
			if clm == 0 {
				continue
			}
			for mp := -l; mp <= l; mp++ {
				sum += complex(clm, 0) * bt.wigner.D(l, mp, m) * y.Y(l, mp)
			}
		}
	}
	return sum
}
