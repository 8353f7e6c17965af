package pulse

import (
	"math"
)

// CosPowerKind selects between the cos^2 and cos^4 envelope shapes.
type CosPowerKind int

const (
	// Cos4 is the cos^4 envelope with a hard mask and no edge clamp.
	Cos4 CosPowerKind = iota
	// Cos2 is the cos^2 envelope with the additional tanh edge clamp
	// applied to both A and F (SPEC_FULL.md Open Question (b)).
	Cos2
)

func (k CosPowerKind) power() float64 {
	if k == Cos2 {
		return 2
	}
	return 4
}

// CosPowerPulse implements the cos^2 / cos^4 monochromatic pulse of
// spec.md 4.2.
type CosPowerPulse struct {
	base
	kind  CosPowerKind
	cycle float64 // N
}

// NewCos4 constructs a cos^4-envelope pulse.
func NewCos4(i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, cycles float64) (*CosPowerPulse, error) {
	return newCosPower(Cos4, i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, cycles)
}

// NewCos2 constructs a cos^2-envelope pulse with the edge-clamp multiplier.
func NewCos2(i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, cycles float64) (*CosPowerPulse, error) {
	return newCosPower(Cos2, i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, cycles)
}

func newCosPower(kind CosPowerKind, i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, cycles float64) (*CosPowerPulse, error) {
	if err := validateCycleCount("cycles", cycles); err != nil {
		return nil, err
	}
	b, err := newBase(i0, wavelengthNM, ellipticity, azimuth, cep, timeShift)
	if err != nil {
		return nil, err
	}
	return &CosPowerPulse{base: b, kind: kind, cycle: cycles}, nil
}

// Cycles returns the pulse's cycle count N.
func (p *CosPowerPulse) Cycles() float64 { return p.cycle }

// Kind returns whether this is a Cos2 or Cos4 envelope.
func (p *CosPowerPulse) Kind() CosPowerKind { return p.kind }

func (p *CosPowerPulse) tau(t complex128) complex128 {
	return t - complex(p.timeShift, 0)
}

// sigma returns omega*tau/(2N), the cosine-power argument.
func (p *CosPowerPulse) sigma(tau complex128) complex128 {
	return complex(p.omega, 0) * tau / complex(2*p.cycle, 0)
}

// edgeClamp evaluates the Cos2 tanh edge-clamp multiplier at real(tau); it
// is 1 for Cos4 (no clamp).
func (p *CosPowerPulse) edgeClamp(tau complex128) float64 {
	if p.kind != Cos2 {
		return 1
	}
	boundary := p.cycle * math.Pi / p.omega
	reT := real(tau)
	return math.Tanh(5*(reT-boundary)) * math.Tanh(-5*(reT+boundary))
}

func (p *CosPowerPulse) mask(tau complex128) bool {
	return cosineMask(p.omega, p.cycle, real(tau))
}

// envelope evaluates cos^k(sigma)*mask*edgeClamp for complex tau.
func (p *CosPowerPulse) envelope(tau complex128) complex128 {
	if !p.mask(tau) {
		return 0
	}
	sigma := p.sigma(tau)
	u := cpowInt(ccos(sigma), int(p.kind.power()))
	return complex(p.edgeClamp(tau), 0) * u
}

// UnitEnvelope evaluates the real-valued envelope at real time t.
func (p *CosPowerPulse) UnitEnvelope(t float64) float64 {
	return real(p.envelope(complex(t, 0)))
}

// Ax, Ay, Fx, Fy follow the closed forms of spec.md 4.2, derived as the
// exact d/dtau of Ax/Ay (F = -dA/dtau) so the pair is self-consistent
// under finite differencing.
func (p *CosPowerPulse) Ax(t complex128) complex128 {
	tau := p.tau(t)
	u := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := math.Cos(p.azimuth), math.Sin(p.azimuth)
	eps := complex(p.ellipticity, 0)
	return complex(p.a0, 0) * u * (c*complex(cosPhi, 0) + eps*s*complex(sinPhi, 0))
}

func (p *CosPowerPulse) Ay(t complex128) complex128 {
	tau := p.tau(t)
	u := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := math.Cos(p.azimuth), math.Sin(p.azimuth)
	eps := complex(p.ellipticity, 0)
	return complex(p.a0, 0) * u * (-c*complex(sinPhi, 0) + eps*s*complex(cosPhi, 0))
}

func (p *CosPowerPulse) Fx(t complex128) complex128 {
	if !p.mask(p.tau(t)) {
		return 0
	}
	return p.field(t, false)
}

func (p *CosPowerPulse) Fy(t complex128) complex128 {
	if !p.mask(p.tau(t)) {
		return 0
	}
	return p.field(t, true)
}

// field evaluates Fx (axis=false) or Fy (axis=true) at complex t.
func (p *CosPowerPulse) field(t complex128, axis bool) complex128 {
	tau := p.tau(t)
	sigma := p.sigma(tau)
	c, s := carrier(p.omega, p.cep, tau)
	k := p.kind.power()

	cosSigma := ccos(sigma)
	sinSigma := csin(sigma)
	envPow := cpowInt(cosSigma, int(k)-1)
	clamp := complex(p.edgeClamp(tau), 0)

	cosPhi, sinPhi := complex(math.Cos(p.azimuth), 0), complex(math.Sin(p.azimuth), 0)
	eps := complex(p.ellipticity, 0)
	kOver2N := complex(k/(2*p.cycle), 0)

	var bracket complex128
	if !axis { // Fx = F0*cos^{k-1}(sigma)*[ cosSigma*s*cosPhi - eps*cosSigma*c*sinPhi + (k/2N)*sinSigma*c*cosPhi + (k/2N)*eps*sinSigma*s*sinPhi ]
		bracket = cosSigma*s*cosPhi - eps*cosSigma*c*sinPhi +
			kOver2N*sinSigma*c*cosPhi + kOver2N*eps*sinSigma*s*sinPhi
	} else { // Fy = F0*cos^{k-1}(sigma)*[ (k/2N)*sinSigma*(-c*sinPhi+eps*s*cosPhi) - cosSigma*(s*sinPhi+eps*c*cosPhi) ]
		bracket = kOver2N*sinSigma*(-c*sinPhi+eps*s*cosPhi) - cosSigma*(s*sinPhi+eps*c*cosPhi)
	}

	return complex(p.f0, 0) * envPow * clamp * bracket
}

// cpowInt raises z to a small non-negative integer power by repeated
// multiplication, avoiding the principal-branch discontinuity of a
// general complex pow near the negative real axis (cos(sigma) crosses it
// whenever sigma passes pi/2).
func cpowInt(z complex128, n int) complex128 {
	result := complex(1, 0)
	for i := 0; i < n; i++ {
		result *= z
	}
	return result
}
