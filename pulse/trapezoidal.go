package pulse

import "math"

// TrapezoidalPulse implements the piecewise-linear-envelope pulse of
// spec.md 4.2: ramp-up over Non cycles, unity over Nconst cycles, ramp-down
// over Noff cycles.
type TrapezoidalPulse struct {
	base
	nOn, nConst, nOff float64
	tOn, tConst, tOff float64
}

// NewTrapezoidal constructs a trapezoidal-envelope pulse. nConst may be 0;
// nOn and nOff must be > 0.
func NewTrapezoidal(i0, wavelengthNM, ellipticity, azimuth, cep, timeShift, nOn, nConst, nOff float64) (*TrapezoidalPulse, error) {
	if err := validateCycleCount("cyc_num_turn_on", nOn); err != nil {
		return nil, err
	}
	if nConst < 0 {
		return nil, ErrInvalidCycleCount
	}
	if err := validateCycleCount("cyc_num_turn_off", nOff); err != nil {
		return nil, err
	}

	b, err := newBase(i0, wavelengthNM, ellipticity, azimuth, cep, timeShift)
	if err != nil {
		return nil, err
	}

	period := 2 * math.Pi / b.omega
	p := &TrapezoidalPulse{
		base:    b,
		nOn:     nOn,
		nConst:  nConst,
		nOff:    nOff,
		tOn:     nOn * period,
		tConst:  nConst * period,
		tOff:    nOff * period,
	}
	return p, nil
}

// CycleCounts returns (Non, Nconst, Noff).
func (p *TrapezoidalPulse) CycleCounts() (float64, float64, float64) {
	return p.nOn, p.nConst, p.nOff
}

func (p *TrapezoidalPulse) tau(t complex128) complex128 {
	return t - complex(p.timeShift, 0)
}

// envelope returns u(tau) (complex, holomorphic within the selected
// branch) and u' (real-valued slope: 0, 1/tOn, or -1/tOff), branch
// selection made on real(tau) the same way every mask in this package is
// evaluated.
func (p *TrapezoidalPulse) envelope(tau complex128) (u complex128, slope float64) {
	reTau := real(tau)
	onEnd := p.tOn
	constEnd := p.tOn + p.tConst
	offEnd := p.tOn + p.tConst + p.tOff

	switch {
	case reTau <= 0:
		return 0, 0
	case reTau < onEnd:
		return tau / complex(p.tOn, 0), 1 / p.tOn
	case reTau <= constEnd:
		return 1, 0
	case reTau < offEnd:
		return (complex(offEnd, 0) - tau) / complex(p.tOff, 0), -1 / p.tOff
	default:
		return 0, 0
	}
}

// UnitEnvelope evaluates the real-valued piecewise-linear envelope.
func (p *TrapezoidalPulse) UnitEnvelope(t float64) float64 {
	u, _ := p.envelope(p.tau(complex(t, 0)))
	return real(u)
}

func (p *TrapezoidalPulse) Ax(t complex128) complex128 {
	tau := p.tau(t)
	u, _ := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := complex(math.Cos(p.azimuth), 0), complex(math.Sin(p.azimuth), 0)
	eps := complex(p.ellipticity, 0)
	return complex(p.a0, 0) * u * (c*cosPhi + eps*s*sinPhi)
}

func (p *TrapezoidalPulse) Ay(t complex128) complex128 {
	tau := p.tau(t)
	u, _ := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := complex(math.Cos(p.azimuth), 0), complex(math.Sin(p.azimuth), 0)
	eps := complex(p.ellipticity, 0)
	return complex(p.a0, 0) * u * (-c*sinPhi + eps*s*cosPhi)
}

func (p *TrapezoidalPulse) Fx(t complex128) complex128 {
	tau := p.tau(t)
	u, uPrime := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := complex(math.Cos(p.azimuth), 0), complex(math.Sin(p.azimuth), 0)
	eps := complex(p.ellipticity, 0)

	// Fx = F0*u*(s*cosPhi - eps*c*sinPhi) - A0*u'*(c*cosPhi + eps*s*sinPhi)
	term1 := complex(p.f0, 0) * u * (s*cosPhi - eps*c*sinPhi)
	term2 := complex(p.a0*uPrime, 0) * (c*cosPhi + eps*s*sinPhi)
	return term1 - term2
}

func (p *TrapezoidalPulse) Fy(t complex128) complex128 {
	tau := p.tau(t)
	u, uPrime := p.envelope(tau)
	c, s := carrier(p.omega, p.cep, tau)
	cosPhi, sinPhi := complex(math.Cos(p.azimuth), 0), complex(math.Sin(p.azimuth), 0)
	eps := complex(p.ellipticity, 0)

	// Fy = -F0*u*(s*sinPhi + eps*c*cosPhi) + A0*u'*(c*sinPhi - eps*s*cosPhi)
	term1 := complex(p.f0, 0) * u * (s*sinPhi + eps*c*cosPhi)
	term2 := complex(p.a0*uPrime, 0) * (c*sinPhi - eps*s*cosPhi)
	return complex(-1, 0)*term1 + term2
}
