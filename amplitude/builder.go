package amplitude

import (
	"fmt"
	"math"

	"github.com/strongfield/adksampler/angular"
	"github.com/strongfield/adksampler/geometry"
	"github.com/strongfield/adksampler/pulse"
	"github.com/strongfield/adksampler/target"
)

// Keldysh advisory thresholds (spec.md 7): gamma>=keldyshMarginal is a
// marginal tunneling regime, gamma>=keldyshInvalid is outside it entirely.
// Both are non-fatal; the sampler warns and continues.
const (
	keldyshMarginal = 0.6
	keldyshInvalid  = 1.0
)

// Builder holds everything about a pulse/target pair that does not change
// from one tunneling-exit candidate to the next: the Rydberg-like constants
// kappa, n*, and the selected prefix set.
type Builder struct {
	pulse  pulse.Model
	target target.Target
	prefix PrefixSet

	kappa float64
	nStar float64

	warnings []string
}

// New constructs an amplitude builder for the given pulse, target, and
// prefix set, downgrading PreCC to Pre when the pulse is not monochromatic.
// The returned bool reports that downgrade; Builder.Warnings carries it
// plus any Keldysh-parameter Advisory (spec.md 7) as human-readable text.
func New(p pulse.Model, tgt target.Target, prefix PrefixSet) (*Builder, bool, error) {
	if err := prefix.Validate(); err != nil {
		return nil, false, err
	}
	downgraded := false
	if !p.Monochromatic() {
		prefix, downgraded = prefix.Downgrade()
	}

	var warnings []string
	if downgraded {
		warnings = append(warnings, "amplitude: PreCC requested with a non-monochromatic pulse, downgraded to Pre")
	}

	kappa := math.Sqrt(2 * tgt.Ip())
	if gamma := p.Keldysh(tgt.Ip()); gamma >= keldyshInvalid {
		warnings = append(warnings, fmt.Sprintf("amplitude: Keldysh parameter gamma=%.4g >= %.1f (tunneling regime invalid)", gamma, keldyshInvalid))
	} else if gamma >= keldyshMarginal {
		warnings = append(warnings, fmt.Sprintf("amplitude: Keldysh parameter gamma=%.4g >= %.1f (tunneling regime marginal)", gamma, keldyshMarginal))
	}

	return &Builder{
		pulse:    p,
		target:   tgt,
		prefix:   prefix,
		kappa:    kappa,
		nStar:    tgt.Z() / kappa,
		warnings: warnings,
	}, downgraded, nil
}

// Prefix returns the (possibly downgraded) prefix set this builder uses.
func (b *Builder) Prefix() PrefixSet { return b.prefix }

// Warnings returns the non-fatal Advisory/CapabilityDowngrade messages
// raised at construction (spec.md 7), or nil if none applied.
func (b *Builder) Warnings() []string { return b.warnings }

// Batch precomputes everything shared by every candidate at a single real
// birth time tr: the field vector, FF triad, Euler angles, Wigner-D memo
// table, and the c/c_cc tunneling-rate constants.
func (b *Builder) Batch(tr float64) *Batch {
	tc := complex(tr, 0)
	fx, fy := real(b.pulse.Fx(tc)), real(b.pulse.Fy(tc))
	frame := geometry.FieldFrame(fx, fy)
	aT, bT, gT := b.target.Orientation()
	alpha, beta, gamma := geometry.EulerAngles(frame, aT, bT, gT)

	lMax := b.target.LMax()
	wigner := angular.NewTable(lMax, alpha, beta, gamma)

	c := prefactorConst(b.nStar, b.kappa)

	gammaInst := 0.0
	if b.pulse.Monochromatic() {
		u := pulse.ClampEnvelopeFloor(b.pulse.UnitEnvelope(tr))
		gammaInst = b.pulse.Omega() * b.kappa / (b.pulse.F0() * u)
	}
	cCC := coulombCorrectedConst(b.nStar, b.kappa, frame.F, gammaInst)

	return &Batch{
		builder: b,
		tr:      tr,
		fx:      fx,
		fy:      fy,
		frame:   frame,
		wigner:  wigner,
		lMax:    lMax,
		c:       c,
		cCC:     cCC,
	}
}

// prefactorConst computes c = 2^(n*/2+1) * kappa^(2n*+1/2) * Gamma(n*/2+1).
func prefactorConst(nStar, kappa float64) float64 {
	return math.Pow(2, nStar/2+1) * math.Pow(kappa, 2*nStar+0.5) * math.Gamma(nStar/2+1)
}

// coulombCorrectedConst computes
// c_cc = 2^(3n*/2+1) * kappa^(5n*+1/2) * F^(-n*) * (1+2*gammaInst/e)^(-n*).
func coulombCorrectedConst(nStar, kappa, f, gammaInst float64) float64 {
	return math.Pow(2, 1.5*nStar+1) * math.Pow(kappa, 5*nStar+0.5) *
		math.Pow(f, -nStar) * math.Pow(1+2*gammaInst/pulse.EulerE, -nStar)
}
