// Package angular evaluates the real spherical harmonics and Wigner-D
// matrix elements the MO-ADK prefactor sums over (C5 in SPEC_FULL.md).
// Each is stored in a table of per-l slices indexed by explicit
// non-negative offsets rather than signed (l,m) pairs; the Wigner-D table
// is built once per batch, the harmonic table once per evaluation point.
package angular

import "math"

// YTable holds the real solid harmonics Y_{l,m}(x,y,z) for every
// 0<=l<=LMax, -l<=m<=l, evaluated once at a shared (x,y,z) and reused for
// every (l,m) term in a prefactor sum.
//
// Values are real SOLID harmonics (homogeneous polynomials in x,y,z, not
// normalized to the unit sphere): spec.md 4.5 evaluates them at momentum
// components already scaled by 1/kappa, so the caller supplies
// dimensionless, not unit-norm, Cartesian arguments, and the natural
// output of the recursion below is the unnormalized solid-harmonic value.
type YTable struct {
	lMax int
	c    [][]complex128 // c[l][m], m=0..l: "cosine-type" component C_l^m
	s    [][]complex128 // s[l][m], m=0..l: "sine-type" component S_l^m
}

// SolidHarmonics evaluates every real solid harmonic up to lMax at the
// (possibly complex) Cartesian point (x,y,z) using the Ivanic-Ruedenberg
// recursion, which never takes a square root of x,y,z themselves (only of
// small integers), so it extends naturally to complex arguments.
func SolidHarmonics(lMax int, x, y, z complex128) *YTable {
	if lMax < 0 {
		lMax = 0
	}

	c := make([][]complex128, lMax+1)
	s := make([][]complex128, lMax+1)
	for l := 0; l <= lMax; l++ {
		c[l] = make([]complex128, l+1)
		s[l] = make([]complex128, l+1)
	}

	c[0][0] = 1
	s[0][0] = 0

	r2 := x*x + y*y + z*z

	for l := 1; l <= lMax; l++ {
		// Top band: C_l^l, S_l^l from C_{l-1}^{l-1}, S_{l-1}^{l-1}.
		prevC, prevS := c[l-1][l-1], s[l-1][l-1]
		scale := complex(math.Sqrt(float64(2*l-1)/float64(2*l)), 0)
		c[l][l] = scale * (x*prevC - y*prevS)
		s[l][l] = scale * (x*prevS + y*prevC)

		// Next-to-top band: C_l^{l-1}, S_l^{l-1} from C_{l-1}^{l-1}.
		if l-1 >= 0 {
			band := complex(math.Sqrt(float64(2*l-1)), 0)
			c[l][l-1] = band * z * prevC
			s[l][l-1] = band * z * prevS
		}

		// Remaining bands via the three-term recursion in z and r^2.
		for m := 0; m <= l-2; m++ {
			denom := math.Sqrt(float64(l*l - m*m))
			aCoef := complex(float64(2*l-1)/denom, 0)
			bCoef := complex(math.Sqrt(float64((l-1)*(l-1)-m*m))/denom, 0)
			c[l][m] = aCoef*z*c[l-1][m] - bCoef*r2*c[l-2][m]
			s[l][m] = aCoef*z*s[l-1][m] - bCoef*r2*s[l-2][m]
		}
	}

	return &YTable{lMax: lMax, c: c, s: s}
}

// Y returns the real solid harmonic Y_{l,m} for 0<=l<=LMax, -l<=m<=l. The
// convention is Y_{l,0}=C_l^0, Y_{l,m}=C_l^m for m>0, Y_{l,m}=S_l^{-m} for
// m<0, matching the (Condon-Shortley-free) real spherical harmonic basis
// this package uses throughout.
func (t *YTable) Y(l, m int) complex128 {
	if l < 0 || l > t.lMax || m < -l || m > l {
		return 0
	}
	if m >= 0 {
		return t.c[l][m]
	}
	return t.s[l][-m]
}

// LMax returns the highest l this table covers.
func (t *YTable) LMax() int { return t.lMax }

// RealSphericalHarmonic evaluates a single Y_{l,m}(x,y,z) without building
// a full table; used for one-off evaluations outside the sampler's hot
// path (tests, diagnostics).
func RealSphericalHarmonic(l, m int, x, y, z complex128) complex128 {
	return SolidHarmonics(l, x, y, z).Y(l, m)
}
