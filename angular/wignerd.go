package angular

import (
	"math"
	"math/cmplx"
)

func factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	return math.Gamma(float64(n) + 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SmallD evaluates the Wigner small-d matrix element d^l_{mPrime,m}(beta)
// via Wigner's explicit sum formula.
func SmallD(l, mPrime, m int, beta float64) float64 {
	sMin := maxInt(0, m-mPrime)
	sMax := minInt(l+m, l-mPrime)
	if sMin > sMax {
		return 0
	}

	cosHalf, sinHalf := math.Cos(beta/2), math.Sin(beta/2)
	sum := 0.0
	for s := sMin; s <= sMax; s++ {
		sign := 1.0
		if (mPrime-m+s)%2 != 0 {
			sign = -1.0
		}
		denom := factorial(l+m-s) * factorial(s) * factorial(mPrime-m+s) * factorial(l-mPrime-s)
		cosExp := 2*l + m - mPrime - 2*s
		sinExp := mPrime - m + 2*s
		term := sign / denom * math.Pow(cosHalf, float64(cosExp)) * math.Pow(sinHalf, float64(sinExp))
		sum += term
	}

	prefactor := math.Sqrt(factorial(l+mPrime) * factorial(l-mPrime) * factorial(l+m) * factorial(l-m))
	return prefactor * sum
}

// WignerD evaluates D^l_{mPrime,m}(alpha,beta,gamma) = e^{-i*mPrime*alpha} *
// d^l_{mPrime,m}(beta) * e^{-i*m*gamma}, the rotation matrix element that
// carries Y_{l,mPrime} expressed in the field frame into the target's
// coefficient C_{l,m} in the molecular frame (spec.md 4.6).
func WignerD(l, mPrime, m int, alpha, beta, gamma float64) complex128 {
	d := SmallD(l, mPrime, m, beta)
	phase := cmplx.Exp(complex(0, -float64(mPrime)*alpha)) * cmplx.Exp(complex(0, -float64(m)*gamma))
	return complex(d, 0) * phase
}

// Table memoizes every D^l_{mPrime,m}(alpha,beta,gamma) for 0<=l<=LMax,
// -l<=mPrime,m<=l at a fixed orientation, computed once per batch (the
// Euler angles are constant across the candidates in a batch) and indexed
// by explicit non-negative offsets rather than signed (l,m) pairs.
type Table struct {
	lMax int
	d    [][][]complex128 // d[l][mPrime+l][m+l]
}

// NewTable builds the Wigner-D memo table up to lMax at the given Euler
// angles.
func NewTable(lMax int, alpha, beta, gamma float64) *Table {
	if lMax < 0 {
		lMax = 0
	}
	d := make([][][]complex128, lMax+1)
	for l := 0; l <= lMax; l++ {
		width := 2*l + 1
		d[l] = make([][]complex128, width)
		for i := range d[l] {
			d[l][i] = make([]complex128, width)
		}
		for mp := -l; mp <= l; mp++ {
			for m := -l; m <= l; m++ {
				d[l][mp+l][m+l] = WignerD(l, mp, m, alpha, beta, gamma)
			}
		}
	}
	return &Table{lMax: lMax, d: d}
}

// D returns the memoized D^l_{mPrime,m} entry, or 0 if out of range.
func (t *Table) D(l, mPrime, m int) complex128 {
	if l < 0 || l > t.lMax || mPrime < -l || mPrime > l || m < -l || m > l {
		return 0
	}
	return t.d[l][mPrime+l][m+l]
}

// LMax returns the highest l this table covers.
func (t *Table) LMax() int { return t.lMax }
