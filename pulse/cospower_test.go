package pulse

import (
	"math"
	"testing"

	"github.com/strongfield/adksampler/internal/testutil"
)

func TestCos4Scenario(t *testing.T) {
	// Scenario 1: Cos4 monochromatic, circular.
	p, err := NewCos4(4e14, 800, 1, 0, 0, 0, 2)
	if err != nil {
		t.Fatalf("NewCos4: %v", err)
	}

	wantF0 := math.Sqrt(4e14 / (2 * IntensityConst))
	if math.Abs(p.F0()-wantF0) > 1e-6*wantF0 {
		t.Fatalf("F0 = %v, want %v", p.F0(), wantF0)
	}

	wantA0 := wantF0 / p.Omega()
	if math.Abs(p.A0()-wantA0) > 1e-6*wantA0 {
		t.Fatalf("A0 = %v, want %v", p.A0(), wantA0)
	}

	ax := p.Ax(complex(0, 0))
	ay := p.Ay(complex(0, 0))
	if math.Abs(real(ax)-p.A0()) > 1e-9 || math.Abs(imag(ax)) > 1e-9 {
		t.Fatalf("Ax(0) = %v, want %v", ax, p.A0())
	}
	if math.Abs(real(ay)) > 1e-9 {
		t.Fatalf("Ay(0) = %v, want ~0", ay)
	}

	fx := p.Fx(complex(0, 0))
	fy := p.Fy(complex(0, 0))
	if math.Abs(real(fx)) > 1e-9 {
		t.Fatalf("Fx(0) = %v, want ~0", fx)
	}
	// Ay = A0*u*eps*sin(omega*tau) here, so Fy = -dAy/dtau = -eps*F0 at tau=0.
	if math.Abs(real(fy)+p.F0()) > 1e-9 {
		t.Fatalf("Fy(0) = %v, want %v", fy, -p.F0())
	}
}

func TestCos2Scenario(t *testing.T) {
	// Scenario 2: Cos2 linear, no shift.
	p, err := NewCos2(4e14, 800, 0, 0, 0, 0, 2)
	if err != nil {
		t.Fatalf("NewCos2: %v", err)
	}

	for _, tr := range testutil.Linspace(-3, 3, 13) {
		ay := p.Ay(complex(tr, 0))
		if math.Abs(real(ay)) > 1e-9 {
			t.Fatalf("Ay(%v) = %v, want 0 (linear polarization at azimuth 0)", tr, ay)
		}
	}

	fx := p.Fx(complex(0, 0))
	if math.Abs(real(fx)) > 1e-9 {
		t.Fatalf("Fx(0) = %v, want ~0", fx)
	}
}

func TestCosPowerUnitEnvelopeBounds(t *testing.T) {
	for _, kind := range []CosPowerKind{Cos2, Cos4} {
		var p *CosPowerPulse
		var err error
		if kind == Cos2 {
			p, err = NewCos2(4e14, 800, 0.5, 0.3, 0.1, 0, 3)
		} else {
			p, err = NewCos4(4e14, 800, 0.5, 0.3, 0.1, 0, 3)
		}
		if err != nil {
			t.Fatalf("construct: %v", err)
		}

		for _, tr := range testutil.Linspace(-20, 20, 81) {
			u := p.UnitEnvelope(tr)
			if u < -1e-9 || u > 1+1e-9 {
				t.Fatalf("kind=%v UnitEnvelope(%v) = %v, outside [0,1]", kind, tr, u)
			}
		}

		u0 := p.UnitEnvelope(0)
		if math.Abs(u0-1) > 1e-3 {
			t.Fatalf("kind=%v UnitEnvelope(0) = %v, want ~1", kind, u0)
		}
	}
}

func TestCosPowerFiniteDifferenceMatchesField(t *testing.T) {
	for _, kind := range []CosPowerKind{Cos4, Cos2} {
		var p *CosPowerPulse
		var err error
		if kind == Cos2 {
			p, err = NewCos2(3e14, 790, 0.6, 0.2, 0.15, 0, 4)
		} else {
			p, err = NewCos4(3e14, 790, 0.6, 0.2, 0.15, 0, 4)
		}
		if err != nil {
			t.Fatalf("construct: %v", err)
		}

		boundary := p.Cycles() * math.Pi / p.Omega()
		interior := testutil.Linspace(-boundary*0.8, boundary*0.8, 20)
		const h = 1e-5

		for _, tr := range interior {
			dAx := testutil.CentralDifferenceComplex(p.Ax, tr, h)
			fx := p.Fx(complex(tr, 0))
			if diff := cmplxAbs(dAx + fx); diff > 1e-4 {
				t.Fatalf("kind=%v t=%v: dAx/dt=%v != -Fx=%v (diff %v)", kind, tr, dAx, -fx, diff)
			}

			dAy := testutil.CentralDifferenceComplex(p.Ay, tr, h)
			fy := p.Fy(complex(tr, 0))
			if diff := cmplxAbs(dAy + fy); diff > 1e-4 {
				t.Fatalf("kind=%v t=%v: dAy/dt=%v != -Fy=%v (diff %v)", kind, tr, dAy, -fy, diff)
			}
		}
	}
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestCosPowerInvalidConstruction(t *testing.T) {
	if _, err := NewCos4(-1, 800, 0, 0, 0, 0, 2); err == nil {
		t.Fatal("expected error for negative intensity")
	}
	if _, err := NewCos4(4e14, 0, 0, 0, 0, 0, 2); err == nil {
		t.Fatal("expected error for zero wavelength")
	}
	if _, err := NewCos4(4e14, 800, 1.5, 0, 0, 0, 2); err == nil {
		t.Fatal("expected error for out-of-range ellipticity")
	}
	if _, err := NewCos4(4e14, 800, 0, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for zero cycle count")
	}
}

func TestOmegaWavelengthRoundTrip(t *testing.T) {
	wavelength := 800.0
	omega := OmegaConst / wavelength
	back := OmegaConst / omega
	if math.Abs(back-wavelength) > 1e-9 {
		t.Fatalf("round trip wavelength = %v, want %v", back, wavelength)
	}
}

func TestKeldysh(t *testing.T) {
	p, err := NewCos4(4e14, 800, 0, 0, 0, 0, 2)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	ip := 0.5
	want := p.Omega() * math.Sqrt(2*ip) / p.F0()
	if got := p.Keldysh(ip); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Keldysh = %v, want %v", got, want)
	}
}
