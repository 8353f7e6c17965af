package pulse

import (
	"math"
	"testing"
)

func TestSerializeDeserializeCos4(t *testing.T) {
	orig, err := NewCos4(4e14, 800, 0.3, 0.1, 0.2, 0.05, 3)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	data := Serialize(orig)
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	assertScalarEqual(t, orig, got)
	if got.(*CosPowerPulse).Kind() != Cos4 {
		t.Fatal("expected Cos4 kind to round-trip")
	}
}

func TestSerializeDeserializeCos2(t *testing.T) {
	orig, err := NewCos2(4e14, 800, 0.3, 0.1, 0.2, 0.05, 3)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	got, err := Deserialize(Serialize(orig))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	assertScalarEqual(t, orig, got)
	if got.(*CosPowerPulse).Kind() != Cos2 {
		t.Fatal("expected Cos2 kind to round-trip")
	}
}

func TestSerializeDeserializeTrapezoidal(t *testing.T) {
	orig, err := NewTrapezoidal(4e14, 800, 0.3, 0.1, 0.2, 0.05, 2, 3, 2)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	got, err := Deserialize(Serialize(orig))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	assertScalarEqual(t, orig, got)
}

func TestDeserializeUnknownType(t *testing.T) {
	_, err := Deserialize(map[string]any{"type": "sfa"})
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func assertScalarEqual(t *testing.T, a, b Model) {
	t.Helper()
	const eps = 1e-12
	pairs := []struct {
		name    string
		a, b    float64
	}{
		{"I0", a.I0(), b.I0()},
		{"Wavelength", a.Wavelength(), b.Wavelength()},
		{"Ellipticity", a.Ellipticity(), b.Ellipticity()},
		{"Azimuth", a.Azimuth(), b.Azimuth()},
		{"CEP", a.CEP(), b.CEP()},
		{"TimeShift", a.TimeShift(), b.TimeShift()},
		{"F0", a.F0(), b.F0()},
		{"A0", a.A0(), b.A0()},
	}
	for _, p := range pairs {
		if math.Abs(p.a-p.b) > eps {
			t.Fatalf("%s mismatch: %v != %v", p.name, p.a, p.b)
		}
	}
}
