package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3}, 1e-9)
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{0, 1}, []float64{0, 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff() = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{0}, []float64{0, 1}); err == nil {
		t.Fatal("expected length-mismatch error")
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 3)
	want := []float64{0, 0.5, 1}
	RequireSliceNearlyEqual(t, got, want, 1e-12)

	single := Linspace(2, 5, 1)
	if len(single) != 1 || single[0] != 2 {
		t.Fatalf("Linspace(n=1) = %v, want [2]", single)
	}
}

func TestCentralDifference(t *testing.T) {
	// d/dt t^2 = 2t, i.e. 6 at t=3
	got := CentralDifference(func(t float64) float64 {
		return t * t
	}, 3.0, 1e-4)
	if !(got > 5.999 && got < 6.001) {
		t.Fatalf("CentralDifference(t^2) at 3 = %v, want ~6", got)
	}
}
