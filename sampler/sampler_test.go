package sampler

import (
	"context"
	"math"
	"testing"

	"github.com/strongfield/adksampler/amplitude"
	"github.com/strongfield/adksampler/pulse"
	"github.com/strongfield/adksampler/target"
)

func newScenarioPulseAndAtom(t *testing.T) (*pulse.CosPowerPulse, *target.Atom) {
	t.Helper()
	// cep=pi/2 puts the field, not the vector potential, at its peak at
	// tau=0: at cep=0 (spec.md scenario 2) Fx(0)=Fy(0)=0 exactly, which
	// would make every amplitude constant below divide by a zero field.
	p, err := pulse.NewCos2(4e14, 800, 0, 0, math.Pi/2, 0, 2)
	if err != nil {
		t.Fatalf("NewCos2: %v", err)
	}
	atom, err := target.NewAtom(0.5, 1, 0, 0, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewAtom: %v", err)
	}
	return p, atom
}

// TestGenerateBatchGridSAEAtom covers spec.md scenario 4: a 2D grid batch
// over N_kd=21 points spanning kd_max=1.0 must emit exactly 20 rows, the
// |kd|<1e-4 center candidate discarded.
func TestGenerateBatchGridSAEAtom(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 1),
		WithDimension(2),
		WithGrid(1.0, 21, 0, 1),
		WithCutoff(0),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, downgraded, err := NewSampler(p, atom, cfg, 1)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}
	if downgraded {
		t.Fatal("did not expect a downgrade for a monochromatic pulse with no prefix")
	}

	b, err := s.GenerateBatch(context.Background(), 0)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(b.Rows) != 20 {
		t.Fatalf("emitted %d rows, want 20", len(b.Rows))
	}
	if b.Width != 6 {
		t.Fatalf("Width = %d, want 6 (2D, CTMC)", b.Width)
	}
}

// nonMonochromaticPulse exercises the PreCC->Pre CapabilityDowngrade path
// (spec.md scenario 5), since every real pulse kind reports
// Monochromatic()==true.
type nonMonochromaticPulse struct{ *pulse.CosPowerPulse }

func (nonMonochromaticPulse) Monochromatic() bool { return false }

func TestNewDowngradesPreCC(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)
	fake := nonMonochromaticPulse{p}

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 1),
		WithDimension(2),
		WithGrid(1.0, 21, 0, 1),
		WithPrefixSet(amplitude.PreCC),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, downgraded, err := NewSampler(fake, atom, cfg, 1)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}
	if !downgraded {
		t.Fatal("expected CapabilityDowngrade for non-monochromatic pulse")
	}
	if s.Downgraded() != true {
		t.Fatal("Downgraded() should report true")
	}
}

// TestGenerateBatchEmptyBatchSentinel covers spec.md scenario 6: a cutoff
// above every achievable rate returns an empty batch, not an error.
func TestGenerateBatchEmptyBatchSentinel(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 1),
		WithDimension(2),
		WithGrid(1.0, 21, 0, 1),
		WithCutoff(1.0),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, _, err := NewSampler(p, atom, cfg, 1)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}

	b, err := s.GenerateBatch(context.Background(), 0)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if !b.Empty() {
		t.Fatalf("expected empty batch, got %d rows", len(b.Rows))
	}
}

func TestSamplerWarningsExposesBuilderAdvisories(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)
	fake := nonMonochromaticPulse{p}

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 1),
		WithDimension(2),
		WithGrid(1.0, 21, 0, 1),
		WithPrefixSet(amplitude.PreCC),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, _, err := NewSampler(fake, atom, cfg, 1)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}
	if len(s.Warnings()) == 0 {
		t.Fatal("expected at least the CapabilityDowngrade warning")
	}
}

func TestGenerateAllReassemblesInOrder(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 6),
		WithDimension(2),
		WithGrid(1.0, 9, 0, 1),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, _, err := NewSampler(p, atom, cfg, 7)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}

	batches, err := s.GenerateAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(batches) != s.BatchCount() {
		t.Fatalf("len(batches) = %d, want %d", len(batches), s.BatchCount())
	}
	for i, b := range batches {
		if b.Index != i {
			t.Fatalf("batches[%d].Index = %d, want %d", i, b.Index, i)
		}
	}
}

func TestGenerateAllPreservesPartialResultsOnCancel(t *testing.T) {
	p, atom := newScenarioPulseAndAtom(t)

	cfg, err := New(
		WithBirthTimeInterval(0, 1, 50),
		WithDimension(2),
		WithGrid(1.0, 9, 0, 1),
	)
	if err != nil {
		t.Fatalf("New config: %v", err)
	}

	s, _, err := NewSampler(p, atom, cfg, 3)
	if err != nil {
		t.Fatalf("New sampler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batches, err := s.GenerateAll(ctx, 2)
	if err == nil {
		t.Fatal("expected context.Canceled error")
	}
	if len(batches) != s.BatchCount() {
		t.Fatalf("len(batches) = %d, want %d even on cancel", len(batches), s.BatchCount())
	}
}
