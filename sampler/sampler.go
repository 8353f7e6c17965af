package sampler

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/strongfield/adksampler/amplitude"
	"github.com/strongfield/adksampler/pulse"
	"github.com/strongfield/adksampler/target"
)

// Batch is the result of enumerating one birth time's candidates: packed
// seed rows of uniform width, or an empty set when nothing survived the
// cutoff (spec.md 4.7, EmptyBatch).
type Batch struct {
	Index int
	Width int
	Rows  [][]float64
}

// Empty reports whether this batch carries no surviving rows.
func (b Batch) Empty() bool { return len(b.Rows) == 0 }

// Sampler enumerates tunneling-exit candidates for a fixed pulse, target,
// and configuration, producing batches of packed seed rows (C7).
type Sampler struct {
	pulse  pulse.Model
	target target.Target
	cfg    Config

	builder    *amplitude.Builder
	downgraded bool

	tSamples []float64
	rootSeed uint64
}

// NewSampler constructs a Sampler. rootSeed seeds Monte Carlo birth-time
// draws and every per-batch Monte Carlo RNG. The second return value
// reports whether PreCC was silently downgraded to Pre (CapabilityDowngrade).
func NewSampler(p pulse.Model, tgt target.Target, cfg Config, rootSeed uint64) (*Sampler, bool, error) {
	b, downgraded, err := amplitude.New(p, tgt, cfg.prefix)
	if err != nil {
		return nil, false, err
	}

	tSamples := birthTimes(cfg, rootSeed)

	return &Sampler{
		pulse:      p,
		target:     tgt,
		cfg:        cfg,
		builder:    b,
		downgraded: downgraded,
		tSamples:   tSamples,
		rootSeed:   rootSeed,
	}, downgraded, nil
}

// Downgraded reports whether this sampler silently replaced PreCC with Pre.
func (s *Sampler) Downgraded() bool { return s.downgraded }

// Warnings returns the non-fatal Advisory/CapabilityDowngrade messages
// raised when this sampler was constructed (spec.md 7), or nil if none
// applied.
func (s *Sampler) Warnings() []string { return s.builder.Warnings() }

// BatchCount returns the number of birth-time batches (N_t).
func (s *Sampler) BatchCount() int { return len(s.tSamples) }

// BatchMaxSize returns the maximum number of candidates enumerated within
// one batch, before cutoff filtering.
func (s *Sampler) BatchMaxSize() int {
	if s.cfg.mode == Grid {
		return s.cfg.nKd * s.cfg.nKz
	}
	return s.cfg.nKt
}

func birthTimes(cfg Config, rootSeed uint64) []float64 {
	if cfg.mode == Grid {
		t, _ := linspace(cfg.t1, cfg.t2, cfg.nt)
		return t
	}
	rng := NewDefaultRNG(rootSeed)
	t := make([]float64, cfg.nt)
	for i := range t {
		t[i] = cfg.t1 + rng.Float64()*(cfg.t2-cfg.t1)
	}
	sort.Float64s(t)
	return t
}

// GenerateBatch enumerates and filters every candidate at birth time index
// i, returning the packed rows that survive the cutoff.
func (s *Sampler) GenerateBatch(ctx context.Context, i int) (Batch, error) {
	select {
	case <-ctx.Done():
		return Batch{}, ctx.Err()
	default:
	}
	if i < 0 || i >= len(s.tSamples) {
		return Batch{}, fmt.Errorf("sampler: batch index %d out of range [0,%d)", i, len(s.tSamples))
	}

	bt := s.builder.Batch(s.tSamples[i])
	width := s.cfg.RowWidth()

	var kds, kzs, deltas []float64
	if s.cfg.mode == Grid {
		kds, kzs, deltas = s.enumerateGrid()
	} else {
		kds, kzs, deltas = s.enumerateMonteCarlo(i)
	}

	cands := bt.EvaluateBatch(kds, kzs, deltas)
	var rows [][]float64
	for j, c := range cands {
		if math.Abs(kds[j]) < kdCutoff {
			continue
		}
		if math.IsNaN(c.Rate) || c.Rate < s.cfg.pMin {
			continue
		}
		rows = append(rows, packRow(c, s.cfg))
	}

	return Batch{Index: i, Width: width, Rows: rows}, nil
}

// enumerateGrid lays out every (kd,kz) grid point of this batch along with
// its sample-volume factor, for a single Builder.Batch.EvaluateBatch call.
func (s *Sampler) enumerateGrid() (kds, kzs, deltas []float64) {
	kdAxis, deltaKd := gridAxis(s.cfg.kdMax, s.cfg.nKd)

	kzAxis, deltaKz := []float64{0}, 1.0
	if s.cfg.dimension == 3 {
		kzAxis, deltaKz = gridAxis(s.cfg.kzMax, s.cfg.nKz)
	}

	deltaT := s.timeStep()
	delta := deltaT * deltaKd * deltaKz

	n := len(kdAxis) * len(kzAxis)
	kds = make([]float64, 0, n)
	kzs = make([]float64, 0, n)
	deltas = make([]float64, 0, n)
	for _, kd := range kdAxis {
		for _, kz := range kzAxis {
			kds = append(kds, kd)
			kzs = append(kzs, kz)
			deltas = append(deltas, delta)
		}
	}
	return kds, kzs, deltas
}

// enumerateMonteCarlo draws this batch's N_kt random (kd,kz) candidates
// along with their shared sample-volume factor.
func (s *Sampler) enumerateMonteCarlo(batchIndex int) (kds, kzs, deltas []float64) {
	rng := batchRNG(s.rootSeed, batchIndex)
	kdActive := s.cfg.kdMax > 0
	kzActive := s.cfg.dimension == 3 && s.cfg.kzMax > 0

	width := 1.0
	if kdActive {
		width *= 2 * s.cfg.kdMax
	}
	if kzActive {
		width *= 2 * s.cfg.kzMax
	}
	delta := s.timeStep() * width / float64(s.cfg.nKt)

	kds = make([]float64, s.cfg.nKt)
	kzs = make([]float64, s.cfg.nKt)
	deltas = make([]float64, s.cfg.nKt)
	for j := 0; j < s.cfg.nKt; j++ {
		kd, kz := 0.0, 0.0
		if kdActive {
			kd = -s.cfg.kdMax + 2*s.cfg.kdMax*rng.Float64()
		}
		if kzActive {
			kz = -s.cfg.kzMax + 2*s.cfg.kzMax*rng.Float64()
		}
		kds[j], kzs[j], deltas[j] = kd, kz, delta
	}
	return kds, kzs, deltas
}

// timeStep returns the birth-time grid spacing (1 when N_t==1).
func (s *Sampler) timeStep() float64 {
	if s.cfg.nt <= 1 {
		return 1
	}
	return (s.cfg.t2 - s.cfg.t1) / float64(s.cfg.nt-1)
}

// GenerateAll runs every batch across a bounded worker pool, reassembling
// results in index order regardless of completion order. Cancellation is
// checked at batch boundaries; already-completed batches are preserved and
// returned alongside the context error.
func (s *Sampler) GenerateAll(ctx context.Context, workers int) ([]Batch, error) {
	if workers < 1 {
		workers = 1
	}

	n := s.BatchCount()
	results := make([]Batch, n)
	errs := make([]error, n)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				b, err := s.GenerateBatch(ctx, i)
				results[i] = b
				errs[i] = err
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
