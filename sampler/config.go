// Package sampler drives the ADK/MO-ADK batch enumeration: it walks real
// birth times, enumerates transverse/longitudinal momentum candidates on a
// grid or by Monte Carlo, builds each candidate's amplitude, filters by
// cutoff, and emits packed seed rows (C7).
package sampler

import (
	"errors"
	"fmt"

	"github.com/strongfield/adksampler/amplitude"
)

// PhaseMethod selects the trajectory phase convention. CTMC carries no
// initial phase; QTMC and SCTS both carry arg(amp) as an extra row column.
type PhaseMethod int

const (
	CTMC PhaseMethod = iota
	QTMC
	SCTS
)

func (m PhaseMethod) valid() bool { return m >= CTMC && m <= SCTS }

// SamplingMode selects how (kd,kz) candidates are enumerated within a batch.
type SamplingMode int

const (
	Grid SamplingMode = iota
	MonteCarlo
)

func (m SamplingMode) valid() bool { return m == Grid || m == MonteCarlo }

// kdCutoff is the internal numerical cutoff below which |kd| candidates are
// discarded regardless of rate (spec.md 3, 4.7).
const kdCutoff = 1e-4

var (
	// ErrInvalidBirthTimeRange is returned when t1 >= t2 or the birth-time count is not positive.
	ErrInvalidBirthTimeRange = errors.New("sampler: birth-time range must have t1<t2 and count>0")
	// ErrInvalidCutoff is returned when the rate cutoff is negative.
	ErrInvalidCutoff = errors.New("sampler: cutoff must be >= 0")
	// ErrInvalidPhaseMethod is returned for an unrecognized phase method.
	ErrInvalidPhaseMethod = errors.New("sampler: unknown phase method")
	// ErrInvalidDimension is returned when dimension is not 2 or 3.
	ErrInvalidDimension = errors.New("sampler: dimension must be 2 or 3")
	// ErrInvalidSamplingMode is returned for an unrecognized sampling mode.
	ErrInvalidSamplingMode = errors.New("sampler: unknown sampling mode")
	// ErrEmptyGridRange is returned when neither kd_max nor kz_max is
	// positive; the check applies in both sampling modes.
	ErrEmptyGridRange = errors.New("sampler: grid mode requires kd_max>0 or kz_max>0")
	// ErrInvalidGridCount is returned when a grid axis count is not positive.
	ErrInvalidGridCount = errors.New("sampler: grid point counts must be > 0")
	// ErrInvalidMCCount is returned when the Monte Carlo draw count is not positive.
	ErrInvalidMCCount = errors.New("sampler: Monte Carlo draw count must be > 0")
)

// Config holds the validated parameters of a sampling run (SamplerConfig,
// spec.md 3).
type Config struct {
	t1, t2 float64
	nt     int

	pMin        float64
	phaseMethod PhaseMethod
	prefix      amplitude.PrefixSet
	dimension   int
	mode        SamplingMode

	kdMax float64
	nKd   int
	kzMax float64
	nKz   int

	nKt int
}

// Option configures a Config.
type Option func(*Config) error

func defaultConfig() Config {
	return Config{
		nt:          1,
		pMin:        0,
		phaseMethod: CTMC,
		dimension:   3,
		mode:        Grid,
		nKd:         1,
		nKz:         1,
		nKt:         1,
	}
}

// New builds a validated Config from the given options.
func New(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.t1 >= c.t2 || c.nt <= 0 {
		return ErrInvalidBirthTimeRange
	}
	if c.pMin < 0 {
		return ErrInvalidCutoff
	}
	if !c.phaseMethod.valid() {
		return ErrInvalidPhaseMethod
	}
	if err := c.prefix.Validate(); err != nil {
		return err
	}
	if c.dimension != 2 && c.dimension != 3 {
		return ErrInvalidDimension
	}
	if !c.mode.valid() {
		return ErrInvalidSamplingMode
	}
	if c.kdMax <= 0 && c.kzMax <= 0 {
		return ErrEmptyGridRange
	}
	switch c.mode {
	case Grid:
		if c.nKd <= 0 || c.nKz <= 0 {
			return ErrInvalidGridCount
		}
	case MonteCarlo:
		if c.nKt <= 0 {
			return ErrInvalidMCCount
		}
	}
	return nil
}

// WithBirthTimeInterval sets the real birth-time interval [t1,t2] and its
// sample count (uniform partition in grid mode, sorted uniform draws in MC
// mode).
func WithBirthTimeInterval(t1, t2 float64, count int) Option {
	return func(cfg *Config) error {
		cfg.t1, cfg.t2, cfg.nt = t1, t2, count
		return nil
	}
}

// WithCutoff sets the minimum emitted rate p_min.
func WithCutoff(pMin float64) Option {
	return func(cfg *Config) error {
		cfg.pMin = pMin
		return nil
	}
}

// WithPhaseMethod sets the trajectory phase convention.
func WithPhaseMethod(m PhaseMethod) Option {
	return func(cfg *Config) error {
		cfg.phaseMethod = m
		return nil
	}
}

// WithPrefixSet sets the rate-prefix bitfield (Pre/PreCC/Jac).
func WithPrefixSet(s amplitude.PrefixSet) Option {
	return func(cfg *Config) error {
		cfg.prefix = s
		return nil
	}
}

// WithDimension sets the output dimensionality (2 or 3).
func WithDimension(d int) Option {
	return func(cfg *Config) error {
		cfg.dimension = d
		return nil
	}
}

// WithGrid switches to grid sampling with the given axis ranges and counts.
// A non-positive max fixes that axis at zero; its count must still be > 0.
func WithGrid(kdMax float64, nKd int, kzMax float64, nKz int) Option {
	return func(cfg *Config) error {
		cfg.mode = Grid
		cfg.kdMax, cfg.nKd = kdMax, nKd
		cfg.kzMax, cfg.nKz = kzMax, nKz
		return nil
	}
}

// WithMonteCarlo switches to Monte Carlo sampling, drawing nKt candidates
// per batch from the given rectangle half-widths.
func WithMonteCarlo(nKt int, kdMax, kzMax float64) Option {
	return func(cfg *Config) error {
		cfg.mode = MonteCarlo
		cfg.nKt = nKt
		cfg.kdMax, cfg.kzMax = kdMax, kzMax
		return nil
	}
}

// RowWidth returns the emitted SeedRow width for this configuration
// (spec.md 3): 6/7 for 2D without/with phase, 8/9 for 3D.
func (c Config) RowWidth() int {
	width := 6
	if c.dimension == 3 {
		width = 8
	}
	if c.phaseMethod != CTMC {
		width++
	}
	return width
}

func (c Config) String() string {
	return fmt.Sprintf("sampler.Config{dim=%d,mode=%v,phase=%v,nt=%d}", c.dimension, c.mode, c.phaseMethod, c.nt)
}
