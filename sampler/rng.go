package sampler

import "math/rand/v2"

// RNG is the uniform random source a batch's Monte Carlo enumeration draws
// from. Implementations must be seeded for reproducibility.
type RNG interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
}

// DefaultRNG wraps math/rand/v2's PCG generator.
type DefaultRNG struct {
	r *rand.Rand
}

// NewDefaultRNG seeds a DefaultRNG from a single 64-bit seed.
func NewDefaultRNG(seed uint64) *DefaultRNG {
	return &DefaultRNG{r: rand.New(rand.NewPCG(seed, splitmix64(seed)))}
}

func (d *DefaultRNG) Float64() float64 { return d.r.Float64() }

// splitmix64 decorrelates a seed into a second PCG stream constant,
// following the standard splitmix64 mixing steps.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// batchRNG derives a per-batch RNG from a root seed and batch index, so
// Monte Carlo enumeration is reproducible under a fixed seed regardless of
// which worker processes a given batch (spec.md 5).
func batchRNG(rootSeed uint64, batchIndex int) RNG {
	return NewDefaultRNG(splitmix64(rootSeed ^ uint64(batchIndex)*0x9E3779B97F4A7C15))
}
