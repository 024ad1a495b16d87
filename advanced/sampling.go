package advanced

import (
	"math"
	"sync/atomic"

	"github.com/MichaelTJones/pcg"
)

// Seed counter value a Sampler starts from unless told otherwise.
const DefaultSeed = 1

// Every generator is created on the same PCG stream; only the state seed
// varies between draws.
const samplerSequence = 0xda3e39cb94b95bdb

// Sampler draws random values for site generation. Each draw takes the next
// value of a counter and seeds a fresh generator from it, so the output
// depends only on the sequence of counter values. The counter is atomic:
// concurrent draws always get distinct seeds, but which goroutine gets which
// seed is unspecified. Confine a Sampler to one goroutine to reproduce a
// sequence.
type Sampler struct {
	counter atomic.Uint64
}

func NewSampler(seed uint64) *Sampler {
	s := &Sampler{}
	s.counter.Store(seed)
	return s
}

var defaultSampler = NewSampler(DefaultSeed)

// The process-wide sampler behind NormalizedRandom and RandomSite.
func DefaultSampler() *Sampler {
	return defaultSampler
}

// The counter value the next draw will be seeded from.
func (s *Sampler) Seed() uint64 {
	return s.counter.Load()
}

func (s *Sampler) Reset(seed uint64) {
	s.counter.Store(seed)
}

// Consume one tick and return a generator seeded from it.
func (s *Sampler) generator() *pcg.PCG32 {
	seed := s.counter.Add(1) - 1
	r := pcg.NewPCG32()
	r.Seed(seed, samplerSequence)
	// Neighbouring seeds produce correlated first outputs; step once to mix.
	r.Random()
	return r
}

// Uniform in [0, 1)
func unitFloat(r *pcg.PCG32) float64 {
	return float64(r.Random()) / (1 << 32)
}

// One uniform sample in [0, 1). Consumes one tick.
func (s *Sampler) Uniform() float64 {
	return unitFloat(s.generator())
}

// One normally distributed sample by the Box-Muller transform. Only the sine
// branch is used; the cosine half of the pair is discarded. Consumes one tick.
func (s *Sampler) NormalizedRandom(mean, stddev float64) float64 {
	r := s.generator()
	// Flip into (0, 1] so the log is finite.
	u1 := 1 - unitFloat(r)
	u2 := unitFloat(r)
	normal := math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
	return mean + stddev*normal
}

// Scatter count points around position. Radial offsets are half-normal
// (|N(0.5, 0.5)|) and angles uniform. Consumes two ticks per point.
func (s *Sampler) RandomSite(position Point, count int) []Point {
	if count <= 0 {
		return []Point{}
	}
	sites := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		dist := math.Abs(s.NormalizedRandom(0.5, 0.5))
		angle := 2 * math.Pi * s.Uniform()
		offset := Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(dist)
		sites = append(sites, position.Add(offset))
	}
	return sites
}

// NormalizedRandom on the default sampler.
func NormalizedRandom(mean, stddev float64) float64 {
	return defaultSampler.NormalizedRandom(mean, stddev)
}

// RandomSite on the default sampler.
func RandomSite(position Point, count int) []Point {
	return defaultSampler.RandomSite(position, count)
}
