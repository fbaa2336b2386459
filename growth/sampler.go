package growth

import (
	"math/rand"
)

// Sampler is the source of every random decision made during growth.
// Float64 returns a value in [0, 1). *rand.Rand is a Sampler.
type Sampler interface {
	Float64() float64
}

var _ Sampler = (*rand.Rand)(nil)

// SequenceSampler replays a fixed list of values, then keeps
// returning the last one. The zero SequenceSampler returns 0.
type SequenceSampler struct {
	vals []float64
	i    int
}

// Sequence returns a sampler that replays vals in order.
func Sequence(vals ...float64) *SequenceSampler {
	return &SequenceSampler{vals: vals}
}

func (s *SequenceSampler) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	if s.i == len(s.vals) {
		return s.vals[len(s.vals)-1]
	}
	v := s.vals[s.i]
	s.i++
	return v
}

// Drawn returns how many values have been taken from the list so far.
func (s *SequenceSampler) Drawn() int {
	return s.i
}
