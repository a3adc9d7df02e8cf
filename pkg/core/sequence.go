package core

import (
	"math/rand"
)

// FloatSequence is a cursor over a precomputed slice of uniform [0,1) values.
// The slice is generated once before dispatch and shared read-only between
// render workers; each worker wraps it in its own cursor so all of them
// consume identical values in identical order without sharing RNG state.
type FloatSequence struct {
	values []float64
	cursor int
}

// NewFloatSequence creates a cursor positioned at the start of values
func NewFloatSequence(values []float64) *FloatSequence {
	return &FloatSequence{values: values}
}

// Next returns the next value in the sequence, wrapping around at the end
func (s *FloatSequence) Next() float64 {
	v := s.values[s.cursor%len(s.values)]
	s.cursor++
	return v
}

// Len returns the number of values backing the sequence
func (s *FloatSequence) Len() int {
	return len(s.values)
}

// GenerateFloatSequence produces n uniform [0,1) values from random
func GenerateFloatSequence(n int, random *rand.Rand) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = random.Float64()
	}
	return values
}
