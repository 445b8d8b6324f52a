package pipeline

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

// SumStage computes and registers the 11 symmetric pair sums. Each pair
// of history samples equidistant from the center is widened to 17 bits
// before the add, so the sum of two 16-bit two's-complement values cannot
// overflow. The center sample has no partner; it passes through its own
// one-tick register to stay in lock-step with the paired sums.
type SumStage struct {
	pairs  [coeff.NumPairs]Reg[int32]
	center Reg[fixq.Sample]
}

// Drive computes the pair sums from the current history window.
func (s *SumStage) Drive(h *HistoryBuffer) {
	for k := 0; k < coeff.NumPairs; k++ {
		s.pairs[k].Set(fixq.PairSum(h.At(k), h.At(coeff.NumTaps-1-k)))
	}
	s.center.Set(h.At(coeff.CenterIndex))
}

// Tick advances the sum registers.
func (s *SumStage) Tick() {
	for k := range s.pairs {
		s.pairs[k].Tick()
	}
	s.center.Tick()
}

// Clear zeroes the sum registers.
func (s *SumStage) Clear() {
	for k := range s.pairs {
		s.pairs[k].Clear()
	}
	s.center.Clear()
}

// Pair returns registered pair sum k.
func (s *SumStage) Pair(k int) int32 {
	return s.pairs[k].Out()
}

// Center returns the registered center sample.
func (s *SumStage) Center() fixq.Sample {
	return s.center.Out()
}

// MultiplyStage computes and registers the 12 partial products: each
// registered pair sum times its registered coefficient, plus the center
// sample times the center coefficient. Products are exact 32-bit values;
// truncating here would corrupt the accumulation downstream.
type MultiplyStage struct {
	pairs  [coeff.NumPairs]Reg[int32]
	center Reg[int32]
}

// Drive computes the products from the registered sums and coefficients.
func (m *MultiplyStage) Drive(c *CoeffStage, s *SumStage) {
	for k := 0; k < coeff.NumPairs; k++ {
		m.pairs[k].Set(fixq.Mul(c.At(k), s.Pair(k)))
	}
	m.center.Set(fixq.Mul(c.At(coeff.CenterIndex), int32(s.Center())))
}

// Tick advances the product registers.
func (m *MultiplyStage) Tick() {
	for k := range m.pairs {
		m.pairs[k].Tick()
	}
	m.center.Tick()
}

// Clear zeroes the product registers.
func (m *MultiplyStage) Clear() {
	for k := range m.pairs {
		m.pairs[k].Clear()
	}
	m.center.Clear()
}

// Pair returns registered partial product k.
func (m *MultiplyStage) Pair(k int) int32 {
	return m.pairs[k].Out()
}

// Center returns the registered center partial product.
func (m *MultiplyStage) Center() int32 {
	return m.center.Out()
}
