// Package pipeline implements the cycle-accurate 9-stage filter datapath.
package pipeline

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

// Reg is a clocked fixed-width storage cell with asynchronous clear.
//
// Set drives the input combinationally; Tick models the rising clock
// edge, capturing the driven input into the registered output; Clear
// models asynchronous reset, forcing both sides to zero immediately.
// Registers are the only place time advances; everything between them
// is combinational.
type Reg[T ~int16 | ~int32 | ~int64] struct {
	d T // driven input, captured on the next edge
	q T // registered output
}

// Set drives the register input.
func (r *Reg[T]) Set(v T) { r.d = v }

// Out returns the registered output.
func (r *Reg[T]) Out() T { return r.q }

// Tick captures the driven input on the rising edge.
func (r *Reg[T]) Tick() { r.q = r.d }

// Clear forces the register to zero, overriding clocking.
func (r *Reg[T]) Clear() {
	r.d = 0
	r.q = 0
}

// CoeffStage re-registers the 12 distinct coefficients. The extra
// register layer exists solely to align the coefficients with the
// once-delayed symmetric sums, so both multiply operands arrive on the
// same tick.
type CoeffStage struct {
	regs [coeff.NumDistinct]Reg[fixq.Coeff]
}

// Drive presents the coefficient set at the register inputs.
func (s *CoeffStage) Drive(set [coeff.NumDistinct]fixq.Coeff) {
	for i, c := range set {
		s.regs[i].Set(c)
	}
}

// Tick advances all 12 registers.
func (s *CoeffStage) Tick() {
	for i := range s.regs {
		s.regs[i].Tick()
	}
}

// Clear zeroes all 12 registers.
func (s *CoeffStage) Clear() {
	for i := range s.regs {
		s.regs[i].Clear()
	}
}

// At returns registered coefficient k.
func (s *CoeffStage) At(k int) fixq.Coeff {
	return s.regs[k].Out()
}
