// Package ref provides the functional reference model of the filter.
//
// The model computes a direct-form 23-term multiply-accumulate over the
// explicit mirrored tap sequence, with the same bit-exact fixed-point
// arithmetic as the pipelined datapath but no register delays. Because
// two's-complement addition at the accumulator width is associative, the
// model is bit-identical to the symmetric-sum-then-multiply structure in
// timing/pipeline, offset only by that pipeline's register depth.
package ref

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

// Model is a zero-latency direct-form FIR over the expanded 23 taps.
type Model struct {
	taps [coeff.NumTaps]fixq.Coeff
	hist [coeff.NumTaps]fixq.Sample
}

// New creates a reference model from a distinct coefficient set.
func New(set [coeff.NumDistinct]fixq.Coeff) *Model {
	return &Model{taps: coeff.Expand(set)}
}

// NewDefault creates a reference model with the fixed
// square-root-raised-cosine set.
func NewDefault() *Model {
	return New(coeff.Default())
}

// Step shifts in one sample and returns the output for the updated
// history window. Each partial product is exact in 32 bits; the running
// sum wraps at the accumulator width, exactly as the adder tree does.
func (m *Model) Step(in fixq.Sample) fixq.Output {
	copy(m.hist[1:], m.hist[:coeff.NumTaps-1])
	m.hist[0] = in

	acc := int64(0)
	for i, c := range m.taps {
		product := fixq.Mul(c, int32(m.hist[i]))
		acc = fixq.WrapAcc(acc + int64(product))
	}
	return fixq.FormatOutput(acc)
}

// Run feeds every input sample through the model and returns the outputs.
func (m *Model) Run(in []fixq.Sample) []fixq.Output {
	out := make([]fixq.Output, len(in))
	for i, s := range in {
		out[i] = m.Step(s)
	}
	return out
}

// Reset clears the history window.
func (m *Model) Reset() {
	m.hist = [coeff.NumTaps]fixq.Sample{}
}
