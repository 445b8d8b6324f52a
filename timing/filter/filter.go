// Package filter provides the consumer-facing square-root-raised-cosine
// filter. It binds the fixed coefficient table to a single-input,
// single-output contract over the lower-level pipeline, which also
// accepts runtime coefficient sets.
package filter

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
	"github.com/dsplab/rrcsim/timing/pipeline"
)

// Filter wraps the pipelined datapath with the fixed coefficient set.
//
// One Tick is one clock edge: a Q8.7 sample in, a Q11.4 sample out, with
// the fixed 18-tick total latency between a sample's arrival and its
// corresponding output.
type Filter struct {
	// Pipeline is the underlying 9-stage datapath.
	Pipeline *pipeline.Pipeline
}

// New creates a filter with the fixed square-root-raised-cosine
// coefficients.
func New() *Filter {
	return &Filter{
		Pipeline: pipeline.New(),
	}
}

// NewWithConfig creates a filter with a runtime coefficient set. The
// config should pass Validate; out-of-bound sets alias silently in the
// output window.
func NewWithConfig(cfg *coeff.Config) *Filter {
	return &Filter{
		Pipeline: pipeline.New(pipeline.WithCoefficients(cfg.Set())),
	}
}

// Tick advances the filter by one clock edge and returns the output
// after the edge.
func (f *Filter) Tick(in fixq.Sample) fixq.Output {
	return f.Pipeline.Tick(in)
}

// Run feeds every input sample through the filter, one per tick, and
// returns the per-tick outputs. Outputs for the first Latency() ticks
// reflect the zero-filled history.
func (f *Filter) Run(in []fixq.Sample) []fixq.Output {
	out := make([]fixq.Output, len(in))
	for i, s := range in {
		out[i] = f.Pipeline.Tick(s)
	}
	return out
}

// RunTicks advances the filter n ticks with a zero input, returning the
// outputs. Useful for flushing in-flight samples through the pipeline.
func (f *Filter) RunTicks(n int) []fixq.Output {
	out := make([]fixq.Output, n)
	for i := range out {
		out[i] = f.Pipeline.Tick(0)
	}
	return out
}

// Reset asynchronously clears the whole pipeline.
func (f *Filter) Reset() {
	f.Pipeline.Reset()
}

// Latency returns the fixed sample-to-output latency in ticks.
func (f *Filter) Latency() int {
	return pipeline.TotalLatency
}

// Stats returns the pipeline counters.
func (f *Filter) Stats() pipeline.Statistics {
	return f.Pipeline.Stats()
}
