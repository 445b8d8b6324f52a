package pipeline

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

// Pipeline latency, in ticks.
const (
	// ArithmeticDepth is the register depth of the arithmetic path:
	// symmetric sum, multiply, four tree stages, output register.
	ArithmeticDepth = 7

	// CenterDelay is the number of ticks a sample needs to shift from the
	// head of the history buffer to the center position, (23-1)/2.
	CenterDelay = (coeff.NumTaps - 1) / 2

	// TotalLatency is the tick count from a sample's arrival to its
	// corresponding output: CenterDelay shifts plus ArithmeticDepth.
	TotalLatency = CenterDelay + ArithmeticDepth
)

// Statistics holds pipeline bookkeeping counters.
type Statistics struct {
	// Ticks is the number of clock edges since construction or the last
	// statistics reset.
	Ticks uint64
	// Resets is the number of asynchronous resets applied.
	Resets uint64
}

// Option is a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithCoefficients replaces the fixed coefficient set. This is the
// runtime-coefficient variant of the datapath; the caller is responsible
// for keeping the set within the widths the tree and output window were
// derived for (see coeff.Config.Validate).
func WithCoefficients(set [coeff.NumDistinct]fixq.Coeff) Option {
	return func(p *Pipeline) {
		p.set = set
	}
}

// Pipeline is the 9-register-stage filter datapath: input capture,
// coefficient re-registration (in parallel with the sample shift),
// symmetric sum, multiply, four adder-tree stages, and the output
// register. Data flows strictly forward; there is no feedback.
//
// Every stage's input is the prior stage's previous-tick registered
// output, so one Tick advances all stages together: first every stage
// drives its next value combinationally, then all registers capture on
// the same edge. Reset is asynchronous and total: it clears every
// register immediately, truncating all in-flight computation.
type Pipeline struct {
	set [coeff.NumDistinct]fixq.Coeff

	history  HistoryBuffer
	coeffs   CoeffStage
	sums     SumStage
	products MultiplyStage
	tree     AdderTree
	out      Reg[fixq.Output]

	stats Statistics
}

// New creates a pipeline with the fixed square-root-raised-cosine
// coefficient set unless overridden by options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{set: coeff.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tick advances the pipeline by one clock edge with in presented at the
// external sample input, and returns the output register value after the
// edge. Zero outputs while the pipeline fills are valid data, not a
// not-ready indication.
func (p *Pipeline) Tick(in fixq.Sample) fixq.Output {
	// Combinational phase: every stage drives its register inputs from
	// the previous tick's registered outputs.
	p.history.Drive(in)
	p.coeffs.Drive(p.set)
	p.sums.Drive(&p.history)
	p.products.Drive(&p.coeffs, &p.sums)
	p.tree.Drive(&p.products)
	p.out.Set(fixq.FormatOutput(p.tree.Sum()))

	// Rising edge: all registers capture together.
	p.history.Tick()
	p.coeffs.Tick()
	p.sums.Tick()
	p.products.Tick()
	p.tree.Tick()
	p.out.Tick()

	p.stats.Ticks++
	return p.out.Out()
}

// Reset asynchronously clears every register in the pipeline. The next
// observed output is zero regardless of prior pipeline contents, and
// after release the filter accumulates from a known zero state.
func (p *Pipeline) Reset() {
	p.history.Clear()
	p.coeffs.Clear()
	p.sums.Clear()
	p.products.Clear()
	p.tree.Clear()
	p.out.Clear()
	p.stats.Resets++
}

// Output returns the current output register value without advancing.
func (p *Pipeline) Output() fixq.Output {
	return p.out.Out()
}

// Stats returns the pipeline counters.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// Coefficients returns the distinct coefficient set in use.
func (p *Pipeline) Coefficients() [coeff.NumDistinct]fixq.Coeff {
	return p.set
}

// Stage probes, used to verify intermediate widths.

// HistoryAt returns the history sample k ticks old.
func (p *Pipeline) HistoryAt(k int) fixq.Sample { return p.history.At(k) }

// PairSum returns registered symmetric pair sum k.
func (p *Pipeline) PairSum(k int) int32 { return p.sums.Pair(k) }

// CenterSample returns the registered center-path sample.
func (p *Pipeline) CenterSample() fixq.Sample { return p.sums.Center() }

// PairProduct returns registered partial product k.
func (p *Pipeline) PairProduct(k int) int32 { return p.products.Pair(k) }

// CenterProduct returns the registered center partial product.
func (p *Pipeline) CenterProduct() int32 { return p.products.Center() }

// TreeStageA returns registered adder-tree stage-A value i.
func (p *Pipeline) TreeStageA(i int) int64 { return p.tree.StageA(i) }

// TreeStageB returns registered adder-tree stage-B value i.
func (p *Pipeline) TreeStageB(i int) int64 { return p.tree.StageB(i) }

// TreeStageC returns registered adder-tree stage-C value i.
func (p *Pipeline) TreeStageC(i int) int64 { return p.tree.StageC(i) }

// Accumulator returns the registered final accumulator.
func (p *Pipeline) Accumulator() int64 { return p.tree.Sum() }
