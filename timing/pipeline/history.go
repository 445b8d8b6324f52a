package pipeline

import (
	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

// HistoryBuffer holds the last 23 input samples as a 23-register shift
// chain. Register k's input is register k-1's previous output; register 0
// takes the new external sample. Reading position k yields the sample
// current k ticks earlier. The length is fixed by construction.
type HistoryBuffer struct {
	regs [coeff.NumTaps]Reg[fixq.Sample]
}

// Drive presents the new sample and the shifted chain at the register
// inputs.
func (h *HistoryBuffer) Drive(in fixq.Sample) {
	h.regs[0].Set(in)
	for k := 1; k < coeff.NumTaps; k++ {
		h.regs[k].Set(h.regs[k-1].Out())
	}
}

// Tick shifts the chain by one position; the oldest sample is discarded.
func (h *HistoryBuffer) Tick() {
	for k := range h.regs {
		h.regs[k].Tick()
	}
}

// Clear zeroes the entire window.
func (h *HistoryBuffer) Clear() {
	for k := range h.regs {
		h.regs[k].Clear()
	}
}

// At returns the sample that entered the buffer k ticks earlier.
func (h *HistoryBuffer) At(k int) fixq.Sample {
	return h.regs[k].Out()
}
