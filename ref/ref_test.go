package ref_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
	"github.com/dsplab/rrcsim/ref"
)

var _ = Describe("Model", func() {
	var m *ref.Model

	BeforeEach(func() {
		m = ref.NewDefault()
	})

	It("should reproduce the expanded taps as its impulse response", func() {
		taps := coeff.Expand(coeff.Default())
		impulse := fixq.SampleFromFloat(1.0)

		for k := 0; k < coeff.NumTaps; k++ {
			in := fixq.Sample(0)
			if k == 0 {
				in = impulse
			}
			got := m.Step(in)

			// With a single non-zero history position the accumulator is
			// exactly tap[k] * 128; the output is its truncated window.
			want := fixq.FormatOutput(int64(taps[k]) * 128)
			Expect(got).To(Equal(want), "impulse output at step %d", k)
		}
	})

	It("should produce a symmetric impulse response", func() {
		outs := m.Run(impulseStream(coeff.NumTaps))
		for k := 1; k <= coeff.NumPairs; k++ {
			Expect(outs[coeff.CenterIndex+k]).To(
				Equal(outs[coeff.CenterIndex-k]),
				"mirror pair %d", k)
		}
	})

	It("should peak at the center step", func() {
		outs := m.Run(impulseStream(coeff.NumTaps))
		for k, v := range outs {
			if k == coeff.CenterIndex {
				continue
			}
			Expect(v).To(BeNumerically("<", outs[coeff.CenterIndex]))
		}
	})

	It("should clear its history on Reset", func() {
		m.Step(fixq.SampleFromFloat(100))
		m.Step(fixq.SampleFromFloat(-100))
		m.Reset()
		Expect(m.Step(0)).To(Equal(fixq.Output(0)))
	})

	It("should run a stream identically to repeated steps", func() {
		stream := []fixq.Sample{128, -128, 64, 0, -64, 32, 0, 0, -32, 16}
		outs := m.Run(stream)

		m2 := ref.NewDefault()
		for i, s := range stream {
			Expect(outs[i]).To(Equal(m2.Step(s)))
		}
	})
})

// impulseStream returns a unit impulse followed by zeros.
func impulseStream(n int) []fixq.Sample {
	s := make([]fixq.Sample, n)
	s[0] = fixq.SampleFromFloat(1.0)
	return s
}
