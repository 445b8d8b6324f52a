package coeff_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dsplab/rrcsim/coeff"
	"github.com/dsplab/rrcsim/fixq"
)

var _ = Describe("Default", func() {
	It("should hold the fixed coefficient set", func() {
		set := coeff.Default()
		Expect(set[0]).To(Equal(fixq.Coeff(-270)))
		Expect(set[10]).To(Equal(fixq.Coeff(15966)))
		Expect(set[coeff.CenterIndex]).To(Equal(fixq.Coeff(18622)))
	})
})

var _ = Describe("Expand", func() {
	It("should mirror the 12 distinct coefficients into 23 taps", func() {
		taps := coeff.Expand(coeff.Default())
		for i := 0; i < coeff.NumPairs; i++ {
			Expect(taps[i]).To(Equal(taps[coeff.NumTaps-1-i]),
				"tap %d must mirror tap %d", i, coeff.NumTaps-1-i)
		}
		Expect(taps[coeff.CenterIndex]).To(Equal(fixq.Coeff(18622)))
		Expect(taps[0]).To(Equal(fixq.Coeff(-270)))
		Expect(taps[22]).To(Equal(fixq.Coeff(-270)))
	})
})

var _ = Describe("Floats", func() {
	It("should return the expanded taps as Q1.14 float values", func() {
		taps := coeff.Floats(coeff.Default())
		Expect(taps).To(HaveLen(coeff.NumTaps))
		Expect(taps[coeff.CenterIndex]).To(BeNumerically("~", 1.13659, 1e-5))
		Expect(taps[0]).To(Equal(taps[22]))
	})
})

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("should match the fixed set and validate", func() {
			cfg := coeff.DefaultConfig()
			Expect(cfg.Taps[coeff.CenterIndex]).To(Equal(int16(18622)))
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("should reject sets whose accumulator can alias the output window", func() {
			cfg := &coeff.Config{}
			for i := range cfg.Taps {
				cfg.Taps[i] = 32767
			}
			Expect(cfg.Validate()).To(HaveOccurred())
		})

		It("should not bound the product register", func() {
			// A lone full-scale paired tap keeps the absolute tap sum within
			// the window bound, yet its product against an extreme pair sum
			// wraps 32 bits. Validate documents that it only guards the
			// accumulator window.
			cfg := &coeff.Config{}
			cfg.Taps[0] = -32768
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Describe("LoadConfig / SaveConfig", func() {
		It("should round-trip through JSON", func() {
			path := filepath.Join(GinkgoT().TempDir(), "taps.json")

			cfg := coeff.DefaultConfig()
			cfg.Taps[3] = 700
			Expect(cfg.SaveConfig(path)).To(Succeed())

			loaded, err := coeff.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Taps).To(Equal(cfg.Taps))
		})

		It("should fail for a missing file", func() {
			_, err := coeff.LoadConfig("no/such/file.json")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Clone", func() {
		It("should return an independent copy", func() {
			cfg := coeff.DefaultConfig()
			clone := cfg.Clone()
			clone.Taps[0] = 0
			Expect(cfg.Taps[0]).To(Equal(int16(-270)))
		})
	})

	Describe("Set", func() {
		It("should convert to datapath coefficients", func() {
			set := coeff.DefaultConfig().Set()
			Expect(set).To(Equal(coeff.Default()))
		})
	})
})
