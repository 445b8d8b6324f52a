// Package response provides frequency-domain verification of the filter.
//
// The datapath itself is verified cycle-by-cycle and bit-for-bit; this
// package checks the other axis, that the quantized coefficient set still
// behaves like a square-root-raised-cosine filter: magnitude response,
// DC gain, and the flat group delay implied by the symmetric taps.
package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/dsplab/rrcsim/fixq"
	"github.com/dsplab/rrcsim/timing/filter"
)

// Magnitude returns |H[k]| for bins 0..fftSize/2 of the tap sequence's
// frequency response. fftSize must be a power of two and at least
// len(taps).
func Magnitude(taps []float64, fftSize int) ([]float64, error) {
	if fftSize < len(taps) {
		return nil, fmt.Errorf("fft size %d smaller than tap count %d", fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, t := range taps {
		in[i] = complex(t, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// MagnitudeDB returns the magnitude response in dB relative to the DC
// gain. Bins with negligible energy are floored at -160 dB.
func MagnitudeDB(taps []float64, fftSize int) ([]float64, error) {
	mag, err := Magnitude(taps, fftSize)
	if err != nil {
		return nil, err
	}

	ref := mag[0]
	if ref == 0 {
		return nil, fmt.Errorf("response: zero DC gain")
	}

	db := make([]float64, len(mag))
	for k, m := range mag {
		r := m / ref
		if r < 1e-8 {
			db[k] = -160
			continue
		}
		db[k] = 20 * math.Log10(r)
	}
	return db, nil
}

// GroupDelay returns the group delay in samples for bins 1..n-1 of the
// first n response bins, computed as the backward phase difference. For
// a symmetric FIR the delay is flat at (len(taps)-1)/2 wherever the
// magnitude is non-zero.
func GroupDelay(taps []float64, fftSize, n int) ([]float64, error) {
	if n > fftSize/2 {
		return nil, fmt.Errorf("bin count %d exceeds fft size %d", n, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, t := range taps {
		in[i] = complex(t, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	phase := make([]float64, n)
	for k := 0; k < n; k++ {
		phase[k] = math.Atan2(imag(out[k]), real(out[k]))
	}

	// Unwrap, then differentiate: tau[k] = -dphi/dw.
	for k := 1; k < n; k++ {
		for phase[k]-phase[k-1] > math.Pi {
			phase[k] -= 2 * math.Pi
		}
		for phase[k]-phase[k-1] < -math.Pi {
			phase[k] += 2 * math.Pi
		}
	}

	dw := 2 * math.Pi / float64(fftSize)
	delay := make([]float64, n-1)
	for k := 1; k < n; k++ {
		delay[k-1] = -(phase[k] - phase[k-1]) / dw
	}
	return delay, nil
}

// DCGain returns the zero-frequency gain of the tap sequence.
func DCGain(taps []float64) float64 {
	sum := 0.0
	for _, t := range taps {
		sum += t
	}
	return sum
}

// ImpulseResponse runs a unit impulse (1.0 in Q8.7) through the
// bit-exact pipelined filter and returns n output ticks as floats. The
// peak appears at tick filter.New().Latency().
func ImpulseResponse(n int) []float64 {
	f := filter.New()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		in := fixq.Sample(0)
		if i == 0 {
			in = fixq.SampleFromFloat(1.0)
		}
		out[i] = f.Tick(in).Float()
	}
	return out
}
