// Package coeff supplies the square-root-raised-cosine coefficient set.
//
// The filter is a symmetric 23-tap FIR: tap i equals tap 22-i, so only 12
// distinct coefficients exist. Index 11 is the unpaired center tap.
package coeff

import "github.com/dsplab/rrcsim/fixq"

const (
	// NumTaps is the filter order plus one.
	NumTaps = 23

	// NumDistinct is the number of distinct coefficients after folding the
	// even symmetry of the 23 taps.
	NumDistinct = 12

	// NumPairs is the number of tap pairs equidistant from the center.
	NumPairs = 11

	// CenterIndex is the distinct-coefficient index of the unpaired
	// center tap.
	CenterIndex = 11
)

// defaultSet holds the fixed Q1.14 coefficient magnitudes, index 0..11.
var defaultSet = [NumDistinct]fixq.Coeff{
	-270, -245, 253, 694, 253, -1228,
	-2569, -1738, 2569, 9479, 15966, 18622,
}

// Default returns the fixed square-root-raised-cosine coefficient set.
func Default() [NumDistinct]fixq.Coeff {
	return defaultSet
}

// Expand mirrors the 12 distinct coefficients into the explicit 23-tap
// sequence: tap i and tap 22-i share distinct coefficient i.
func Expand(set [NumDistinct]fixq.Coeff) [NumTaps]fixq.Coeff {
	var taps [NumTaps]fixq.Coeff
	for i := 0; i < NumPairs; i++ {
		taps[i] = set[i]
		taps[NumTaps-1-i] = set[i]
	}
	taps[CenterIndex] = set[CenterIndex]
	return taps
}

// Floats returns the expanded 23-tap sequence as float64 coefficient
// values, for frequency-domain analysis.
func Floats(set [NumDistinct]fixq.Coeff) []float64 {
	taps := Expand(set)
	out := make([]float64, NumTaps)
	for i, c := range taps {
		out[i] = c.Float()
	}
	return out
}
