package response

import "math"

// Prototype generates an ideal square-root-raised-cosine tap sequence in
// float64, centered on (numTaps-1)/2, normalized so the symbol-spaced tap
// sums equal one. It is the un-quantized counterpart of the fixed Q1.14
// set, used to judge how much the quantization bends the response.
func Prototype(symbolRate, sampleRate, rollOff float64, numTaps int) []float64 {
	taps := make([]float64, numTaps)
	ts := 1.0 / symbolRate

	for i := 0; i < numTaps; i++ {
		t := (float64(i) - float64(numTaps-1)/2.0) / sampleRate

		switch {
		case t == 0:
			taps[i] = (1.0 / ts) * (1.0 - rollOff + 4.0*rollOff/math.Pi)
		case math.Abs(math.Abs(4.0*rollOff*t/ts)-1.0) < 1e-9:
			// Singularity of the closed form at t = +/- Ts/(4*beta).
			taps[i] = (rollOff / (ts * math.Sqrt2)) *
				((1+2/math.Pi)*math.Sin(math.Pi/(4.0*rollOff)) +
					(1-2/math.Pi)*math.Cos(math.Pi/(4.0*rollOff)))
		default:
			num := (1.0 / ts) * (math.Sin(math.Pi*t/ts*(1-rollOff)) +
				4*rollOff*t/ts*math.Cos(math.Pi*t/ts*(1+rollOff)))
			den := math.Pi * t / ts * (1 - (4*rollOff*t/ts)*(4*rollOff*t/ts))
			taps[i] = num / den
		}
	}

	sps := int(sampleRate / symbolRate)
	if sps < 1 {
		sps = 1
	}
	gain := 0.0
	for i := 0; i < numTaps; i += sps {
		gain += taps[i]
	}
	if gain != 0 {
		for i := range taps {
			taps[i] /= gain
		}
	}
	return taps
}
