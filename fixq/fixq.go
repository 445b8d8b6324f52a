// Package fixq defines the fixed-point formats used by the filter datapath.
//
// All formats are signed two's-complement Q(m.n) values: m integer bits,
// n fractional bits, one sign bit. Arithmetic is exact and wrapping; the
// package never saturates and never rounds. The only lossy operation is
// the deliberate truncation performed by FormatOutput.
package fixq

// Sample is a Q8.7 time-domain sample (16-bit two's-complement).
type Sample int16

// Coeff is a Q1.14 filter coefficient (16-bit two's-complement).
type Coeff int16

// Output is a Q11.4 filtered output sample (16-bit two's-complement).
type Output int16

// Bit widths and fractional positions of the datapath formats.
const (
	// SampleFracBits is the fractional bit count of the Q8.7 sample format.
	SampleFracBits = 7

	// CoeffFracBits is the fractional bit count of the Q1.14 coefficient format.
	CoeffFracBits = 14

	// SumWidth is the width of a symmetric pair sum (Q9.7). Widening two
	// 16-bit samples to 17 bits before adding makes overflow structurally
	// impossible.
	SumWidth = 17

	// ProductWidth is the width of a coefficient-times-sum partial product.
	// Products are computed exactly; nothing is truncated before the tree.
	ProductWidth = 32

	// AccWidth is the width of the accumulator carried through the adder
	// tree (Q14.21). All tree stages keep this full width.
	AccWidth = 35

	// AccFracBits is the fractional bit count of the accumulator.
	AccFracBits = 21

	// OutputFracBits is the fractional bit count of the Q11.4 output format.
	OutputFracBits = 4

	// OutputShift is the number of low accumulator bits discarded by the
	// output window (AccFracBits - OutputFracBits).
	OutputShift = 17
)

// SampleFromFloat converts v to Q8.7, truncating toward zero. Values
// outside the representable range wrap, matching the datapath's
// accept-as-is input contract.
func SampleFromFloat(v float64) Sample {
	return Sample(int64(v * (1 << SampleFracBits)))
}

// Float returns the sample value as a float64.
func (s Sample) Float() float64 {
	return float64(s) / (1 << SampleFracBits)
}

// CoeffFromFloat converts v to Q1.14, truncating toward zero.
func CoeffFromFloat(v float64) Coeff {
	return Coeff(int64(v * (1 << CoeffFracBits)))
}

// Float returns the coefficient value as a float64.
func (c Coeff) Float() float64 {
	return float64(c) / (1 << CoeffFracBits)
}

// Float returns the output value as a float64.
func (o Output) Float() float64 {
	return float64(o) / (1 << OutputFracBits)
}

// PairSum adds two samples widened to SumWidth bits. The result always
// fits: the sum of two 16-bit two's-complement values needs at most 17.
func PairSum(a, b Sample) int32 {
	return int32(a) + int32(b)
}

// Mul multiplies a coefficient by a widened operand (a symmetric pair sum
// or a sign-extended center sample), producing the exact product in a
// 32-bit register. Like hardware, the multiply wraps at ProductWidth; for
// the bounded coefficient sets this package is used with, it never does.
func Mul(c Coeff, operand int32) int32 {
	return int32(c) * operand
}

// WrapInt64 reduces v to a two's-complement value of the given width,
// sign-extending bit width-1. It models a fixed-width hardware register:
// bits above the width are discarded, never saturated.
func WrapInt64(v int64, width uint) int64 {
	s := 64 - width
	return (v << s) >> s
}

// WrapAcc reduces v to the accumulator width.
func WrapAcc(v int64) int64 {
	return WrapInt64(v, AccWidth)
}

// FormatOutput extracts the Q11.4 output window from a full-width
// accumulator: the low OutputShift fractional bits and the top two
// integer bits are discarded. This is deterministic truncation, valid for
// the dynamic range of the fixed coefficient set; accumulators outside
// that range alias silently rather than saturating.
func FormatOutput(acc int64) Output {
	return Output(int16(acc >> OutputShift))
}
