package pipeline

import "github.com/dsplab/rrcsim/fixq"

// AdderTree reduces the 12 partial products to one accumulated sum in
// four registered stages:
//
//	Stage A (6 adds): product pairs (0,1) (2,3) (4,5) (6,7) (8,9) and
//	                  (10,center) - the center product folds in here.
//	Stage B (3 adds): pairs the six A results.
//	Stage C:          adds two of the three B results; the third passes
//	                  through unchanged.
//	Stage D (1 add):  the final accumulator.
//
// Operands are sign-extended to the accumulator width at stage A and
// every intermediate stays at that full width, so no intermediate can
// overflow for coefficient sets within the declared bounds. The balanced
// tree keeps the per-tick critical path to a single add regardless of
// tap count.
type AdderTree struct {
	a [6]Reg[int64]
	b [3]Reg[int64]
	c [2]Reg[int64]
	d Reg[int64]
}

// Drive computes every tree stage from the previous tick's registered
// values of the stage above it.
func (t *AdderTree) Drive(m *MultiplyStage) {
	t.a[0].Set(fixq.WrapAcc(int64(m.Pair(0)) + int64(m.Pair(1))))
	t.a[1].Set(fixq.WrapAcc(int64(m.Pair(2)) + int64(m.Pair(3))))
	t.a[2].Set(fixq.WrapAcc(int64(m.Pair(4)) + int64(m.Pair(5))))
	t.a[3].Set(fixq.WrapAcc(int64(m.Pair(6)) + int64(m.Pair(7))))
	t.a[4].Set(fixq.WrapAcc(int64(m.Pair(8)) + int64(m.Pair(9))))
	t.a[5].Set(fixq.WrapAcc(int64(m.Pair(10)) + int64(m.Center())))

	t.b[0].Set(fixq.WrapAcc(t.a[0].Out() + t.a[1].Out()))
	t.b[1].Set(fixq.WrapAcc(t.a[2].Out() + t.a[3].Out()))
	t.b[2].Set(fixq.WrapAcc(t.a[4].Out() + t.a[5].Out()))

	t.c[0].Set(fixq.WrapAcc(t.b[0].Out() + t.b[1].Out()))
	t.c[1].Set(t.b[2].Out())

	t.d.Set(fixq.WrapAcc(t.c[0].Out() + t.c[1].Out()))
}

// Tick advances all tree registers.
func (t *AdderTree) Tick() {
	for i := range t.a {
		t.a[i].Tick()
	}
	for i := range t.b {
		t.b[i].Tick()
	}
	for i := range t.c {
		t.c[i].Tick()
	}
	t.d.Tick()
}

// Clear zeroes all tree registers.
func (t *AdderTree) Clear() {
	for i := range t.a {
		t.a[i].Clear()
	}
	for i := range t.b {
		t.b[i].Clear()
	}
	for i := range t.c {
		t.c[i].Clear()
	}
	t.d.Clear()
}

// StageA returns registered stage-A result i (0..5).
func (t *AdderTree) StageA(i int) int64 { return t.a[i].Out() }

// StageB returns registered stage-B result i (0..2).
func (t *AdderTree) StageB(i int) int64 { return t.b[i].Out() }

// StageC returns registered stage-C result i (0..1).
func (t *AdderTree) StageC(i int) int64 { return t.c[i].Out() }

// Sum returns the registered final accumulator.
func (t *AdderTree) Sum() int64 { return t.d.Out() }
