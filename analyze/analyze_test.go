package analyze_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/capture"
	"github.com/cdhooper/brutus28/pins"
)

// walk builds a capture that counts through every combination of the
// low npins bits and reads back f(in).
func walk(npins int, f func(in uint32) uint32) *capture.Capture {
	n := 1 << npins
	c := capture.New(n)
	for i := 0; i < n; i++ {
		c.Push(uint32(i), f(uint32(i)))
	}
	return c
}

func bit(v uint32, b int) uint32 { return v >> uint(b) & 1 }

func TestPassThrough(t *testing.T) {
	a, err := analyze.Run(walk(2, func(in uint32) uint32 { return in }))
	if err != nil {
		t.Fatal(err)
	}
	cl := a.Class()
	if want := pins.Bit(0) | pins.Bit(1); cl.Input != want {
		t.Errorf("Input = %s, want %s", cl.Input, want)
	}
	if !cl.Output.IsEmpty() {
		t.Errorf("Output = %s, want empty", cl.Output)
	}
	if len(a.Diags()) != 0 {
		t.Errorf("unexpected diagnostics: %v", a.Diags())
	}
}

func TestANDGate(t *testing.T) {
	// bit2 reads back the AND of bits 0 and 1.
	a, err := analyze.Run(walk(3, func(in uint32) uint32 {
		return in&^4 | (bit(in, 0)&bit(in, 1))<<2
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := pins.Bit(0) | pins.Bit(1); a.Affecting(2) != want {
		t.Fatalf("Affecting(2) = %s, want %s", a.Affecting(2), want)
	}
	want := []analyze.Term{
		{Result: 0, Affecting: pins.Bit(1), Inputs: 0, Line: 0},
		{Result: 0, Affecting: pins.Bit(0), Inputs: 0, Line: 2},
		{Result: 1, Affecting: pins.Bit(0) | pins.Bit(1),
			Inputs: pins.Bit(0) | pins.Bit(1), Line: 3},
	}
	if diff := cmp.Diff(want, a.Table(2).Live()); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestXORGate(t *testing.T) {
	a, err := analyze.Run(walk(3, func(in uint32) uint32 {
		return in&^4 | (bit(in, 0)^bit(in, 1))<<2
	}))
	if err != nil {
		t.Fatal(err)
	}
	var got0, got1 int
	for _, tm := range a.Table(2).Live() {
		if tm.Affecting != pins.Bit(0)|pins.Bit(1) {
			t.Errorf("term support = %s, want both inputs", tm.Affecting)
		}
		if tm.Result == 0 {
			got0++
		} else {
			got1++
		}
	}
	if got0 != 2 || got1 != 2 {
		t.Errorf("term counts = %d low, %d high, want 2 and 2", got0, got1)
	}
}

func TestOpenDrainInverter(t *testing.T) {
	// bit1 drives low when bit0 is high, floats (reads back the
	// driven level) otherwise.
	a, err := analyze.Run(walk(2, func(in uint32) uint32 {
		if bit(in, 0) == 1 {
			return in &^ 2
		}
		return in
	}))
	if err != nil {
		t.Fatal(err)
	}
	cl := a.Class()
	if !cl.OnlyLow.Has(1) {
		t.Errorf("OnlyLow = %s, want bit 1 set", cl.OnlyLow)
	}
	if cl.OnlyHigh.Has(1) || cl.AlwaysLow.Has(1) {
		t.Error("bit 1 misclassified")
	}
}

func TestStuckPins(t *testing.T) {
	a, err := analyze.Run(walk(2, func(in uint32) uint32 {
		return in&^4 | 1<<3 // bit2 stuck low, bit3 stuck high
	}))
	if err != nil {
		t.Fatal(err)
	}
	cl := a.Class()
	// Bits 2 and 3 are never driven in a 2-pin walk, so they sit in
	// the ignore mask and out of every other class.
	if !cl.Ignore.Has(2) || !cl.Ignore.Has(3) {
		t.Fatalf("Ignore = %s, want bits 2 and 3", cl.Ignore)
	}
}

func TestStuckDrivenPin(t *testing.T) {
	// Three pins walked; bit2's readback never follows the driver.
	a, err := analyze.Run(walk(3, func(in uint32) uint32 {
		return in | 1<<2
	}))
	if err != nil {
		t.Fatal(err)
	}
	cl := a.Class()
	if !cl.AlwaysHigh.Has(2) {
		t.Errorf("AlwaysHigh = %s, want bit 2", cl.AlwaysHigh)
	}
	if !cl.Output.Has(2) {
		t.Errorf("Output = %s, want bit 2", cl.Output)
	}
}

func TestNonCombinationalLatch(t *testing.T) {
	// Two walks back to back; bit1 follows its driver in the first
	// pass and fights it in the second. Same driven vector, two
	// different readbacks.
	c := capture.New(8)
	for pass := 0; pass < 2; pass++ {
		for i := uint32(0); i < 4; i++ {
			out := i
			if pass == 1 {
				out = i ^ 2
			}
			c.Push(i, out)
		}
	}
	a, err := analyze.Run(c)
	if err != nil {
		t.Fatal(err)
	}
	if !a.NonCombinational().Has(1) {
		t.Errorf("NonCombinational = %s, want bit 1", a.NonCombinational())
	}
	if a.WalkOrderOK() {
		t.Error("WalkOrderOK = true for a doubled capture")
	}
	// The repeat does not disturb bit 0.
	if !a.Class().Input.Has(0) {
		t.Errorf("Input = %s, want bit 0", a.Class().Input)
	}
	kinds := map[analyze.DiagKind]bool{}
	for _, d := range a.Diags() {
		kinds[d.Kind] = true
	}
	if !kinds[analyze.DiagWalkOrder] || !kinds[analyze.DiagNonCombinational] {
		t.Errorf("diagnostics = %v, want walk order and non-combinational", a.Diags())
	}
}

func TestClassConsistency(t *testing.T) {
	funcs := map[string]func(uint32) uint32{
		"passthrough": func(in uint32) uint32 { return in },
		"and":         func(in uint32) uint32 { return in&^4 | (bit(in, 0)&bit(in, 1))<<2 },
		"mixed": func(in uint32) uint32 {
			return in&^0xc | (bit(in, 0)|bit(in, 1))<<2 | 1<<3
		},
	}
	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			a, err := analyze.Run(walk(4, f))
			if err != nil {
				t.Fatal(err)
			}
			cl := a.Class()
			if cl.AlwaysLow&cl.AlwaysHigh != 0 {
				t.Error("a pin is both always low and always high")
			}
			if cl.Output&cl.Input != 0 {
				t.Error("a pin is both input and output")
			}
			if cl.Steppable != (cl.Input|cl.Output)|cl.Steppable&^(cl.Input|cl.Output) {
				t.Error("steppable does not cover classified pins")
			}
			if (cl.Input|cl.Output)&cl.Ignore != 0 {
				t.Error("an ignored pin was classified")
			}
		})
	}
}

func TestShortCaptureWarns(t *testing.T) {
	c := capture.New(8)
	for i := uint32(0); i < 6; i++ {
		c.Push(i, i)
	}
	a, err := analyze.Run(c)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range a.Diags() {
		if d.Kind == analyze.DiagShortCapture {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want a short-capture warning", a.Diags())
	}
}

func TestTermInvariants(t *testing.T) {
	a, err := analyze.Run(walk(4, func(in uint32) uint32 {
		v := in &^ (1 << 3)
		if bit(in, 0)&bit(in, 1) == 1 || bit(in, 2) == 1 {
			v |= 1 << 3
		}
		return v
	}))
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range a.Class().Output.Bits() {
		pt := a.Table(b)
		if pt == nil {
			continue
		}
		for _, tm := range pt.Live() {
			if tm.Inputs&^tm.Affecting != 0 {
				t.Errorf("bit %d: levels outside support: %+v", b, tm)
			}
		}
	}
}
