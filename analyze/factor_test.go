package analyze_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/pins"
)

// Two outputs where one is a strict refinement of the other: bit 4
// reads back x1&x2 # x3, bit 5 reads back that AND x4. Factoring
// should rewrite bit 5's equation in terms of bit 4.
func TestCrossPinFactoring(t *testing.T) {
	a, err := analyze.Run(walk(6, func(in uint32) uint32 {
		av := bit(in, 0)&bit(in, 1) | bit(in, 2)
		return in&^0x30 | av<<4 | (av&bit(in, 3))<<5
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := pins.Bit(0) | pins.Bit(1) | pins.Bit(2); a.Affecting(4) != want {
		t.Fatalf("Affecting(4) = %s, want %s", a.Affecting(4), want)
	}
	if want := pins.Bit(0) | pins.Bit(1) | pins.Bit(2) | pins.Bit(3); a.Affecting(5) != want {
		t.Fatalf("Affecting(5) = %s, want %s", a.Affecting(5), want)
	}

	want4 := []analyze.Term{
		{Result: 0, Affecting: pins.Bit(1) | pins.Bit(2), Inputs: 0, Line: 0},
		{Result: 0, Affecting: pins.Bit(0) | pins.Bit(1) | pins.Bit(2),
			Inputs: pins.Bit(1), Line: 2},
		{Result: 1, Affecting: pins.Bit(0) | pins.Bit(1),
			Inputs: pins.Bit(0) | pins.Bit(1), Line: 3},
		{Result: 1, Affecting: pins.Bit(1) | pins.Bit(2),
			Inputs: pins.Bit(2), Line: 4},
		{Result: 1, Affecting: pins.Bit(0) | pins.Bit(1) | pins.Bit(2),
			Inputs: pins.Bit(1) | pins.Bit(2), Line: 6},
	}
	if diff := cmp.Diff(want4, a.Table(4).Live()); diff != "" {
		t.Errorf("bit 4 terms mismatch (-want +got):\n%s", diff)
	}

	// Bit 5 collapses to x4 gating the bit 4 equation, both polarities.
	want5 := []analyze.Term{
		{Result: 0, Affecting: pins.Bit(3), Inputs: 0, Line: 0},
		{Result: 0, Affecting: pins.Bit(4), Inputs: 0, Line: 8},
		{Result: 1, Affecting: pins.Bit(3) | pins.Bit(4),
			Inputs: pins.Bit(3) | pins.Bit(4), Line: 11},
	}
	if diff := cmp.Diff(want5, a.Table(5).Live()); diff != "" {
		t.Errorf("bit 5 terms mismatch (-want +got):\n%s", diff)
	}
}

// Factoring must not fire when the candidate terms carry different
// residuals: the driven-high cover of bit 5 pairs the two bit 4 cubes
// with different extra pins, so no rewrite of those terms is sound.
// The driven-low cover has a single bit 4 cube and may still factor.
func TestFactoringRequiresCommonResidual(t *testing.T) {
	a, err := analyze.Run(walk(6, func(in uint32) uint32 {
		av := bit(in, 0) | bit(in, 1)
		bv := bit(in, 0)&bit(in, 2) | bit(in, 1)&bit(in, 3)
		return in&^0x30 | av<<4 | bv<<5
	}))
	if err != nil {
		t.Fatal(err)
	}
	for _, tm := range a.Table(5).Live() {
		if tm.Result != 1 {
			continue
		}
		if tm.Affecting.Has(4) {
			t.Errorf("bit 5 term %+v references bit 4", tm)
		}
	}
}
