package analyze

import (
	"fmt"

	"github.com/cdhooper/brutus28/pins"
)

// Classification partitions the capture's pins by observed behavior.
// The masks are over capture bit positions, not package pin numbers.
type Classification struct {
	// Ignore holds bits that never toggled on the input side; the
	// walker did not drive them and nothing can be inferred.
	Ignore pins.Mask
	// Steppable holds the bits the walker toggled (the complement
	// of Ignore within the capture's bit range).
	Steppable pins.Mask
	// Input holds bits whose readback always equals the driven
	// level: nothing on the board contests them.
	Input pins.Mask
	// Output holds bits whose readback differed from the driven
	// level in at least one record.
	Output pins.Mask
	// AlwaysLow and AlwaysHigh hold output bits stuck at one level
	// across the whole capture.
	AlwaysLow  pins.Mask
	AlwaysHigh pins.Mask
	// OnlyLow holds open-drain outputs that only ever drive low;
	// when released the pin reads back the driven level. OnlyHigh
	// is the mirror case.
	OnlyLow  pins.Mask
	OnlyHigh pins.Mask
}

// classify derives the classification masks in a single pass over the
// capture, then validates the binary counting order of the walk.
func (a *Analysis) classify() {
	var (
		saw0, saw1 pins.Mask
		diff       pins.Mask
		alwLow     = pins.All
		alwHigh    = pins.All
		alwEqual   = pins.All
		onlyLow    = pins.All
		onlyHigh   = pins.All
	)
	n := a.c.Len()
	for k := 0; k < n; k++ {
		rin, rout := a.c.Get(k)
		in := pins.Mask(rin) & pins.All
		out := pins.Mask(rout) & pins.All
		saw0 |= ^in & pins.All
		saw1 |= in
		diff |= in ^ out
		alwEqual &= ^(in ^ out) & pins.All
		alwLow &= ^out & pins.All
		alwHigh &= out
		onlyLow &= ^out&pins.All | in
		onlyHigh &= out | ^in&pins.All
	}
	cl := Classification{
		Ignore:    pins.All &^ (saw0 & saw1),
		Steppable: saw0 & saw1,
		Input:     alwEqual &^ (pins.All &^ (saw0 & saw1)),
		Output:    diff,
		AlwaysLow: alwLow & diff,
	}
	cl.AlwaysHigh = alwHigh & diff
	cl.OnlyLow = onlyLow & diff &^ (cl.AlwaysLow | cl.AlwaysHigh)
	cl.OnlyHigh = onlyHigh & diff &^ (cl.AlwaysLow | cl.AlwaysHigh)
	a.class = cl

	for i, b := range cl.Steppable.Bits() {
		a.flipPos[b] = i
	}
	a.checkWalkOrder()
}

// checkWalkOrder verifies that record k's driven levels, projected to
// the steppable bits, spell out k in binary counting order. A broken
// order is a warning; the affect graph falls back to pairwise
// validation.
func (a *Analysis) checkWalkOrder() {
	want := 1 << a.class.Steppable.OnesCount()
	n := a.c.Len()
	if n != want {
		a.report(Diag{
			Kind: DiagShortCapture, Pin: -1, Record: -1,
			Msg: fmt.Sprintf("%d records, full walk of %d steppable pins needs %d",
				n, a.class.Steppable.OnesCount(), want),
		})
	}
	a.walkOK = true
	for k := 0; k < n; k++ {
		rin, _ := a.c.Get(k)
		if a.compress(pins.Mask(rin)) != uint32(k) {
			a.report(Diag{
				Kind: DiagWalkOrder, Pin: -1, Record: k,
				Msg: "driven levels do not match counting order",
			})
			a.walkOK = false
			return
		}
	}
	if n != want {
		a.walkOK = false
	}
}

// compress projects a pin mask onto the steppable bits, packing them
// into the low bits in ascending pin order.
func (a *Analysis) compress(m pins.Mask) uint32 {
	var v uint32
	for _, b := range a.class.Steppable.Bits() {
		if m.Has(b) {
			v |= 1 << a.flipPos[b]
		}
	}
	return v
}

// Class returns the pin classification. Valid after Run.
func (a *Analysis) Class() Classification { return a.class }
