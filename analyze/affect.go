package analyze

import "github.com/cdhooper/brutus28/pins"

// buildAffectGraph pairs every record with its single-bit-flipped
// sibling for each steppable pin and records which output bits moved.
// It fills affectedBy (driven pin -> outputs it moves) and its
// transpose affecting (output pin -> pins that move it).
//
// Pairs whose driven levels differ by anything other than the one
// flipped bit are skipped; a capture that is not a clean counting
// walk degrades to the pairs that do line up.
func (a *Analysis) buildAffectGraph() {
	n := a.c.Len()
	for k := 0; k < n; k++ {
		rin, rout := a.c.Get(k)
		out0 := pins.Mask(rout) & pins.All
		for _, b := range a.class.Steppable.Bits() {
			o := k ^ (1 << a.flipPos[b])
			if o < k || o >= n {
				continue
			}
			rin1, rout1 := a.c.Get(o)
			if (pins.Mask(rin)^pins.Mask(rin1))&pins.All != pins.Bit(b) {
				continue
			}
			out1 := pins.Mask(rout1) & pins.All
			moved := (out0 ^ out1) & a.class.Output
			a.affectedBy[b] |= moved
		}
	}
	for b := 0; b < pins.Count; b++ {
		for _, o := range a.affectedBy[b].Bits() {
			a.affecting[o] |= pins.Bit(b)
		}
	}
}

// Affecting returns the pins whose level changes the given output
// bit. Zero for non-outputs.
func (a *Analysis) Affecting(b int) pins.Mask { return a.affecting[b] }

// AffectedBy returns the output bits moved by toggling the given pin.
func (a *Analysis) AffectedBy(b int) pins.Mask { return a.affectedBy[b] }
