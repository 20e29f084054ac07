package analyze

import "github.com/cdhooper/brutus28/pins"

// Term is one product cube of an output pin's sum of products.
// Affecting names the pins the cube tests; for each such pin
// Inputs holds the level the cube requires. Bits of Inputs outside
// Affecting are always zero.
//
// A term with an empty Affecting mask is erased; simplification
// erases terms in place and compaction later drops them.
type Term struct {
	Result    uint8
	Affecting pins.Mask
	Inputs    pins.Mask
	Line      int
}

// Erased reports whether the term has been removed by simplification.
func (t *Term) Erased() bool { return t.Affecting.IsEmpty() }

func (t *Term) erase() {
	t.Affecting = 0
	t.Inputs = 0
}

// covers reports whether t's cube is at least as general as u's at the
// same polarity: every pin t tests, u tests at the same level.
func (t *Term) covers(u *Term) bool {
	return u.Affecting&t.Affecting == t.Affecting &&
		u.Inputs&t.Affecting == t.Inputs
}

// PinTable holds the term table of one output pin.
type PinTable struct {
	Bit   int
	Max   int // capacity bound, 2^popcount(affecting)
	Terms []Term
}

// Live returns the non-erased terms in table order.
func (pt *PinTable) Live() []Term {
	out := make([]Term, 0, len(pt.Terms))
	for i := range pt.Terms {
		if !pt.Terms[i].Erased() {
			out = append(out, pt.Terms[i])
		}
	}
	return out
}

// LiveAt counts the non-erased terms with the given result polarity.
func (pt *PinTable) LiveAt(pol uint8) int {
	n := 0
	for i := range pt.Terms {
		if !pt.Terms[i].Erased() && pt.Terms[i].Result == pol {
			n++
		}
	}
	return n
}

func (pt *PinTable) compact() {
	w := 0
	for i := range pt.Terms {
		if pt.Terms[i].Erased() {
			continue
		}
		pt.Terms[w] = pt.Terms[i]
		w++
	}
	pt.Terms = pt.Terms[:w]
}
