package analyze

import "github.com/cdhooper/brutus28/debug"

// mergeAdjacent runs cube reduction on every output pin's table: two
// terms at the same polarity that test the same pins and disagree on
// exactly one level merge into a single term no longer testing that
// pin. Repeats per pin until a full sweep merges nothing.
func (a *Analysis) mergeAdjacent() {
	for _, b := range a.class.Output.Bits() {
		if pt := a.tables[b]; pt != nil {
			a.mergePin(pt)
		}
	}
}

func (a *Analysis) mergePin(pt *PinTable) {
	for changed := true; changed; {
		changed = false
		terms := pt.Terms
		for s := range terms {
			ts := &terms[s]
			if ts.Erased() {
				continue
			}
			for t := s + 1; t < len(terms); t++ {
				tt := &terms[t]
				if tt.Erased() ||
					ts.Result != tt.Result ||
					ts.Affecting != tt.Affecting {
					continue
				}
				d := ts.Inputs ^ tt.Inputs
				if d.OnesCount() != 1 {
					continue
				}
				if debug.Merge() {
					debug.Logf("merge bit %d: %s / %s drop %s",
						pt.Bit, ts.Inputs, tt.Inputs, d)
				}
				ts.Affecting &^= d
				ts.Inputs &^= d
				tt.erase()
				changed = true
			}
		}
	}
	pt.collapseDuplicates()
	pt.compact()
}

// collapseDuplicates erases later copies of identical cubes. Merging
// two disjoint pairs can leave the same reduced cube twice.
func (pt *PinTable) collapseDuplicates() {
	terms := pt.Terms
	for s := range terms {
		if terms[s].Erased() {
			continue
		}
		for t := s + 1; t < len(terms); t++ {
			if terms[t].Erased() {
				continue
			}
			if terms[s].Result == terms[t].Result &&
				terms[s].Affecting == terms[t].Affecting &&
				terms[s].Inputs == terms[t].Inputs {
				terms[t].erase()
			}
		}
	}
}

// normalize clears input-level bits outside each term's affecting
// set. Cross-pin substitution narrows affecting sets and must not
// leave stale level bits behind.
func (pt *PinTable) normalize() {
	for i := range pt.Terms {
		pt.Terms[i].Inputs &= pt.Terms[i].Affecting
	}
}
