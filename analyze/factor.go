package analyze

import (
	"github.com/cdhooper/brutus28/debug"
	"github.com/cdhooper/brutus28/pins"
)

// factorCommon rewrites output equations in terms of other output
// pins. When every live term of one pin's equation at a polarity
// (the sub pin) appears inside another pin's terms (the sup pin) with
// a common residual, the matched sup terms collapse to a single term
// of the residual pins plus the sub pin itself.
//
//	P1 = P3 & P4 & P6           P1 = P2 & P6
//	   # P5 & P6           ->
//	P2 = P3 & P4                P2 = P3 & P4
//	   # P5                        # P5
//
// Each (sub, polarity) pair factors into at most one sup per pass:
// the one with the widest residual, lowest bit on ties. Returns the
// number of rewrites performed this pass.
func (a *Analysis) factorCommon() int {
	merges := 0
	for _, sub := range a.class.Output.Bits() {
		if a.tables[sub] == nil {
			continue
		}
		for pol := uint8(0); pol <= 1; pol++ {
			best := -1
			var bestRes residual
			for _, sup := range a.class.Output.Bits() {
				if sup == sub || a.tables[sup] == nil {
					continue
				}
				res, ok := a.containedWithin(a.tables[sup], a.tables[sub], pol)
				if !ok {
					continue
				}
				if best < 0 || res.support.OnesCount() > bestRes.support.OnesCount() {
					best = sup
					bestRes = res
				}
			}
			if best >= 0 {
				if debug.Factor() {
					debug.Logf("factor: bit %d pol %d into bit %d residual %s",
						sub, pol, best, bestRes.support)
				}
				a.factorInto(a.tables[best], a.tables[sub], pol, bestRes)
				merges++
			}
		}
	}
	return merges
}

// residual is what a covering sup term carries beyond the sub term it
// covers: the extra tested pins and the levels it tests them at. All
// covering terms must agree on both, otherwise collapsing them to a
// single term would change the function.
type residual struct {
	support pins.Mask
	inputs  pins.Mask
}

// containedWithin reports whether every live sub term at the given
// polarity is covered by some live sup term at that polarity, all
// covering terms sharing the same residual. Returns that residual.
func (a *Analysis) containedWithin(sup, sub *PinTable, pol uint8) (residual, bool) {
	var res residual
	matched := false
	for i := range sub.Terms {
		t := &sub.Terms[i]
		if t.Erased() || t.Result != pol {
			continue
		}
		found := false
		for j := range sup.Terms {
			u := &sup.Terms[j]
			if u.Erased() || u.Result != pol || !t.covers(u) {
				continue
			}
			r := residual{
				support: u.Affecting &^ t.Affecting,
				inputs:  u.Inputs &^ t.Affecting,
			}
			if matched && r != res {
				continue
			}
			res = r
			matched = true
			found = true
			break
		}
		if !found {
			return residual{}, false
		}
	}
	if !matched {
		// No live terms at this polarity on either side.
		return residual{}, false
	}
	return res, true
}

// factorInto rewrites sup's table: the first covering term becomes
// residual & sub, covering terms of the remaining sub terms are
// erased. Only terms carrying the agreed residual count as covers.
// Caller re-runs cube merging afterwards.
func (a *Analysis) factorInto(sup, sub *PinTable, pol uint8, res residual) {
	subBit := pins.Bit(sub.Bit)
	rewritten := -1
	for i := range sub.Terms {
		t := &sub.Terms[i]
		if t.Erased() || t.Result != pol {
			continue
		}
		for j := range sup.Terms {
			u := &sup.Terms[j]
			if j == rewritten || u.Erased() ||
				u.Result != pol || !t.covers(u) ||
				u.Affecting&^t.Affecting != res.support ||
				u.Inputs&^t.Affecting != res.inputs {
				continue
			}
			if rewritten < 0 {
				u.Affecting = u.Affecting&^t.Affecting | subBit
				u.Inputs &^= t.Affecting
				if pol == 1 {
					u.Inputs |= subBit
				} else {
					u.Inputs &^= subBit
				}
				u.Inputs &= u.Affecting
				rewritten = j
			} else {
				u.erase()
			}
			break
		}
	}
	sup.normalize()
	sup.compact()
}
