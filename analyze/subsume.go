package analyze

import "github.com/cdhooper/brutus28/debug"

// eliminateSubsumed applies two rewrite rules within each output's
// table and returns the number of rewrites.
//
// Absorption: when a term B agrees with a more general term A on all
// of A's pins at the same polarity, B is redundant and is erased.
//
//	P1 = P2 # P2 & P4        ->  P1 = P2
//
// One-variable complementation: when A tests a single pin and B
// disagrees with it there, that pin contributes nothing to B and is
// dropped from it. A ∨ (¬A ∧ X) = A ∨ X, and a single tested pin is
// the only case where disagreement equals ¬A.
//
//	P1 = P2 # !P2 & P4       ->  P1 = P2 # P4
func (a *Analysis) eliminateSubsumed() int {
	count := 0
	for _, b := range a.class.Output.Bits() {
		pt := a.tables[b]
		if pt == nil {
			continue
		}
		terms := pt.Terms
		for cur := range terms {
			top := &terms[cur]
			if top.Erased() {
				continue
			}
			topAff := top.Affecting
			topIn := top.Inputs & topAff
			for scur := range terms {
				o := &terms[scur]
				if scur == cur || o.Erased() ||
					o.Result != top.Result ||
					o.Affecting&topAff != topAff {
					continue
				}
				switch {
				case o.Inputs&topAff == topIn:
					if debug.Subsume() {
						debug.Logf("absorb bit %d: %s covers %s",
							b, top.Inputs, o.Inputs)
					}
					o.erase()
					count++
				case topAff.OnesCount() == 1 && (o.Inputs^topIn)&topAff == topAff:
					if debug.Subsume() {
						debug.Logf("complement bit %d: drop %s from %s",
							b, topAff, o.Inputs)
					}
					o.Affecting &^= topAff
					o.Inputs &^= topAff
					count++
				}
			}
		}
	}
	return count
}
