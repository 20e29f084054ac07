package analyze

import (
	"fmt"

	"github.com/cdhooper/brutus28/pins"
)

// collectTerms builds the per-output term tables. Each record's
// driven levels are projected onto the output's affecting set and
// stored once per distinct projection, with the observed result
// level. A projection observed at both levels is not combinational;
// the first observation wins and the pin is flagged.
func (a *Analysis) collectTerms() {
	n := a.c.Len()
	for _, b := range a.class.Output.Bits() {
		if a.class.Ignore.Has(b) || a.affecting[b].IsEmpty() {
			// Stuck pins emit as constants straight from the
			// classification masks.
			continue
		}
		max := 1 << a.affecting[b].OnesCount()
		a.tables[b] = &PinTable{Bit: b, Max: max}
		seen := make(map[pins.Mask]int, max)
		warned := false
		for k := 0; k < n; k++ {
			rin, rout := a.c.Get(k)
			proj := pins.Mask(rin) & a.affecting[b]
			res := uint8(rout >> uint(b) & 1)
			if i, ok := seen[proj]; ok {
				if a.tables[b].Terms[i].Result != res && !warned {
					a.nonComb |= pins.Bit(b)
					a.report(Diag{
						Kind: DiagNonCombinational, Pin: b, Record: k,
						Msg: "conflicting output levels for the same input combination",
					})
					warned = true
				}
				continue
			}
			if len(a.tables[b].Terms) >= max {
				a.report(Diag{
					Kind: DiagOverflow, Pin: b, Record: k,
					Msg: fmt.Sprintf("term table full at %d entries", max),
				})
				break
			}
			seen[proj] = len(a.tables[b].Terms)
			a.tables[b].Terms = append(a.tables[b].Terms, Term{
				Result:    res,
				Affecting: a.affecting[b],
				Inputs:    proj,
				Line:      k,
			})
		}
	}
}

// Table returns the term table for an output bit, or nil when the bit
// carries no table.
func (a *Analysis) Table(b int) *PinTable {
	if b < 0 || b >= pins.Count {
		return nil
	}
	return a.tables[b]
}

// NonCombinational returns the output bits that produced conflicting
// levels for the same input combination.
func (a *Analysis) NonCombinational() pins.Mask { return a.nonComb }
