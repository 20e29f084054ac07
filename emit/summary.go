package emit

import (
	"io"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/pins"
)

// Summary writes the classification masks and the affect table,
// mirroring the listing the probe firmware prints.
func Summary(w io.Writer, a *analyze.Analysis, nm *pins.Namer, opts ...Opt) error {
	e := newEmitter(w, a, nm, opts)
	cl := a.Class()
	e.maskLine("ignored", cl.Ignore)
	e.maskLine("input only", cl.Input)
	e.maskLine("output", cl.Output)
	e.maskLine("always low", cl.AlwaysLow)
	e.maskLine("always high", cl.AlwaysHigh)
	e.maskLine("od drives low", cl.OnlyLow)
	e.maskLine("od drives high", cl.OnlyHigh)
	if nc := a.NonCombinational(); !nc.IsEmpty() {
		e.maskLine("not combinational", nc)
	}

	printed := false
	for b := 0; b < pins.Count; b++ {
		affecting := a.Affecting(b)
		affected := a.AffectedBy(b)
		if affecting.IsEmpty() && affected.IsEmpty() {
			continue
		}
		if !printed {
			printed = true
			e.printf("\n        %-40s%s\n", "Pins affecting", "Pins affected")
		}
		if !affecting.IsEmpty() {
			e.printf("%s ->", affecting)
		} else {
			e.printf("%34s", "")
		}
		e.printf(" %-6s", e.paint(NameColor, e.nm.Name(b, false)))
		if !affected.IsEmpty() {
			e.printf(" -> %s", affected)
		}
		e.printf("\n")
	}
	return e.err
}

func (e *emitter) maskLine(label string, m pins.Mask) {
	if m.IsEmpty() {
		return
	}
	e.printf("%-18s %s\n", label+":", e.paint(ConstColor, m.String()))
}
