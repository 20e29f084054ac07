package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/pins"
)

type emitter struct {
	w        io.Writer
	err      error
	color    bool
	inverted bool
	pinBlock bool
	colors   *Colors
	a        *analyze.Analysis
	nm       *pins.Namer
}

// Listing writes the full equation listing for an analysis.
// A nil namer falls back to synthesized P<pin> names.
func Listing(w io.Writer, a *analyze.Analysis, nm *pins.Namer, opts ...Opt) error {
	e := newEmitter(w, a, nm, opts)
	if e.pinBlock {
		e.pinDecls()
		e.printf("\n")
	}
	e.equations(1, "")
	if e.inverted {
		e.printf("\n%s\n", e.paint(CommentColor, "/* inverted logic, for reference"))
		e.equations(0, "   ")
		e.printf("%s\n", e.paint(CommentColor, "*/"))
	}
	return e.err
}

func newEmitter(w io.Writer, a *analyze.Analysis, nm *pins.Namer, opts []Opt) *emitter {
	e := &emitter{
		w:        w,
		inverted: true,
		pinBlock: true,
		colors:   NewColors(),
		a:        a,
		nm:       nm,
	}
	if e.nm == nil {
		e.nm = pins.NewNamer(nil)
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) paint(a ColorAttr, s string) string {
	if !e.color {
		return s
	}
	return e.colors.Get(a)(s)
}

// pinDecls writes one PIN statement per bonded, walked pin.
func (e *emitter) pinDecls() {
	cl := e.a.Class()
	for b := 0; b < pins.Count; b++ {
		if cl.Ignore.Has(b) {
			continue
		}
		pin := e.nm.PinOf(b)
		if pin == 0 {
			continue
		}
		decl := e.nm.Name(b, e.nm.Inverted(b))
		if e.nm.Inverted(b) {
			decl = "!" + decl
		}
		e.printf("%s %-2d = %s;\n",
			e.paint(KeywordColor, "PIN"), pin, e.paint(NameColor, decl))
	}
}

func (e *emitter) equations(rpol uint8, indent string) {
	for _, b := range e.a.Class().Output.Bits() {
		e.pinEquation(b, rpol, indent)
	}
}

func (e *emitter) pinEquation(b int, rpol uint8, indent string) {
	cl := e.a.Class()
	switch {
	case cl.AlwaysLow.Has(b), cl.AlwaysHigh.Has(b):
		if rpol != 1 {
			return
		}
		v := uint8(0)
		if cl.AlwaysHigh.Has(b) {
			v = 1
		}
		e.printf("%s%s = %s;\n", indent,
			e.paint(NameColor, e.nm.Name(b, false)), e.konst(v))
	case cl.OnlyLow.Has(b), cl.OnlyHigh.Has(b):
		if rpol != 1 {
			return
		}
		// Open drain: constant at the driven level, logic on the
		// output enable. The pin's own readback bit is dropped
		// from every cube.
		drive := uint8(0)
		if cl.OnlyHigh.Has(b) {
			drive = 1
		}
		cubes := e.cubes(b, drive, pins.Bit(b))
		if len(cubes) == 0 {
			return
		}
		name := e.nm.Name(b, false)
		e.printf("%s%s    = %s;\n", indent,
			e.paint(NameColor, name), e.konst(drive))
		e.sopLines(indent, name+".OE", cubes)
	default:
		search := rpol
		if e.nm.Inverted(b) {
			search ^= 1
		}
		cubes := e.cubes(b, search, 0)
		if len(cubes) == 0 {
			return
		}
		e.sopLines(indent, e.nm.Name(b, search == 0), cubes)
	}
}

func (e *emitter) konst(v uint8) string {
	return e.paint(ConstColor, fmt.Sprintf("'b'%d", v))
}

type cube struct {
	aff pins.Mask
	in  pins.Mask
}

// cubes gathers the live cubes of one pin at one polarity, with the
// strip mask removed from each. Cubes emptied or duplicated by the
// strip are dropped.
func (e *emitter) cubes(b int, pol uint8, strip pins.Mask) []cube {
	pt := e.a.Table(b)
	if pt == nil {
		return nil
	}
	var out []cube
	for _, t := range pt.Live() {
		if t.Result != pol {
			continue
		}
		c := cube{aff: t.Affecting &^ strip}
		if c.aff.IsEmpty() {
			continue
		}
		c.in = t.Inputs & c.aff
		dup := false
		for _, p := range out {
			if p == c {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// sopLines prints "<lhs> = cube # cube # ...;" with continuation
// lines aligning each # under the =.
func (e *emitter) sopLines(indent, lhs string, cubes []cube) {
	pad := strings.Repeat(" ", len(lhs))
	for i, c := range cubes {
		if i == 0 {
			e.printf("%s%s = ", indent, e.paint(NameColor, lhs))
		} else {
			e.printf("\n%s%s %s ", indent, pad, e.paint(OpColor, "#"))
		}
		e.cube(c)
	}
	e.printf(";\n")
}

func (e *emitter) cube(c cube) {
	first := true
	for _, b := range c.aff.Bits() {
		if !first {
			e.printf(" %s ", e.paint(OpColor, "&"))
		}
		first = false
		e.printf("%s", e.paint(NameColor, e.nm.Name(b, !c.in.Has(b))))
	}
}
