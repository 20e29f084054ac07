// Package verify checks recovered equations with a SAT solver.
//
// Each output pin's simplified sum of products is compiled to a
// circuit over one boolean variable per driven pin; references to
// other output pins created by cross-pin factoring expand to those
// pins' own formulas. The raw truth table collected from the capture
// compiles the same way, and the two are equivalent exactly when
// their XOR is unsatisfiable.
package verify

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/cdhooper/brutus28/analyze"
	"github.com/cdhooper/brutus28/pins"
)

// ErrCycle indicates mutually recursive factored references; the
// formula cannot be expanded.
var ErrCycle = errors.New("factored equations form a cycle")

// Result is the verification outcome for one output pin.
type Result struct {
	Bit        int
	Equivalent bool
	Err        error
}

// builder owns the circuit and the shared per-pin input variables.
type builder struct {
	c    *logic.C
	vars map[int]z.Lit
}

func newBuilder() *builder {
	return &builder{c: logic.NewC(), vars: map[int]z.Lit{}}
}

func (b *builder) inputVar(bit int) z.Lit {
	if l, ok := b.vars[bit]; ok {
		return l
	}
	l := b.c.Lit()
	b.vars[bit] = l
	return l
}

func (b *builder) ors(lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		return b.c.F
	}
	return b.c.Ors(lits...)
}

func (b *builder) ands(lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		return b.c.T
	}
	return b.c.Ands(lits...)
}

func (b *builder) xor(p, q z.Lit) z.Lit {
	return b.c.Ors(b.c.Ands(p, q.Not()), b.c.Ands(p.Not(), q))
}

// sat reports whether the literal is satisfiable.
func (b *builder) sat(f z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(f)
	return g.Solve() == 1
}

type pinKey struct {
	bit int
	pol uint8
}

// pinBuilder compiles one analysis's equations over the shared
// variables.
type pinBuilder struct {
	*builder
	a         *analyze.Analysis
	memo      map[pinKey]z.Lit
	expanding map[pinKey]bool
	err       error
}

func newPinBuilder(b *builder, a *analyze.Analysis) *pinBuilder {
	return &pinBuilder{
		builder:   b,
		a:         a,
		memo:      map[pinKey]z.Lit{},
		expanding: map[pinKey]bool{},
	}
}

// formula compiles the live terms of one pin at one polarity,
// expanding factored references recursively.
func (pb *pinBuilder) formula(bit int, pol uint8) z.Lit {
	k := pinKey{bit, pol}
	if l, ok := pb.memo[k]; ok {
		return l
	}
	if pb.expanding[k] {
		if pb.err == nil {
			pb.err = fmt.Errorf("%w: bit %d", ErrCycle, bit)
		}
		return pb.c.F
	}
	pb.expanding[k] = true
	defer delete(pb.expanding, k)

	pt := pb.a.Table(bit)
	if pt == nil {
		return pb.c.F
	}
	var ors []z.Lit
	for _, t := range pt.Live() {
		if t.Result != pol {
			continue
		}
		var ands []z.Lit
		for _, v := range t.Affecting.Bits() {
			ands = append(ands, pb.literal(bit, v, t.Inputs.Has(v)))
		}
		ors = append(ors, pb.ands(ands))
	}
	f := pb.ors(ors)
	pb.memo[k] = f
	return f
}

// literal resolves one cube variable. An output pin other than the
// one being expanded is a factored reference; a pin's own bit inside
// its own terms is the driven level read back (open drain).
func (pb *pinBuilder) literal(owner, v int, level bool) z.Lit {
	if v != owner && pb.a.Class().Output.Has(v) && pb.a.Table(v) != nil {
		f := pb.formula(v, 1)
		if !level {
			f = f.Not()
		}
		return f
	}
	l := pb.inputVar(v)
	if !level {
		l = l.Not()
	}
	return l
}

// raw compiles the pin's truth table straight from the capture,
// one minterm per distinct projection at the given polarity.
func (pb *pinBuilder) raw(bit int, pol uint8) z.Lit {
	aff := pb.a.Affecting(bit)
	c := pb.a.Capture()
	seen := map[pins.Mask]bool{}
	var ors []z.Lit
	for k := 0; k < c.Len(); k++ {
		rin, rout := c.Get(k)
		proj := pins.Mask(rin) & aff
		if seen[proj] {
			continue
		}
		seen[proj] = true
		if uint8(rout>>uint(bit)&1) != pol {
			continue
		}
		var ands []z.Lit
		for _, v := range aff.Bits() {
			l := pb.inputVar(v)
			if !proj.Has(v) {
				l = l.Not()
			}
			ands = append(ands, l)
		}
		ors = append(ors, pb.ands(ands))
	}
	return pb.ors(ors)
}

// Pin checks that one pin's simplified equation matches the capture's
// truth table. Conflicting observations resolve to the first one, on
// both sides, matching the collector.
func Pin(a *analyze.Analysis, bit int) Result {
	b := newBuilder()
	pb := newPinBuilder(b, a)
	f := pb.formula(bit, 1)
	r := pb.raw(bit, 1)
	if pb.err != nil {
		return Result{Bit: bit, Err: pb.err}
	}
	return Result{Bit: bit, Equivalent: !b.sat(b.xor(f, r))}
}

// All verifies every output pin carrying a term table.
func All(a *analyze.Analysis) []Result {
	var out []Result
	for _, bit := range a.Class().Output.Bits() {
		if a.Table(bit) == nil {
			continue
		}
		out = append(out, Pin(a, bit))
	}
	return out
}

// Equivalent reports whether the same pin recovered by two analyses
// computes the same function of the driven pins.
func Equivalent(x, y *analyze.Analysis, bit int) (bool, error) {
	b := newBuilder()
	px := newPinBuilder(b, x)
	py := newPinBuilder(b, y)
	fx := px.formula(bit, 1)
	fy := py.formula(bit, 1)
	if px.err != nil {
		return false, px.err
	}
	if py.err != nil {
		return false, py.err
	}
	return !b.sat(b.xor(fx, fy)), nil
}
