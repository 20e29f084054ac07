package analyze

import (
	"fmt"

	"github.com/cdhooper/brutus28/capture"
	"github.com/cdhooper/brutus28/pins"
)

const (
	// factorIterations bounds the cross-pin factoring loop.
	factorIterations = 5
	// subsumeIterations bounds the absorption loop.
	subsumeIterations = 10
)

// Analysis holds all state of one inference run. Contexts are
// independent; build one per capture.
type Analysis struct {
	c          *capture.Capture
	class      Classification
	flipPos    [pins.Count]int
	affectedBy [pins.Count]pins.Mask
	affecting  [pins.Count]pins.Mask
	tables     [pins.Count]*PinTable
	nonComb    pins.Mask
	walkOK     bool
	diags      []Diag
	sink       func(Diag)
}

// Option configures an Analysis.
type Option func(*Analysis)

// WithDiagSink delivers each diagnostic to fn as it is raised,
// in addition to recording it.
func WithDiagSink(fn func(Diag)) Option {
	return func(a *Analysis) { a.sink = fn }
}

// New builds an Analysis over the capture without running it.
func New(c *capture.Capture, opts ...Option) *Analysis {
	a := &Analysis{c: c}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run is shorthand for New followed by (*Analysis).Run.
func Run(c *capture.Capture, opts ...Option) (*Analysis, error) {
	a := New(c, opts...)
	if err := a.Run(); err != nil {
		return nil, err
	}
	return a, nil
}

// Run executes the full pipeline: classification, affect graph, term
// collection, cube merging, cross-pin factoring, and subsumption.
// Malformed captures degrade with diagnostics; an error means either
// an empty capture or a broken internal invariant.
func (a *Analysis) Run() error {
	if a.c.Len() == 0 {
		return ErrEmptyCapture
	}
	a.classify()
	a.buildAffectGraph()
	a.collectTerms()
	a.mergeAdjacent()
	for i := 0; a.factorCommon() != 0; i++ {
		a.mergeAdjacent()
		if i >= factorIterations {
			a.report(Diag{
				Kind: DiagIterationCap, Pin: -1, Record: -1,
				Msg: "cross-pin factoring did not settle",
			})
			break
		}
	}
	for i := 0; a.eliminateSubsumed() != 0; i++ {
		if i >= subsumeIterations {
			a.report(Diag{
				Kind: DiagIterationCap, Pin: -1, Record: -1,
				Msg: "subsumption did not settle",
			})
			break
		}
	}
	for _, b := range a.class.Output.Bits() {
		if pt := a.tables[b]; pt != nil {
			pt.normalize()
			pt.compact()
		}
	}
	return a.checkInvariants()
}

// Capture returns the capture under analysis.
func (a *Analysis) Capture() *capture.Capture { return a.c }

// WalkOrderOK reports whether the capture held a complete walk in
// counting order. When false the affect graph was built only from
// record pairs that still lined up.
func (a *Analysis) WalkOrderOK() bool { return a.walkOK }

// Diags returns the diagnostics raised during Run, in order.
func (a *Analysis) Diags() []Diag { return a.diags }

func (a *Analysis) report(d Diag) {
	a.diags = append(a.diags, d)
	if a.sink != nil {
		a.sink(d)
	}
}

// checkInvariants validates every live term: levels only on tested
// pins, and tested pins drawn from the pin's affecting set plus
// factored-in output pins.
func (a *Analysis) checkInvariants() error {
	for _, b := range a.class.Output.Bits() {
		pt := a.tables[b]
		if pt == nil {
			continue
		}
		allowed := a.affecting[b] | a.class.Output
		for i := range pt.Terms {
			t := &pt.Terms[i]
			if t.Erased() {
				continue
			}
			if t.Inputs&^t.Affecting != 0 {
				return fmt.Errorf("%w: bit %d term %d levels outside support",
					ErrInternal, b, i)
			}
			if t.Affecting&^allowed != 0 {
				return fmt.Errorf("%w: bit %d term %d tests unrelated pins",
					ErrInternal, b, i)
			}
		}
	}
	return nil
}
