package analyze

import "fmt"

// DiagKind classifies a non-fatal analysis diagnostic.
type DiagKind int

const (
	// DiagShortCapture: the capture holds fewer records than its
	// header promised, or fewer than a full walk requires.
	DiagShortCapture DiagKind = iota
	// DiagWalkOrder: a record's driven levels do not spell out its
	// index in counting order. The affect graph keeps only record
	// pairs that differ by exactly one driven bit.
	DiagWalkOrder
	// DiagOverflow: a pin's term table hit its capacity bound and
	// further terms were dropped.
	DiagOverflow
	// DiagNonCombinational: an output pin produced conflicting
	// levels for the same projected input combination. The first
	// observed level wins; the pin is flagged.
	DiagNonCombinational
	// DiagIterationCap: a simplification loop hit its iteration
	// bound before reaching a fixed point.
	DiagIterationCap
)

var diagKindNames = map[DiagKind]string{
	DiagShortCapture:     "short capture",
	DiagWalkOrder:        "walk order",
	DiagOverflow:         "term overflow",
	DiagNonCombinational: "not combinational",
	DiagIterationCap:     "iteration cap",
}

func (k DiagKind) String() string {
	if s, ok := diagKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("DiagKind(%d)", int(k))
}

// Diag is one analysis warning. Pin and Record are -1 when the
// diagnostic is not scoped to a pin or capture record.
type Diag struct {
	Kind   DiagKind
	Pin    int
	Record int
	Msg    string
}

func (d Diag) String() string {
	s := d.Kind.String()
	if d.Pin >= 0 {
		s += fmt.Sprintf(" bit %d", d.Pin)
	}
	if d.Record >= 0 {
		s += fmt.Sprintf(" record %d", d.Record)
	}
	if d.Msg != "" {
		s += ": " + d.Msg
	}
	return s
}
