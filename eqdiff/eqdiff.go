// Package eqdiff compares two equation listings line by line.
//
// Each distinct line is interned as a rune so the rune-level
// differ works at line granularity; the result maps back to
// whole-line insert, delete, and equal runs.
package eqdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op tags a diffed line.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one line of a listing with its diff disposition.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs two listings and returns the merged line sequence:
// deletions from the first, insertions from the second, equal lines
// once.
func Lines(from, to string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var out []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range diff.Text {
			out = append(out, Line{Op: op, Text: runeMap[r]})
		}
	}
	return out
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Format writes a unified-style rendering, one line per Line with a
// "+ ", "- ", or "  " prefix.
func Format(w io.Writer, lines []Line, colorize bool) error {
	paintDel := fmt.Sprintf
	paintIns := fmt.Sprintf
	if colorize {
		paintDel = color.RedString
		paintIns = color.GreenString
	}
	for _, l := range lines {
		var err error
		switch l.Op {
		case Delete:
			_, err = fmt.Fprintln(w, paintDel("- %s", l.Text))
		case Insert:
			_, err = fmt.Fprintln(w, paintIns("+ %s", l.Text))
		default:
			_, err = fmt.Fprintf(w, "  %s\n", l.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func mapLinesTo(m map[string]rune, im map[rune]string, text string) []rune {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
