// Package dynamotest provides in-memory Surface and Input implementations
// for tests.
package dynamotest

import (
	"image/color"

	"github.com/san-kum/gravbox/internal/dynamo"
)

type Op int

const (
	OpSetColor Op = iota
	OpClear
	OpLine
	OpRect
	OpLines
	OpPresent
)

type Call struct {
	Op     Op
	Color  color.RGBA
	Points []dynamo.Point
	Rect   dynamo.Rect
}

// Surface records every call. FailOn makes the matching primitive return Err.
type Surface struct {
	Calls  []Call
	FailOn Op
	Err    error
	color  color.RGBA
}

func NewSurface() *Surface {
	return &Surface{FailOn: -1}
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.color = c
	s.Calls = append(s.Calls, Call{Op: OpSetColor, Color: c})
}

func (s *Surface) Clear(c color.RGBA) {
	s.Calls = append(s.Calls, Call{Op: OpClear, Color: c})
}

func (s *Surface) DrawLine(p0, p1 dynamo.Point) error {
	if s.FailOn == OpLine {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{Op: OpLine, Color: s.color, Points: []dynamo.Point{p0, p1}})
	return nil
}

func (s *Surface) DrawRect(r dynamo.Rect) error {
	if s.FailOn == OpRect {
		return s.Err
	}
	s.Calls = append(s.Calls, Call{Op: OpRect, Color: s.color, Rect: r})
	return nil
}

func (s *Surface) DrawLines(points []dynamo.Point) error {
	if s.FailOn == OpLines {
		return s.Err
	}
	cp := make([]dynamo.Point, len(points))
	copy(cp, points)
	s.Calls = append(s.Calls, Call{Op: OpLines, Color: s.color, Points: cp})
	return nil
}

func (s *Surface) Present() {
	s.Calls = append(s.Calls, Call{Op: OpPresent})
}

// Count returns how many calls of op were recorded.
func (s *Surface) Count(op Op) int {
	n := 0
	for _, c := range s.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op in order.
func (s *Surface) Filter(op Op) []Call {
	var out []Call
	for _, c := range s.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (s *Surface) Reset() {
	s.Calls = s.Calls[:0]
}
