package geom

import (
	"math"

	"github.com/san-kum/gravbox/internal/dynamo"
)

// Line is a directed segment between two screen points.
type Line struct {
	start dynamo.Point
	end   dynamo.Point
}

func NewLine(x0, y0, x1, y1 int32) Line {
	return Line{
		start: dynamo.NewPoint(x0, y0),
		end:   dynamo.NewPoint(x1, y1),
	}
}

func (l Line) Points() (dynamo.Point, dynamo.Point) {
	return l.start, l.end
}

// Angle returns the screen-space direction of the segment (y grows downward).
// The result is atan(-dy/dx), shifted by pi when dx < 0; it is not normalized.
func (l Line) Angle() float64 {
	dx := float64(l.end.X - l.start.X)
	dy := float64(l.end.Y - l.start.Y)
	return Heading(dx, dy)
}

// Heading is the angle rule shared by lines and particles. A zero dx yields
// ±pi/2 through the infinite quotient.
func Heading(dx, dy float64) float64 {
	result := math.Atan(-dy / dx)
	if dx < 0 {
		result += math.Pi
	}
	return result
}

func (l Line) Draw(s dynamo.Surface) error {
	if err := s.DrawLine(l.start, l.end); err != nil {
		return &dynamo.DrawError{Op: "line", Wrapped: err}
	}
	return nil
}
