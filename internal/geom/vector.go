package geom

import (
	"image/color"
	"math"

	"github.com/san-kum/gravbox/internal/dynamo"
)

const (
	// ArrowLength is the length of each arrowhead stroke.
	ArrowLength = 20.0
	arrowSpread = 3 * math.Pi / 4
)

// Vector is an arrow: a center line plus two arrowhead strokes at its end.
type Vector struct {
	center Line
	arrow  [2]Line
	color  color.RGBA
}

func NewVector(x0, y0, x1, y1 int32, c color.RGBA) Vector {
	center := NewLine(x0, y0, x1, y1)
	return Vector{
		center: center,
		arrow:  arrowLines(center),
		color:  c,
	}
}

// arrowLines returns the two arrowhead strokes. A zero-length center has a NaN
// angle and its tips land on the origin.
func arrowLines(center Line) [2]Line {
	angle := center.Angle() + arrowSpread
	_, end := center.Points()
	ex, ey := float64(end.X), float64(end.Y)

	x0 := dynamo.Trunc32(ex + math.Cos(angle)*ArrowLength)
	y0 := dynamo.Trunc32(ey - math.Sin(angle)*ArrowLength)
	x1 := dynamo.Trunc32(ex + math.Cos(angle+math.Pi/2)*ArrowLength)
	y1 := dynamo.Trunc32(ey - math.Sin(angle+math.Pi/2)*ArrowLength)

	return [2]Line{
		NewLine(end.X, end.Y, x0, y0),
		NewLine(end.X, end.Y, x1, y1),
	}
}

func (v Vector) Center() Line      { return v.center }
func (v Vector) Arrow() [2]Line    { return v.arrow }
func (v Vector) Color() color.RGBA { return v.color }

func (v Vector) Draw(s dynamo.Surface) error {
	s.SetDrawColor(v.color)
	if err := v.center.Draw(s); err != nil {
		return err
	}
	for _, l := range v.arrow {
		if err := l.Draw(s); err != nil {
			return err
		}
	}
	return nil
}
