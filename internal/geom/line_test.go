package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gravbox/internal/dynamo"
	"github.com/san-kum/gravbox/internal/dynamo/dynamotest"
)

func TestLineAngle(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		expected float64
	}{
		{"east", NewLine(0, 0, 10, 0), 0},
		{"north east", NewLine(0, 0, 10, -10), math.Pi / 4},
		{"south east", NewLine(5, 5, 15, 15), -math.Pi / 4},
		{"north west", NewLine(0, 0, -10, -10), 3 * math.Pi / 4},
		{"south west", NewLine(0, 0, -10, 10), 5 * math.Pi / 4},
		{"west", NewLine(0, 0, -10, 0), math.Pi},
		{"vertical up", NewLine(3, 10, 3, 0), math.Pi / 2},
		{"vertical down", NewLine(3, 0, 3, 10), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Angle()
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected %.6f, got %.6f", tt.expected, got)
			}
		})
	}
}

func TestLineAngleMatchesAtan(t *testing.T) {
	for dx := int32(-20); dx <= 20; dx += 3 {
		for dy := int32(-20); dy <= 20; dy += 4 {
			if dx == 0 {
				continue
			}
			got := NewLine(100, 100, 100+dx, 100+dy).Angle()
			want := math.Atan(-float64(dy) / float64(dx))
			if dx < 0 {
				want += math.Pi
			}
			if got != want {
				t.Fatalf("dx=%d dy=%d: expected %v, got %v", dx, dy, want, got)
			}
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	if !math.IsNaN(NewLine(4, 4, 4, 4).Angle()) {
		t.Error("expected NaN for zero-length line")
	}
}

func TestLineDraw(t *testing.T) {
	s := dynamotest.NewSurface()
	if err := NewLine(1, 2, 3, 4).Draw(s); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	lines := s.Filter(dynamotest.OpLine)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Points[0] != dynamo.NewPoint(1, 2) || lines[0].Points[1] != dynamo.NewPoint(3, 4) {
		t.Errorf("unexpected points %v", lines[0].Points)
	}
}

func TestLineDrawError(t *testing.T) {
	s := dynamotest.NewSurface()
	s.FailOn = dynamotest.OpLine
	s.Err = errors.New("renderer lost")

	err := NewLine(0, 0, 1, 1).Draw(s)
	if !errors.Is(err, dynamo.ErrDraw) {
		t.Errorf("expected ErrDraw, got %v", err)
	}
}
