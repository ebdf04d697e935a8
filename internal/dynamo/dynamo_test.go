package dynamo

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		minChunk int
	}{
		{"serial", 10, 64},
		{"empty", 0, 64},
		{"split", 1000, 64},
		{"uneven", 1001, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.n)
			ParallelFor(tt.n, tt.minChunk, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("index %d visited %d times", i, c)
				}
			}
		})
	}
}

func TestDrawErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("particle: %w", &DrawError{Op: "rect", Wrapped: cause})

	if !errors.Is(err, ErrDraw) {
		t.Error("expected ErrDraw")
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause")
	}
	if err.Error() != "particle: draw rect: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestEventConstructors(t *testing.T) {
	ev := MouseDownEvent(10, 20)
	if ev.Kind != EventMouseButtonDown || ev.X != 10 || ev.Y != 20 {
		t.Errorf("unexpected event %+v", ev)
	}
	if KeyDownEvent(KeyR).Key != KeyR {
		t.Error("expected KeyR")
	}
	if QuitEvent().Kind.String() != "quit" {
		t.Error("expected quit kind")
	}
}

func TestTrunc32(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int32
	}{
		{"positive", 3.9, 3},
		{"negative", -3.9, -3},
		{"zero", 0, 0},
		{"nan", math.NaN(), 0},
		{"pos inf", math.Inf(1), math.MaxInt32},
		{"neg inf", math.Inf(-1), math.MinInt32},
		{"above range", 1e12, math.MaxInt32},
		{"below range", -1e12, math.MinInt32},
		{"max", math.MaxInt32, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trunc32(tt.in); got != tt.want {
				t.Errorf("Trunc32(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
