package dynamo

import (
	"fmt"
	"image/color"
)

type Point struct {
	X, Y int32
}

func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Rect struct {
	X, Y int32
	W, H int32
}

func NewRect(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Surface is a stateful drawing target. Line primitives use the color set by
// the last SetDrawColor call.
type Surface interface {
	SetDrawColor(c color.RGBA)
	Clear(c color.RGBA)
	DrawLine(p0, p1 Point) error
	DrawRect(r Rect) error
	DrawLines(points []Point) error
	Present()
}

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseButtonDown
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key-down"
	case EventMouseButtonDown:
		return "mouse-button-down"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyR
)

type Event struct {
	Kind EventKind
	Key  Key
	X, Y int32
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func KeyDownEvent(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

func MouseDownEvent(x, y int32) Event {
	return Event{Kind: EventMouseButtonDown, X: x, Y: y}
}

// Input returns every event queued since the previous Poll.
type Input interface {
	Poll() []Event
}
