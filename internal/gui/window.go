package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/dynamo"
)

var mouseButtons = []rl.MouseButton{
	rl.MouseButtonLeft,
	rl.MouseButtonRight,
	rl.MouseButtonMiddle,
}

// Window is the raylib implementation of dynamo.Surface and dynamo.Input.
// It must be used from the goroutine that opened it.
type Window struct {
	ink     color.RGBA
	drawing bool
	strip   []rl.Vector2
}

// Open creates the window described by cfg with the exit key disabled, so the
// close button is the only way to quit.
func Open(cfg *config.Config) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	if cfg.Window.VSync {
		rl.SetConfigFlags(rl.FlagVsyncHint)
	}
	rl.InitWindow(config.Width, config.Height, cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: %dx%d", dynamo.ErrWindow, config.Width, config.Height)
	}
	rl.SetExitKey(0)

	w := &Window{
		ink:   rl.White,
		strip: make([]rl.Vector2, 0, 128),
	}
	w.Clear(color.RGBA{A: 255})
	w.Present()
	return w, nil
}

func (w *Window) Close() {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *Window) SetDrawColor(c color.RGBA) {
	w.ink = c
}

// Clear starts a new frame if one is not already open.
func (w *Window) Clear(c color.RGBA) {
	w.begin()
	rl.ClearBackground(c)
}

func (w *Window) DrawLine(p0, p1 dynamo.Point) error {
	w.begin()
	rl.DrawLine(p0.X, p0.Y, p1.X, p1.Y, w.ink)
	return nil
}

func (w *Window) DrawRect(r dynamo.Rect) error {
	w.begin()
	rl.DrawRectangleLines(r.X, r.Y, r.W, r.H, w.ink)
	return nil
}

// DrawLines draws a connected polyline. Fewer than two points draw nothing.
func (w *Window) DrawLines(points []dynamo.Point) error {
	if len(points) < 2 {
		return nil
	}
	w.begin()
	w.strip = w.strip[:0]
	for _, p := range points {
		w.strip = append(w.strip, rl.NewVector2(float32(p.X), float32(p.Y)))
	}
	rl.DrawLineStrip(w.strip, w.ink)
	return nil
}

// Present ends the frame. raylib polls input while ending a frame, so events
// seen by the next Poll are the ones gathered here.
func (w *Window) Present() {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
}

func (w *Window) Poll() []dynamo.Event {
	var events []dynamo.Event

	if rl.WindowShouldClose() {
		events = append(events, dynamo.QuitEvent())
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		events = append(events, dynamo.KeyDownEvent(mapKey(key)))
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			events = append(events, dynamo.MouseDownEvent(rl.GetMouseX(), rl.GetMouseY()))
		}
	}

	return events
}

func mapKey(key int32) dynamo.Key {
	switch key {
	case rl.KeySpace:
		return dynamo.KeySpace
	case rl.KeyR:
		return dynamo.KeyR
	default:
		return dynamo.KeyOther
	}
}
