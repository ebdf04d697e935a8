package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/san-kum/gravbox/internal/dynamo"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

const (
	// SpawnVY is the downward speed given to clicked particles.
	SpawnVY = 250.0
	// DefaultFrameDelay is the fixed sleep between frames.
	DefaultFrameDelay = time.Second / 60
)

type Options struct {
	Width, Height int
	Background    color.RGBA
	Palette       physics.Palette
	FrameDelay    time.Duration
}

func DefaultOptions() Options {
	return Options{
		Width:      1920,
		Height:     980,
		Background: color.RGBA{A: 255},
		Palette:    physics.DefaultPalette,
		FrameDelay: DefaultFrameDelay,
	}
}

// Loop is the render/input side of the pipeline. It owns the surface, the
// input device and the pause flag.
type Loop struct {
	surface  dynamo.Surface
	input    dynamo.Input
	requests chan<- sim.Request
	results  <-chan sim.Scene
	opts     Options
	paused   bool
	closed   bool
	frames   int
	sleep    func(time.Duration)
}

func NewLoop(surface dynamo.Surface, input dynamo.Input, p *sim.Pipeline, opts Options) *Loop {
	return &Loop{
		surface:  surface,
		input:    input,
		requests: p.Requests,
		results:  p.Results,
		opts:     opts,
		sleep:    time.Sleep,
	}
}

func (l *Loop) Paused() bool { return l.paused }

func (l *Loop) Frames() int { return l.frames }

// Start draws an empty scene and hands it to the worker.
func (l *Loop) Start() error {
	scene := sim.NewScene()
	if err := l.Draw(scene); err != nil {
		return err
	}
	l.requests <- sim.Request{Scene: scene, Paused: l.paused}
	return nil
}

// Tick runs one frame: receive, handle input, draw, send. It reports quit
// when the user closed the window; the scene is not sent back in that case.
func (l *Loop) Tick() (bool, error) {
	scene, ok := <-l.results
	if !ok {
		return false, dynamo.ErrWorkerStopped
	}

	for _, ev := range l.input.Poll() {
		var quit bool
		scene, quit = l.Handle(scene, ev)
		if quit {
			return true, nil
		}
	}

	if err := l.Draw(scene); err != nil {
		return false, err
	}

	l.requests <- sim.Request{Scene: scene, Paused: l.paused}
	l.frames++
	return false, nil
}

// Handle applies one input event to the scene.
func (l *Loop) Handle(scene sim.Scene, ev dynamo.Event) (sim.Scene, bool) {
	switch ev.Kind {
	case dynamo.EventQuit:
		return scene, true
	case dynamo.EventKeyDown:
		switch ev.Key {
		case dynamo.KeySpace:
			l.paused = !l.paused
		case dynamo.KeyR:
			scene = sim.NewScene()
			l.paused = false
		}
	case dynamo.EventMouseButtonDown:
		scene = append(scene, l.spawn(ev.X, ev.Y))
	}
	return scene, false
}

func (l *Loop) spawn(x, y int32) physics.Particle {
	return physics.NewBuilder(l.opts.Width, l.opts.Height).
		SetPos(float64(x), float64(y)).
		SetVY(SpawnVY).
		TrackPosition(true).
		Palette(l.opts.Palette).
		Build()
}

func (l *Loop) Draw(scene sim.Scene) error {
	l.surface.Clear(l.opts.Background)
	for i := range scene {
		if err := scene[i].Draw(l.surface); err != nil {
			return fmt.Errorf("particle %d: %w", i, err)
		}
	}
	l.surface.Present()
	return nil
}

// Run drives the loop until quit or a fatal error. The delay between frames
// is fixed and does not account for drawing time. The request channel is
// closed on return, which stops the worker.
func (l *Loop) Run() error {
	defer l.Close()

	if err := l.Start(); err != nil {
		return err
	}
	for {
		quit, err := l.Tick()
		if err != nil || quit {
			return err
		}
		l.sleep(l.opts.FrameDelay)
	}
}

func (l *Loop) Close() {
	if !l.closed {
		l.closed = true
		close(l.requests)
	}
}
