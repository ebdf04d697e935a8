package sim

import (
	"time"

	"github.com/san-kum/gravbox/internal/physics"
)

// Scene is the ordered set of live particles. It belongs to whichever loop
// last received it.
type Scene []physics.Particle

func NewScene() Scene {
	return Scene{}
}

// Clone copies the scene; particles are values so the copy is independent.
func (s Scene) Clone() Scene {
	c := make(Scene, len(s))
	copy(c, s)
	return c
}

func (s Scene) KineticEnergy() float64 {
	total := 0.0
	for i := range s {
		total += s[i].KineticEnergy()
	}
	return total
}

// Request hands a scene to the worker.
type Request struct {
	Scene  Scene
	Paused bool
}

// Center is the point every particle is pulled toward.
type Center struct {
	X, Y float64
}

var DefaultCenter = Center{X: 960, Y: 440}

// Frame summarizes one processed request.
type Frame struct {
	Elapsed    time.Duration
	Population int
	Absorbed   int
	Energy     float64
	Paused     bool
}

type Observer interface {
	OnFrame(f Frame)
}

type State int32

const (
	WaitingForScene State = iota
	Stepping
	Sending
)

func (s State) String() string {
	switch s {
	case WaitingForScene:
		return "waiting"
	case Stepping:
		return "stepping"
	case Sending:
		return "sending"
	default:
		return "unknown"
	}
}
