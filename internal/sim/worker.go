package sim

import (
	"sync/atomic"
	"time"

	"github.com/san-kum/gravbox/internal/dynamo"
)

type Worker struct {
	center    Center
	observers []Observer
	state     atomic.Int32
}

func NewWorker(center Center) *Worker {
	return &Worker{
		center:    center,
		observers: make([]Observer, 0),
	}
}

// AddObserver must be called before Run.
func (w *Worker) AddObserver(o Observer) { w.observers = append(w.observers, o) }

func (w *Worker) State() State { return State(w.state.Load()) }

// Process handles one request. A paused scene is returned untouched.
func (w *Worker) Process(req Request) Scene {
	w.state.Store(int32(Stepping))
	start := time.Now()

	scene := req.Scene
	absorbed := 0
	if !req.Paused {
		scene, absorbed = Step(scene, w.center)
	}

	frame := Frame{
		Elapsed:    time.Since(start),
		Population: len(scene),
		Absorbed:   absorbed,
		Energy:     scene.KineticEnergy(),
		Paused:     req.Paused,
	}
	for _, o := range w.observers {
		o.OnFrame(frame)
	}

	return scene
}

// Run serves requests until the request channel is closed. It closes results
// on return and always returns dynamo.ErrChannelClosed.
func (w *Worker) Run(requests <-chan Request, results chan<- Scene) error {
	defer close(results)

	for {
		w.state.Store(int32(WaitingForScene))
		req, ok := <-requests
		if !ok {
			return dynamo.ErrChannelClosed
		}

		scene := w.Process(req)

		w.state.Store(int32(Sending))
		results <- scene
	}
}

// Pipeline holds the render loop's ends of a running worker.
type Pipeline struct {
	Requests chan<- Request
	Results  <-chan Scene
	Done     <-chan error
}

// Start launches w in a new goroutine. Both channels hold one message, which
// is all the ping-pong exchange ever needs.
func Start(w *Worker) *Pipeline {
	requests := make(chan Request, 1)
	results := make(chan Scene, 1)
	done := make(chan error, 1)

	go func() {
		done <- w.Run(requests, results)
	}()

	return &Pipeline{
		Requests: requests,
		Results:  results,
		Done:     done,
	}
}
