package dynamo

import "errors"

// Pipeline and drawing errors. All of them terminate the program.
var (
	// ErrChannelClosed indicates the render loop stopped sending requests.
	ErrChannelClosed = errors.New("dynamo: request channel closed")

	// ErrWorkerStopped indicates the simulation worker stopped sending scenes.
	ErrWorkerStopped = errors.New("dynamo: simulation worker stopped")

	// ErrDraw indicates a drawing primitive failed.
	ErrDraw = errors.New("dynamo: draw call failed")

	// ErrWindow indicates the window could not be created.
	ErrWindow = errors.New("dynamo: window initialization failed")
)

// DrawError wraps a failed primitive with the name of the call.
type DrawError struct {
	Op      string
	Wrapped error
}

func (e *DrawError) Error() string {
	return "draw " + e.Op + ": " + e.Wrapped.Error()
}

func (e *DrawError) Unwrap() error {
	return e.Wrapped
}

func (e *DrawError) Is(target error) bool {
	return target == ErrDraw
}
