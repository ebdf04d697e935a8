package metrics

import "github.com/san-kum/gravbox/internal/sim"

// StepTime is the mean worker time per stepped frame, in milliseconds.
type StepTime struct {
	name    string
	sum     float64
	samples int
}

func NewStepTime() *StepTime {
	return &StepTime{
		name: "step_ms",
	}
}

func (s *StepTime) Name() string {
	return s.name
}

func (s *StepTime) Observe(f sim.Frame) {
	if f.Paused {
		return
	}
	s.sum += float64(f.Elapsed.Microseconds()) / 1000
	s.samples++
}

func (s *StepTime) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *StepTime) Reset() {
	s.sum = 0
	s.samples = 0
}
