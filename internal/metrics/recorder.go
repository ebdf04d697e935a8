package metrics

import (
	"sync"

	"github.com/san-kum/gravbox/internal/sim"
)

// DefaultHistory keeps ten seconds of frames at 60 Hz.
const DefaultHistory = 600

// Recorder is a sim.Observer that feeds a set of metrics and keeps a bounded
// history of per-frame step time and population. It is safe to read from
// another goroutine while the worker writes to it.
type Recorder struct {
	mu         sync.Mutex
	metrics    []Metric
	stepMs     []float64
	population []float64
	maxHistory int
	frames     int
}

func NewRecorder(maxHistory int) *Recorder {
	if maxHistory <= 0 {
		maxHistory = DefaultHistory
	}
	return &Recorder{
		metrics:    []Metric{NewStepTime(), NewPopulation(), NewAbsorbed(), NewEnergy()},
		stepMs:     make([]float64, 0, maxHistory),
		population: make([]float64, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

func (r *Recorder) OnFrame(f sim.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames++
	for _, m := range r.metrics {
		m.Observe(f)
	}

	r.stepMs = appendBounded(r.stepMs, float64(f.Elapsed.Microseconds())/1000, r.maxHistory)
	r.population = appendBounded(r.population, float64(f.Population), r.maxHistory)
}

func appendBounded(series []float64, v float64, limit int) []float64 {
	series = append(series, v)
	if len(series) > limit {
		copy(series, series[1:])
		series = series[:limit]
	}
	return series
}

// Snapshot is a copy of the recorder state.
type Snapshot struct {
	Frames     int
	Values     map[string]float64
	Names      []string
	StepMs     []float64
	Population []float64
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		Frames:     r.frames,
		Values:     make(map[string]float64, len(r.metrics)),
		Names:      make([]string, 0, len(r.metrics)),
		StepMs:     append([]float64(nil), r.stepMs...),
		Population: append([]float64(nil), r.population...),
	}
	for _, m := range r.metrics {
		s.Names = append(s.Names, m.Name())
		s.Values[m.Name()] = m.Value()
	}
	return s
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = 0
	r.stepMs = r.stepMs[:0]
	r.population = r.population[:0]
	for _, m := range r.metrics {
		m.Reset()
	}
}
