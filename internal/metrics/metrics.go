package metrics

import "github.com/san-kum/gravbox/internal/sim"

type Metric interface {
	Name() string
	Observe(f sim.Frame)
	Value() float64
	Reset()
}
