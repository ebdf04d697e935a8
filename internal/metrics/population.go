package metrics

import "github.com/san-kum/gravbox/internal/sim"

// Population is the largest scene seen.
type Population struct {
	name string
	peak int
}

func NewPopulation() *Population {
	return &Population{name: "peak_particles"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(f sim.Frame) {
	if f.Population > p.peak {
		p.peak = f.Population
	}
}

func (p *Population) Value() float64 { return float64(p.peak) }

func (p *Population) Reset() { p.peak = 0 }

// Absorbed counts particles removed by the center.
type Absorbed struct {
	name  string
	total int
}

func NewAbsorbed() *Absorbed {
	return &Absorbed{name: "absorbed"}
}

func (a *Absorbed) Name() string { return a.name }

func (a *Absorbed) Observe(f sim.Frame) { a.total += f.Absorbed }

func (a *Absorbed) Value() float64 { return float64(a.total) }

func (a *Absorbed) Reset() { a.total = 0 }
