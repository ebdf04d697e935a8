package sim

import (
	"github.com/san-kum/gravbox/internal/dynamo"
	"github.com/san-kum/gravbox/internal/physics"
)

const (
	// Substeps is the number of integration substeps per frame.
	Substeps = 16
	// parallelChunk is the smallest slice of particles handed to a goroutine.
	parallelChunk = 512
)

// Step advances the scene by one frame and returns it with the number of
// particles absorbed by the center. A particle closer to the center than its
// own size is absorbed: it stops receiving force or updates for the rest of
// the frame and is removed once all substeps are done. Survivors then record
// one trail point.
func Step(scene Scene, c Center) (Scene, int) {
	absorbed := make([]bool, len(scene))

	for s := 0; s < Substeps; s++ {
		dynamo.ParallelFor(len(scene), parallelChunk, func(start, end int) {
			for i := start; i < end; i++ {
				if absorbed[i] {
					continue
				}
				p := &scene[i]
				angle, distance := p.AngleAndDistance(c.X, c.Y)
				if distance < float64(p.Size()) {
					absorbed[i] = true
					continue
				}
				fx, fy := physics.Gravity(angle, distance)
				p.ApplyForce(fx, fy).Update()
			}
		})
	}

	kept := scene[:0]
	removed := 0
	for i := range scene {
		if absorbed[i] {
			removed++
			continue
		}
		kept = append(kept, scene[i])
	}

	for i := range kept {
		kept[i].AddToTrail()
	}

	return kept, removed
}
