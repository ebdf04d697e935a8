// Package physics provides the particle model for gravbox.
//
// A [Particle] carries continuous state (position, velocity and a per-substep
// acceleration) plus the drawable values derived from it:
//
//   - an integer drawing position
//   - velocity and acceleration arrows ([geom.Vector])
//   - an optional bounded position [Trail]
//
// Particles are built with a [Builder] and advanced one fixed substep at a
// time with [Particle.Update]. Acceleration does not persist between
// substeps, so callers re-apply forces before every update:
//
//	p := physics.NewBuilder(width, height).SetPos(100, 100).SetVY(250).Build()
//	fx, fy := physics.Gravity(p.AngleAndDistance(cx, cy))
//	p.ApplyForce(fx, fy).Update()
//
// Particle is a plain value with no pointers, so copying one snapshots its
// full state and two particles compare with ==.
package physics
