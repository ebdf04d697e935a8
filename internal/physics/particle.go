package physics

import (
	"image/color"
	"math"

	"github.com/san-kum/gravbox/internal/dynamo"
	"github.com/san-kum/gravbox/internal/geom"
)

const (
	// TimeStep is the duration of one integration substep.
	TimeStep = 0.001
	// DefaultSize is the draw and collision size of a new particle.
	DefaultSize = 14
	// Restitution is the fraction of speed kept after a wall bounce.
	Restitution = 0.9
	// DisplayScale divides velocity and acceleration for their arrows.
	DisplayScale = 4.0
)

type Palette struct {
	Outline      color.RGBA
	Velocity     color.RGBA
	Acceleration color.RGBA
	Trail        color.RGBA
}

var DefaultPalette = Palette{
	Outline:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Velocity:     color.RGBA{B: 255, A: 255},
	Acceleration: color.RGBA{R: 255, A: 255},
	Trail:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
}

type Particle struct {
	x, y   float64
	vx, vy float64
	ax, ay float64

	pos dynamo.Point
	vel geom.Vector
	acc geom.Vector

	size     int
	trail    Trail
	tracking bool
	palette  Palette

	sceneWidth  int
	sceneHeight int
}

func newParticle(x, y, vx, vy, ax, ay float64, size int, tracking bool, palette Palette, width, height int) Particle {
	px, py := dynamo.Trunc32(x), dynamo.Trunc32(y)
	return Particle{
		x:           x,
		y:           y,
		vx:          vx,
		vy:          vy,
		ax:          ax,
		ay:          ay,
		pos:         dynamo.NewPoint(px, py),
		vel:         geom.NewVector(px, py, dynamo.Trunc32(x+vx/DisplayScale), dynamo.Trunc32(y+vy/DisplayScale), palette.Velocity),
		acc:         geom.NewVector(px, py, dynamo.Trunc32(x+ax/DisplayScale), dynamo.Trunc32(y+ay/DisplayScale), palette.Acceleration),
		size:        size,
		tracking:    tracking,
		palette:     palette,
		sceneWidth:  width,
		sceneHeight: height,
	}
}

// Update advances the particle by one substep: position from velocity, wall
// bounces, velocity from acceleration. Acceleration is consumed and reset.
func (p *Particle) Update() {
	p.x += p.vx * TimeStep
	p.y += p.vy * TimeStep

	p.bounce()

	p.vx += p.ax * TimeStep
	p.vy += p.ay * TimeStep

	ax, ay := p.ax, p.ay
	p.ax, p.ay = 0, 0

	p.refresh(ax, ay)
}

// bounce checks each wall independently; a corner hit flips both components.
func (p *Particle) bounce() {
	maxY := float64(p.sceneHeight - p.size/2)
	if p.y > maxY {
		p.vy = -p.vy * Restitution
		p.y = maxY
	}
	if p.y < 0 {
		p.vy = -p.vy * Restitution
		p.y = 0
	}

	maxX := float64(p.sceneWidth - p.size/2)
	if p.x > maxX {
		p.vx = -p.vx * Restitution
		p.x = maxX
	}
	if p.x < 0 {
		p.vx = -p.vx * Restitution
		p.x = 0
	}
}

// refresh rebuilds the drawable position and arrows. ax, ay are the
// acceleration values from before the reset.
func (p *Particle) refresh(ax, ay float64) {
	x, y := dynamo.Trunc32(p.x), dynamo.Trunc32(p.y)
	p.pos = dynamo.NewPoint(x, y)
	p.vel = geom.NewVector(x, y, x+dynamo.Trunc32(p.vx/DisplayScale), y+dynamo.Trunc32(p.vy/DisplayScale), p.palette.Velocity)
	p.acc = geom.NewVector(x, y, x+dynamo.Trunc32(ax/DisplayScale), y+dynamo.Trunc32(ay/DisplayScale), p.palette.Acceleration)
}

// ApplyForce adds f/size to the acceleration, treating size as mass.
func (p *Particle) ApplyForce(fx, fy float64) *Particle {
	p.ax += fx / float64(p.size)
	p.ay += fy / float64(p.size)
	return p
}

// AngleAndDistance returns the heading from (tx, ty) to the particle and the
// distance between them.
func (p *Particle) AngleAndDistance(tx, ty float64) (float64, float64) {
	dx := p.x - tx
	dy := p.y - ty
	return geom.Heading(dx, dy), math.Sqrt(dx*dx + dy*dy)
}

func (p *Particle) AddToTrail() {
	if p.tracking {
		p.trail.Add(p.pos)
	}
}

func (p *Particle) Draw(s dynamo.Surface) error {
	half := int32(p.size / 2)
	rect := dynamo.NewRect(p.pos.X-half, p.pos.Y-half, int32(p.size), int32(p.size))

	s.SetDrawColor(p.palette.Outline)
	if err := s.DrawRect(rect); err != nil {
		return &dynamo.DrawError{Op: "particle", Wrapped: err}
	}
	if err := p.vel.Draw(s); err != nil {
		return err
	}
	if err := p.acc.Draw(s); err != nil {
		return err
	}

	if p.tracking {
		s.SetDrawColor(p.palette.Trail)
		if err := s.DrawLines(p.trail.Points()); err != nil {
			return &dynamo.DrawError{Op: "trail", Wrapped: err}
		}
	}
	return nil
}

// KineticEnergy uses size as mass, like ApplyForce.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * float64(p.size) * (p.vx*p.vx + p.vy*p.vy)
}

func (p *Particle) Pos() (float64, float64) { return p.x, p.y }
func (p *Particle) Vel() (float64, float64) { return p.vx, p.vy }
func (p *Particle) Acc() (float64, float64) { return p.ax, p.ay }
func (p *Particle) Size() int               { return p.size }
func (p *Particle) DrawPos() dynamo.Point   { return p.pos }
func (p *Particle) VelArrow() geom.Vector   { return p.vel }
func (p *Particle) AccArrow() geom.Vector   { return p.acc }
func (p *Particle) Tracking() bool          { return p.tracking }
func (p *Particle) Trail() *Trail           { return &p.trail }
