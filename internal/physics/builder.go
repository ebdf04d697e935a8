package physics

// Builder configures a Particle. The zero position is the left edge at the
// vertical middle of the scene.
type Builder struct {
	x, y     float64
	vx, vy   float64
	ax, ay   float64
	size     int
	tracking bool
	palette  Palette
	width    int
	height   int
}

func NewBuilder(width, height int) *Builder {
	return &Builder{
		x:       0,
		y:       float64(height / 2),
		size:    DefaultSize,
		palette: DefaultPalette,
		width:   width,
		height:  height,
	}
}

func (b *Builder) SetPos(x, y float64) *Builder {
	b.x, b.y = x, y
	return b
}

func (b *Builder) SetVX(vx float64) *Builder {
	b.vx = vx
	return b
}

func (b *Builder) AddVX(vx float64) *Builder {
	b.vx += vx
	return b
}

func (b *Builder) SetVY(vy float64) *Builder {
	b.vy = vy
	return b
}

func (b *Builder) AddVY(vy float64) *Builder {
	b.vy += vy
	return b
}

func (b *Builder) SetAX(ax float64) *Builder {
	b.ax = ax
	return b
}

func (b *Builder) AddAX(ax float64) *Builder {
	b.ax += ax
	return b
}

func (b *Builder) SetAY(ay float64) *Builder {
	b.ay = ay
	return b
}

func (b *Builder) AddAY(ay float64) *Builder {
	b.ay += ay
	return b
}

// SetSize ignores non-positive sizes.
func (b *Builder) SetSize(size int) *Builder {
	if size > 0 {
		b.size = size
	}
	return b
}

func (b *Builder) TrackPosition(v bool) *Builder {
	b.tracking = v
	return b
}

func (b *Builder) Palette(p Palette) *Builder {
	b.palette = p
	return b
}

func (b *Builder) Build() Particle {
	return newParticle(b.x, b.y, b.vx, b.vy, b.ax, b.ay, b.size, b.tracking, b.palette, b.width, b.height)
}
