package physics

import "github.com/san-kum/gravbox/internal/dynamo"

// TrailCapacity is the number of positions a trail keeps.
const TrailCapacity = 100

// Trail is a fixed-size ring of drawing positions. Once full, each Add drops
// the oldest point.
type Trail struct {
	points [TrailCapacity]dynamo.Point
	next   int
	count  int
}

func (t *Trail) Add(p dynamo.Point) {
	t.points[t.next] = p
	t.next = (t.next + 1) % TrailCapacity
	if t.count < TrailCapacity {
		t.count++
	}
}

func (t *Trail) Len() int {
	return t.count
}

// Points returns the stored positions, oldest first.
func (t *Trail) Points() []dynamo.Point {
	return t.appendPoints(make([]dynamo.Point, 0, t.count))
}

func (t *Trail) appendPoints(dst []dynamo.Point) []dynamo.Point {
	start := (t.next - t.count + TrailCapacity) % TrailCapacity
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.points[(start+i)%TrailCapacity])
	}
	return dst
}
