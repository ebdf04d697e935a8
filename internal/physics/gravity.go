package physics

import "math"

const (
	// GravityStrength is the force magnitude at a distance of DistanceScale.
	GravityStrength = 9.810 * 14.0
	// DistanceScale converts screen distance to the units of the force law.
	DistanceScale = 1000.0
)

// Gravity returns the inverse-square pull toward a center, given the angle and
// distance from AngleAndDistance. The angle points from the center to the
// particle, so the force components are negated along x and kept along y
// (screen y grows downward).
func Gravity(angle, distance float64) (float64, float64) {
	r := distance / DistanceScale
	r2 := r * r
	fx := -GravityStrength * math.Cos(angle) / r2
	fy := GravityStrength * math.Sin(angle) / r2
	return fx, fy
}
