package dynamo

import "math"

// Trunc32 converts f to int32, truncating toward zero. NaN maps to 0 and
// values outside the int32 range saturate, so the result is the same on every
// architecture.
func Trunc32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
