// internal/utils/math.go
package utils

import "math"

// Approach returns the signed step that closes gap by at most speed, without
// overshooting.
func Approach(gap, speed float64) float64 {
	if math.Abs(gap) <= speed {
		return gap
	}
	return math.Copysign(speed, gap)
}

// Normalize returns the unit vector of (dx, dy) and its original length.
// A zero vector stays zero.
func Normalize(dx, dy float64) (ux, uy, length float64) {
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}
