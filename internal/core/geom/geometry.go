package geom

import "math"

// precision is the number of decimal digits kept before comparisons.
const precision = 1e8

// MinHitDistance rejects hits at (or right next to) a ray's own origin.
const MinHitDistance = 0.001

// Round8 rounds v to 8 decimal digits.
func Round8(v float64) float64 {
	return math.Round(v*precision) / precision
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NormalizeRadians maps an angle into [0, 2π).
func NormalizeRadians(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// within reports whether v lies in the closed interval spanned by lo and hi
// after rounding all three values.
func within(v, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	r := Round8(v)
	return r >= Round8(lo) && r <= Round8(hi)
}
