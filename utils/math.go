// Package utils contains scalar helpers shared by the kinematics packages.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is within the given epsilon.
// Identical values, including matching infinities, are always equal.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= epsilon
}

// Float64sAlmostEqual reports whether two slices have the same length and every pair of
// elements is within epsilon of each other.
func Float64sAlmostEqual(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if !Float64AlmostEqual(x, b[i], epsilon) {
			return false
		}
	}
	return true
}
