package gamemath

import "math"

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMagnitude shrinks value so |value| <= limit while keeping its sign.
// A negative limit leaves value untouched.
func ClampMagnitude(value, limit float64) float64 {
	if limit < 0 || math.Abs(value) <= limit {
		return value
	}
	return Sign(value) * limit
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(value float64) float64 {
	if value < 0 {
		return -1
	}
	return 1
}
