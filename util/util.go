package util

import "math"

// Lerp see https://en.wikipedia.org/wiki/Linear_interpolation
func Lerp(v0, v1, t float64) float64 {
	if t > 1.0 {
		t = 1.0
	}
	return (1-t)*v0 + t*v1
}

// Smoothstep see http://sol.gfxile.net/interpolation/
func Smoothstep(A, B, v float64) float64 {
	if v < 0.0 {
		v = 0.0
	}
	if v > 1.0 {
		v = 1.0
	}
	v = v * v * (3 - 2*v)
	return (B * v) + (A * (1.0 - v))
}

// Normalize is the opposite of lerp. Instead of a range and a factor, we give a range and a value to find out the factor.
func Normalize(start, finish, value float64) float64 {
	return (value - start) / (finish - start)
}

// MapValue converts a value from the scale [fromMin, fromMax] to a value from the scale [toMin, toMax].
func MapValue(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return Lerp(toMin, toMax, Normalize(fromMin, fromMax, value))
}

// Clamp a value between min and max values
func Clamp(value, _min, _max float64) float64 {
	return math.Min(math.Max(value, _min), _max)
}

// ClampInt a value between min and max values
func ClampInt(value, _min, _max int) int {
	return min(max(value, _min), _max)
}
