package lagrange

import (
	"math"

	"github.com/gonum/floats"
)

// linspace returns n evenly spaced samples over [start, end].
func linspace(start, end float64, n int) []float64 {
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapToPi wraps an angle to [-π, π).
func wrapToPi(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
