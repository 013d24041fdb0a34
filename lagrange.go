package lagrange

import "math"

// Point is a named equilibrium point of the co-rotating frame.
type Point struct {
	Name string
	X, Y float64
}

// HillDist returns (μ/3)^(1/3), the first-order distance from the secondary
// to L1 and L2.
func (s System) HillDist() float64 {
	return math.Cbrt(s.μ / 3)
}

// LagrangePoints returns the five equilibrium points, valid to first order
// in μ. There is no iterative refinement: these maps trade physical
// precision for speed and clarity, and all the bodies in the table have
// μ ≪ 1 where the first-order terms are plenty.
func (s System) LagrangePoints() [5]Point {
	dist := s.HillDist()
	sec := s.SecondaryX()
	return [5]Point{
		{"L1", sec - dist, 0},
		{"L2", sec + dist, 0},
		{"L3", -1 - 5*s.μ/12, 0},
		{"L4", 0.5 - s.μ, math.Sqrt(3) / 2},
		{"L5", 0.5 - s.μ, -math.Sqrt(3) / 2},
	}
}

// PotentialAt returns the effective potential at a named point. L1 and L2
// give the critical "gateway" levels used for the zoom map contours.
func (s System) PotentialAt(p Point) float64 {
	return s.Potential(p.X, p.Y)
}
