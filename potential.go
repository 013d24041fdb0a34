package lagrange

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

const (
	// MinDistSingle is the default singularity floor for single-pair maps.
	MinDistSingle = 1e-6
	// MinDistComposite is the coarser floor used when several wells share one screen.
	MinDistComposite = 1e-4
)

// System is a primary/secondary pair in its co-rotating frame, normalized so
// that the separation is 1, the primary sits at (-μ, 0) and the secondary at
// (1-μ, 0). The zero value is not usable; build one with NewSystem.
type System struct {
	μ float64
	// MinDist floors the distance to either body before dividing. The true
	// potential is singular at the body centers; the maps saturate there
	// instead of propagating infinities into the color scale.
	MinDist float64
}

// NewSystem returns the co-rotating system for the given mass ratio
// μ = m2/(m1+m2). The mass ratio must be in (0, 1).
func NewSystem(μ float64) (System, error) {
	if μ <= 0 || μ >= 1 {
		return System{}, fmt.Errorf("mass ratio must be in (0, 1), got %g", μ)
	}
	return System{μ, MinDistSingle}, nil
}

// MassRatio returns μ (which is unexported because it's a lowercase letter).
func (s System) MassRatio() float64 {
	return s.μ
}

// WithMinDist returns a copy of this system with a different singularity floor.
func (s System) WithMinDist(d float64) System {
	s.MinDist = d
	return s
}

// PrimaryX returns the x coordinate of the primary. Both bodies sit on the
// x axis in this frame.
func (s System) PrimaryX() float64 {
	return -s.μ
}

// SecondaryX returns the x coordinate of the secondary.
func (s System) SecondaryX() float64 {
	return 1 - s.μ
}

// Potential returns the effective potential at (x, y): the gravity of both
// bodies plus the centrifugal term of the rotating frame.
func (s System) Potential(x, y float64) float64 {
	r1 := math.Hypot(x+s.μ, y)
	r2 := math.Hypot(x-(1-s.μ), y)
	if r1 < s.MinDist {
		r1 = s.MinDist
	}
	if r2 < s.MinDist {
		r2 = s.MinDist
	}
	return -(1-s.μ)/r1 - s.μ/r2 - 0.5*(x*x+y*y)
}

// Field evaluates the potential elementwise over the coordinate matrices X
// and Y, which must have identical dimensions.
func (s System) Field(X, Y *mat64.Dense) (*mat64.Dense, error) {
	rX, cX := X.Dims()
	rY, cY := Y.Dims()
	if rX != rY || cX != cY {
		return nil, fmt.Errorf("coordinate shapes do not match: %dx%d != %dx%d", rX, cX, rY, cY)
	}
	Z := mat64.NewDense(rX, cX, nil)
	for i := 0; i < rX; i++ {
		for j := 0; j < cX; j++ {
			Z.Set(i, j, s.Potential(X.At(i, j), Y.At(i, j)))
		}
	}
	return Z, nil
}

// FieldGrid evaluates the potential over the meshgrid of g.
func (s System) FieldGrid(g Grid) *FieldMap {
	nx, ny := g.Dims()
	Z := mat64.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		y := g.ys[i]
		for j := 0; j < nx; j++ {
			Z.Set(i, j, s.Potential(g.xs[j], y))
		}
	}
	return &FieldMap{g, Z}
}
