package lagrange

import "github.com/gonum/matrix/mat64"

// Grid is a rectilinear sampling of a planar frame: nx columns spanning
// [xmin, xmax] and ny rows spanning [ymin, ymax].
type Grid struct {
	xs, ys []float64
}

// NewGrid returns a grid of nx by ny samples over the given bounds.
// Single-sample axes collapse to their lower bound.
func NewGrid(xmin, xmax float64, nx int, ymin, ymax float64, ny int) Grid {
	return Grid{linspace(xmin, xmax, nx), linspace(ymin, ymax, ny)}
}

// Dims returns the number of columns and rows.
func (g Grid) Dims() (nx, ny int) {
	return len(g.xs), len(g.ys)
}

// X returns the x coordinate of column c.
func (g Grid) X(c int) float64 {
	return g.xs[c]
}

// Y returns the y coordinate of row r.
func (g Grid) Y(r int) float64 {
	return g.ys[r]
}

// Mesh expands the axes into full coordinate matrices, one row per y sample.
func (g Grid) Mesh() (X, Y *mat64.Dense) {
	nx, ny := g.Dims()
	X = mat64.NewDense(ny, nx, nil)
	Y = mat64.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			X.Set(i, j, g.xs[j])
			Y.Set(i, j, g.ys[i])
		}
	}
	return
}

// FieldMap is a scalar field sampled over a Grid. It satisfies the GridXYZ
// contract of gonum/plot's contour and heat map plotters.
type FieldMap struct {
	Grid
	z *mat64.Dense
}

// Z returns the field value at column c, row r.
func (f *FieldMap) Z(c, r int) float64 {
	return f.z.At(r, c)
}

// Min returns the smallest field value.
func (f *FieldMap) Min() float64 {
	return mat64.Min(f.z)
}

// Max returns the largest field value.
func (f *FieldMap) Max() float64 {
	return mat64.Max(f.z)
}

// Clip returns a copy of the field with values saturated to [lo, hi].
func (f *FieldMap) Clip(lo, hi float64) *FieldMap {
	nx, ny := f.Dims()
	z := mat64.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			z.Set(i, j, clamp(f.z.At(i, j), lo, hi))
		}
	}
	return &FieldMap{f.Grid, z}
}

// ArgMin returns the coordinates of the smallest field value.
func (f *FieldMap) ArgMin() (x, y float64) {
	nx, ny := f.Dims()
	best := f.z.At(0, 0)
	x, y = f.xs[0], f.ys[0]
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			if v := f.z.At(i, j); v < best {
				best = v
				x, y = f.xs[j], f.ys[i]
			}
		}
	}
	return
}
