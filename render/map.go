// Package render draws effective-potential fields as false-color
// topographic maps: filled level bands, contour outlines, body markers,
// orbit overlays and labels, written out as fixed-pixel PNG files.
package render

import (
	"image/color"
	"math"
	"os"

	"github.com/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Map is one false-color rendering being assembled.
type Map struct {
	p *plot.Plot
}

// New returns a map with a dark background and a light title, the house
// style of all three topography maps.
func New(title string, bg color.Color) *Map {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Color = color.White
	p.Title.TextStyle.Font.Size = 20
	p.Title.Padding = 12
	p.BackgroundColor = bg
	return &Map{p}
}

// Plot exposes the underlying plot for axis-level adjustments.
func (m *Map) Plot() *plot.Plot {
	return m.p
}

// HideAxes removes axes entirely for the clean poster look.
func (m *Map) HideAxes() {
	m.p.HideAxes()
}

// Filled adds the false-color level bands of f, mapping [lo, hi] onto pal.
// Clip the field to the same range first so out-of-band values saturate.
func (m *Map) Filled(f plotter.GridXYZ, pal palette.Palette, lo, hi float64) {
	h := plotter.NewHeatMap(f, pal)
	h.Min, h.Max = lo, hi
	m.p.Add(h)
}

// Contours adds single-color contour outlines of f at the given levels.
func (m *Map) Contours(f plotter.GridXYZ, levels []float64, c color.Color, width float64) {
	ct := plotter.NewContour(f, levels, Uniform(c))
	ct.LineStyles = []draw.LineStyle{{Color: c, Width: vg.Points(width)}}
	m.p.Add(ct)
}

// Glyph places a single marker.
func (m *Map) Glyph(x, y float64, shape draw.GlyphDrawer, c color.Color, radius float64) {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	must(err)
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(radius), Shape: shape}
	m.p.Add(s)
}

// Dot places a filled circle with an optional edge ring behind it.
func (m *Map) Dot(x, y float64, c color.Color, radius float64, edge color.Color, edgeWidth float64) {
	if edgeWidth > 0 {
		m.Glyph(x, y, draw.CircleGlyph{}, edge, radius+edgeWidth)
	}
	m.Glyph(x, y, draw.CircleGlyph{}, c, radius)
}

// Points scatters many small markers of one color, e.g. an asteroid cloud.
func (m *Map) Points(xs, ys []float64, c color.Color, radius float64) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	s, err := plotter.NewScatter(pts)
	must(err)
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(radius), Shape: draw.CircleGlyph{}}
	m.p.Add(s)
}

// Label writes text centered above (x, y).
func (m *Map) Label(x, y float64, s string, c color.Color, size float64) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{s},
	})
	must(err)
	l.TextStyle[0].Color = c
	l.TextStyle[0].Font.Size = vg.Points(size)
	l.TextStyle[0].XAlign = text.XCenter
	l.TextStyle[0].YAlign = text.YBottom
	m.p.Add(l)
}

// Path adds a polyline through the given coordinates.
func (m *Map) Path(xs, ys []float64, style draw.LineStyle) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	l, err := plotter.NewLine(pts)
	must(err)
	l.LineStyle = style
	m.p.Add(l)
}

// Ellipse adds a closed ellipse centered on (cx, cy); used for the stylized
// halo-orbit projections and orbit rings.
func (m *Map) Ellipse(cx, cy, rx, ry float64, style draw.LineStyle) {
	const n = 200
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		θ := 2 * math.Pi * float64(i) / n
		xs[i] = cx + rx*math.Cos(θ)
		ys[i] = cy + ry*math.Sin(θ)
	}
	m.Path(xs, ys, style)
}

// GridLines overlays faint axis-aligned grid lines.
func (m *Map) GridLines(c color.Color) {
	g := plotter.NewGrid()
	g.Vertical.Color = c
	g.Horizontal.Color = c
	m.p.Add(g)
}

// SavePNG renders the map at exactly wpx by hpx pixels.
func (m *Map) SavePNG(path string, wpx, hpx, dpi int) error {
	w := vg.Length(wpx) / vg.Length(dpi) * vg.Inch
	h := vg.Length(hpx) / vg.Length(dpi) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(m.p.BackgroundColor))
	m.p.Draw(draw.New(c))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Levels returns n evenly spaced contour levels over [lo, hi].
func Levels(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Every keeps one level out of each stride, for thinned outline sets.
func Every(levels []float64, stride int) []float64 {
	out := make([]float64, 0, len(levels)/stride+1)
	for i := 0; i < len(levels); i += stride {
		out = append(out, levels[i])
	}
	return out
}

// Faded returns c with its alpha scaled to the given opacity.
func Faded(c color.Color, opacity float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(opacity * 255),
	}
}

// Dashed is the shared style of orbit overlays.
func Dashed(c color.Color, width float64) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(width),
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
}

// Dotted is the fainter cousin of Dashed, for context rings.
func Dotted(c color.Color, width float64) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(width),
		Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
