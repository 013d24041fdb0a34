// earthzoom renders the Hill sphere of Earth: the L1 and L2 gateways with
// their critical contours and the stylized SOHO and JWST halo orbits.
package main

import (
	"flag"
	"image/color"
	"log"

	lagrange "github.com/MushroomFleet/Lagrange-Study"
	"github.com/MushroomFleet/Lagrange-Study/render"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

const (
	zoomRadius = 0.016 // about 2.4 million km either side of Earth
	resY       = 2000
	resX       = 3540 // 16:9-ish aspect over the zoom window
	widthPx    = 2560
	heightPx   = 1440
	dpi        = 160
)

var output = flag.String("o", "Map2_Earth_Zoom_2K.png", "output PNG filename")

func main() {
	flag.Parse()
	sys := lagrange.Earth.System()
	earthX := sys.SecondaryX()
	grid := lagrange.NewGrid(earthX-zoomRadius, earthX+zoomRadius, resX, -zoomRadius, zoomRadius, resY)
	field := sys.FieldGrid(grid)

	points := sys.LagrangePoints()
	l1, l2 := points[0], points[1]
	// The exact L1/L2 potentials are the "gate" contours.
	cL1 := sys.PotentialAt(l1)
	cL2 := sys.PotentialAt(l2)
	zMin, zMax := cL1-2.5e-5, cL1+5e-6

	bg := color.NRGBA{B: 0x05, A: 0xff}
	m := render.New("Earth's Hill Sphere: L1 & L2 Gateways", bg)
	m.Filled(field.Clip(zMin, zMax), render.Inferno(), zMin, zMax)

	cyan := color.NRGBA{G: 0xff, B: 0xff, A: 0xff}
	magenta := color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	m.Contours(field, []float64{cL1}, render.Faded(cyan, 0.8), 2)
	m.Contours(field, []float64{cL2}, render.Faded(magenta, 0.8), 2)

	m.Dot(earthX, 0, color.NRGBA{R: 0x22, G: 0xaa, B: 0xff, A: 0xff}, 12, color.White, 2)
	m.Glyph(l1.X, 0, draw.PlusGlyph{}, cyan, 7)
	m.Glyph(l2.X, 0, draw.PlusGlyph{}, magenta, 7)

	// Stylized vertical projections, not integrated trajectories.
	white := render.Faded(color.White, 0.8)
	m.Ellipse(l2.X, 0, 0.002, 0.005, render.Dashed(white, 1.5))
	m.Label(l2.X, 0.006, "JWST Halo Orbit", render.Faded(color.White, 0.7), 10)
	m.Ellipse(l1.X, 0, 0.0015, 0.003, render.Dashed(white, 1.5))
	m.Label(l1.X, -0.005, "SOHO Halo Orbit", render.Faded(color.White, 0.7), 10)

	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	p := m.Plot()
	p.X.Tick.Marker = render.MetricTicks{Center: earthX}
	p.X.Label.Text = "Distance from Earth (Million km)"
	p.X.Label.TextStyle.Color = gray
	p.X.Tick.Label.Color = gray
	p.X.Tick.LineStyle.Color = gray
	p.X.LineStyle.Color = gray
	p.Y.Tick.Marker = plot.ConstantTicks{}
	p.Y.LineStyle.Color = gray
	m.GridLines(render.Faded(color.White, 0.05))

	out := lagrange.OutputPath(*output)
	if err := m.SavePNG(out, widthPx, heightPx, dpi); err != nil {
		log.Fatalf("could not write %s: %s", out, err)
	}
	log.Printf("wrote %s", out)
}
