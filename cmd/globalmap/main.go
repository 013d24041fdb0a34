// globalmap renders the Sun–Earth effective potential over the whole orbit,
// annotated with the five Lagrange points and a 1 AU scale bar.
package main

import (
	"flag"
	"image/color"
	"log"

	lagrange "github.com/MushroomFleet/Lagrange-Study"
	"github.com/MushroomFleet/Lagrange-Study/render"
	"gonum.org/v1/plot/vg/draw"
)

const (
	widthPx  = 2560
	heightPx = 1440
	dpi      = 160
)

var output = flag.String("o", "Map1_EarthSun_Global_2K.png", "output PNG filename")

func main() {
	flag.Parse()
	sys := lagrange.Earth.System()
	grid := lagrange.NewGrid(-1.5, 1.7, widthPx, -0.9, 0.9, heightPx)
	field := sys.FieldGrid(grid)
	// The Sun's well is infinitely deep; clip to the Lagrange surface so the
	// color range spends itself on the saddle structure.
	clipped := field.Clip(-3.05, -1.499)
	levels := render.Levels(clipped.Min(), clipped.Max(), 120)

	bg := color.NRGBA{R: 0x05, G: 0x05, B: 0x08, A: 0xff}
	m := render.New("Earth-Sun System: Gravitational Topography (Effective Potential)", bg)
	m.HideAxes()
	m.Filled(clipped, render.Magma(), levels[0], levels[len(levels)-1])
	m.Contours(clipped, render.Every(levels, 2), render.Faded(color.White, 0.08), 0.5)

	gold := color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	goldEdge := color.NRGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}
	m.Dot(sys.PrimaryX(), 0, gold, 9, goldEdge, 2)
	m.Dot(sys.SecondaryX(), 0, color.NRGBA{G: 0xff, B: 0xff, A: 0xff}, 4, color.White, 1)

	for _, pt := range sys.LagrangePoints() {
		m.Glyph(pt.X, pt.Y, draw.CrossGlyph{}, render.Faded(color.White, 0.9), 6)
		m.Label(pt.X, pt.Y+0.06, pt.Name, color.White, 14)
	}

	// Scale reference along the bottom.
	m.Path([]float64{0, 1}, []float64{-0.85, -0.85}, draw.LineStyle{Color: color.White, Width: 1})
	m.Label(0.5, -0.88, "1 AU (150 million km)", color.White, 10)

	out := lagrange.OutputPath(*output)
	if err := m.SavePNG(out, widthPx, heightPx, dpi); err != nil {
		log.Fatalf("could not write %s: %s", out, err)
	}
	log.Printf("wrote %s", out)
}
