// archipelago renders the five inner wells of the solar system on one
// log-polar screen: each planet's co-rotating potential, normalized and
// masked to an island around its own orbit, combined point-wise.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	lagrange "github.com/MushroomFleet/Lagrange-Study"
	"github.com/MushroomFleet/Lagrange-Study/render"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

const (
	res    = 1800
	sizePx = 2160
	dpi    = 180

	levelMin = -4
	levelMax = 0.5

	trojanCount = 300
	trojanσ     = 0.02
)

var (
	output = flag.String("o", "Map3_Archipelago_Corrected_2K.png", "output PNG filename")
	epoch  = flag.String("epoch", "", "UTC date (2006-01-02) for ephemeris planet angles; catalogued angles when unset or without VSOP87")
)

func main() {
	flag.Parse()
	dt := time.Now().UTC()
	if *epoch != "" {
		var err error
		dt, err = time.Parse("2006-01-02", *epoch)
		if err != nil {
			log.Fatalf("could not read epoch: %s", err)
		}
	}
	wells := lagrange.WellsAt(lagrange.Planets, dt)

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "map", "archipelago")
	screen := lagrange.NewLogPolarScreen(res)
	field := lagrange.Composite(screen, wells, lagrange.DefaultCompositeOptions(), klog)

	bg := color.NRGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xff}
	m := render.New("Solar System Gravity Archipelago\n(Log-Polar Projection - Normalized Local Wells)", bg)
	m.HideAxes()
	clipped := field.Clip(levelMin, levelMax)
	levels := render.Levels(levelMin, levelMax, 90)
	m.Filled(clipped, render.GistStern(), levelMin, levelMax)
	m.Contours(clipped, levels, render.Faded(color.White, 0.05), 0.5)

	for _, w := range wells {
		rs := screen.ScreenRadius(w.Body.OrbitAU)
		px := rs * math.Cos(w.Angle)
		py := rs * math.Sin(w.Angle)
		// Faint full orbit ring for context.
		m.Ellipse(0, 0, rs, rs, render.Dotted(render.Faded(color.White, 0.05), 1))
		m.Dot(px, py, w.Body.Color, 5, color.Black, 1)
		m.Label(px*1.15, py*1.15, w.Body.Name, w.Body.Color, 9)
		if w.Body.Name == "Jupiter" {
			trojanCamps(m, screen, w)
		}
	}

	gold := color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	m.Dot(0, 0, gold, 12, color.NRGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}, 2)

	out := lagrange.OutputPath(*output)
	if err := m.SavePNG(out, sizePx, sizePx, dpi); err != nil {
		log.Fatalf("could not write %s: %s", out, err)
	}
	log.Printf("wrote %s", out)
}

// trojanCamps scatters the two co-orbital asteroid clouds 60° ahead of and
// behind Jupiter.
func trojanCamps(m *render.Map, screen lagrange.LogPolarScreen, w lagrange.Well) {
	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	cov := mat64.NewSymDense(2, []float64{trojanσ * trojanσ, 0, 0, trojanσ * trojanσ})
	rs := screen.ScreenRadius(w.Body.OrbitAU)
	gray := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	for _, camp := range []struct {
		offset float64
		name   string
	}{
		{math.Pi / 3, "L4"},
		{-math.Pi / 3, "L5"},
	} {
		lx := rs * math.Cos(w.Angle+camp.offset)
		ly := rs * math.Sin(w.Angle+camp.offset)
		cloud, ok := distmv.NewNormal([]float64{lx, ly}, cov, seed)
		if !ok {
			panic("NOK in Gaussian")
		}
		xs := make([]float64, trojanCount)
		ys := make([]float64, trojanCount)
		for i := range xs {
			v := cloud.Rand(nil)
			xs[i], ys[i] = v[0], v[1]
		}
		m.Points(xs, ys, render.Faded(gray, 0.5), 0.5)
		m.Label(lx*1.08, ly*1.08, camp.name, gray, 7)
	}
}
