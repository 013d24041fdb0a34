package lagrange

import (
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

// LogPolarScreen maps a square screen onto heliocentric distances on a log
// scale, so Mercury at 0.39 AU and Jupiter at 5.2 AU fit one frame.
type LogPolarScreen struct {
	Res          int
	MinAU, MaxAU float64
	// CenterHole floors the screen radius before the log mapping, masking
	// the Sun's singularity at the origin.
	CenterHole float64
	HalfSpan   float64
}

// NewLogPolarScreen returns a res by res screen over the archipelago bounds.
func NewLogPolarScreen(res int) LogPolarScreen {
	return LogPolarScreen{Res: res, MinAU: 0.25, MaxAU: 6.5, CenterHole: 0.08, HalfSpan: 1.1}
}

// Grid returns the screen sampling grid.
func (s LogPolarScreen) Grid() Grid {
	return NewGrid(-s.HalfSpan, s.HalfSpan, s.Res, -s.HalfSpan, s.HalfSpan, s.Res)
}

// ScreenRadius maps a heliocentric distance in AU to a screen radius.
func (s LogPolarScreen) ScreenRadius(rAU float64) float64 {
	return (math.Log(rAU) - math.Log(s.MinAU)) / (math.Log(s.MaxAU) - math.Log(s.MinAU))
}

// PhysRadius maps a screen radius to a heliocentric distance in AU,
// flooring at the center hole.
func (s LogPolarScreen) PhysRadius(rScreen float64) float64 {
	if rScreen < s.CenterHole {
		rScreen = s.CenterHole
	}
	lo, hi := math.Log(s.MinAU), math.Log(s.MaxAU)
	return math.Exp(lo + rScreen*(hi-lo))
}

// Well is one planet's contribution to the composite field: the body and its
// heliocentric longitude in the shared frame.
type Well struct {
	Body  Body
	Angle float64
}

// WellsAt returns the wells for the given bodies at a given time. With
// VSOP87 configured the angles come from the ephemeris, otherwise from the
// catalogued defaults.
func WellsAt(bodies []Body, dt time.Time) []Well {
	wells := make([]Well, len(bodies))
	for i := range bodies {
		wells[i] = Well{bodies[i], bodies[i].HelioLongitude(dt)}
	}
	return wells
}

// CompositeOptions tunes the multi-well blend.
type CompositeOptions struct {
	SigmaR     float64 // radial Gaussian width, in log-radius space
	SigmaTheta float64 // angular Gaussian width, radians
	Background float64 // composite floor where no well reaches
	Falloff    float64 // how hard an unmasked well is pushed off-scale
	MinDist    float64 // singularity floor for the local evaluations
}

// DefaultCompositeOptions returns the archipelago tuning.
func DefaultCompositeOptions() CompositeOptions {
	return CompositeOptions{SigmaR: 0.15, SigmaTheta: 0.5, Background: -200, Falloff: 10, MinDist: MinDistComposite}
}

// sample evaluates this well at screen point (sx, sy): the normalized local
// potential and the combined radial/angular mask weight.
func (w Well) sample(screen LogPolarScreen, opts CompositeOptions, sx, sy float64) (norm, weight float64) {
	sys := w.Body.System().WithMinDist(opts.MinDist)
	rPhys := screen.PhysRadius(math.Hypot(sx, sy))
	θ := wrapToPi(math.Atan2(sy, sx) - w.Angle)
	rLocal := rPhys / w.Body.OrbitAU
	pot := sys.Potential(rLocal*math.Cos(θ), rLocal*math.Sin(θ))
	// Shift by the first-order L1 depth and scale by μ^(1/3) so wells of
	// very different masses stay comparable.
	l1Depth := -1.5 - sys.HillDist()
	norm = (pot - l1Depth) / math.Cbrt(w.Body.μ)
	dlr := math.Log(rPhys) - math.Log(w.Body.OrbitAU)
	radial := math.Exp(-dlr * dlr / (2 * opts.SigmaR * opts.SigmaR))
	angular := math.Exp(-θ * θ / (2 * opts.SigmaTheta * opts.SigmaTheta))
	return norm, radial * angular
}

// Composite builds the multi-well field: every well is evaluated in its own
// co-rotating frame, masked to an island around its orbital position, blended
// off-scale elsewhere, and combined with a point-wise maximum. This is a
// "whichever well dominates here" rule, not a physical superposition; literal
// superposition would bury every local saddle under the Sun.
func Composite(screen LogPolarScreen, wells []Well, opts CompositeOptions, logger kitlog.Logger) *FieldMap {
	g := screen.Grid()
	nx, ny := g.Dims()
	z := mat64.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			z.Set(i, j, opts.Background)
		}
	}
	for _, w := range wells {
		start := time.Now()
		for i := 0; i < ny; i++ {
			sy := g.Y(i)
			for j := 0; j < nx; j++ {
				norm, weight := w.sample(screen, opts, g.X(j), sy)
				v := norm*weight - (1-weight)*opts.Falloff
				if v > z.At(i, j) {
					z.Set(i, j, v)
				}
			}
		}
		if logger != nil {
			logger.Log("well", w.Body.Name, "μ", w.Body.μ, "angle", w.Angle, "duration", time.Since(start))
		}
	}
	return &FieldMap{g, z}
}
