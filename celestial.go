package lagrange

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
)

// AU is one astronomical unit in kilometers.
const AU = 1.49597870700e8

// Body is a Sun-orbiting secondary. OrbitAU is its mean heliocentric
// distance, μ its mass ratio against the Sun, and angle the catalogued
// heliocentric longitude used when no ephemeris is configured.
type Body struct {
	Name    string
	OrbitAU float64
	μ       float64
	angle   float64
	Color   color.RGBA
	vsop    int // VSOP87 planet index
	pp      *planetposition.V87Planet
}

// MassRatio returns μ (which is unexported because it's a lowercase letter).
func (b Body) MassRatio() float64 {
	return b.μ
}

// System returns the Sun–body co-rotating system. The table only holds
// valid mass ratios, so this cannot fail.
func (b Body) System() System {
	s, err := NewSystem(b.μ)
	if err != nil {
		panic(fmt.Errorf("invalid mass ratio in body table for %s: %s", b.Name, err))
	}
	return s
}

// HelioLongitude returns the heliocentric longitude of this body at a given
// time, in radians in [-π, π). With VSOP87 configured it reads the ephemeris;
// otherwise it falls back to the catalogued angle.
func (b *Body) HelioLongitude(dt time.Time) float64 {
	conf := lagrangeConfig()
	if !conf.VSOP87 {
		return b.angle
	}
	if b.pp == nil {
		planet, err := planetposition.LoadPlanetPath(b.vsop, conf.VSOP87Dir)
		if err != nil {
			panic(fmt.Errorf("could not load VSOP87 data for %s: %s", b.Name, err))
		}
		b.pp = planet
	}
	l, _, _ := b.pp.Position2000(julian.TimeToJD(dt))
	return wrapToPi(l.Rad())
}

func (b Body) String() string {
	return fmt.Sprintf("%s (r=%.2f AU, μ=%.3g)", b.Name, b.OrbitAU, b.μ)
}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Mercury barely dents the field.
var Mercury = Body{"Mercury", 0.39, 1.66e-7, 0, color.RGBA{0xff, 0xff, 0xff, 0xff}, planetposition.Mercury, nil}

// Venus hides under its clouds.
var Venus = Body{"Venus", 0.72, 2.45e-6, 1.25, color.RGBA{0xff, 0xaa, 0x00, 0xff}, planetposition.Venus, nil}

// Earth is where the telescopes launch from.
var Earth = Body{"Earth", 1.00, 3.003e-6, 2.51, color.RGBA{0x00, 0xaa, 0xff, 0xff}, planetposition.Earth, nil}

// Mars keeps its wells shallow.
var Mars = Body{"Mars", 1.52, 3.23e-7, 3.76, color.RGBA{0xff, 0x55, 0x33, 0xff}, planetposition.Mars, nil}

// Jupiter drags two Trojan camps around with it.
var Jupiter = Body{"Jupiter", 5.20, 9.54e-4, 5.02, color.RGBA{0xdb, 0xaa, 0x77, 0xff}, planetposition.Jupiter, nil}

// Planets lists the bodies of the archipelago map, innermost first.
var Planets = []Body{Mercury, Venus, Earth, Mars, Jupiter}
