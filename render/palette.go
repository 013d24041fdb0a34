package render

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// gradient is a piecewise perceptual gradient between anchor colors, blended
// in Luv space.
type gradient struct {
	pos     []float64
	anchors []colorful.Color
}

var _ palette.Palette = gradient{}

// Colors returns n colors evenly sampled along the gradient.
func (g gradient) Colors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cs[i] = g.at(t)
	}
	return cs
}

func (g gradient) at(t float64) color.Color {
	if t <= g.pos[0] {
		return g.anchors[0]
	}
	for k := 0; k < len(g.pos)-1; k++ {
		if t <= g.pos[k+1] {
			span := g.pos[k+1] - g.pos[k]
			frac := (t - g.pos[k]) / span
			return g.anchors[k].BlendLuv(g.anchors[k+1], frac).Clamped()
		}
	}
	return g.anchors[len(g.anchors)-1]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Errorf("bad palette anchor %s: %s", s, err))
	}
	return c
}

func newGradient(stops map[float64]string) gradient {
	// Anchor tables are tiny; insertion sort keeps this dependency-free.
	pos := make([]float64, 0, len(stops))
	for p := range stops {
		pos = append(pos, p)
	}
	for i := 1; i < len(pos); i++ {
		for j := i; j > 0 && pos[j] < pos[j-1]; j-- {
			pos[j], pos[j-1] = pos[j-1], pos[j]
		}
	}
	anchors := make([]colorful.Color, len(pos))
	for i, p := range pos {
		anchors[i] = mustHex(stops[p])
	}
	return gradient{pos, anchors}
}

// Magma is a dark-violet to pale-yellow heat palette, high contrast at the
// deep end. Suits the global topography map.
func Magma() palette.Palette {
	return newGradient(map[float64]string{
		0.00: "#000004",
		0.25: "#51127c",
		0.50: "#b73779",
		0.75: "#fc8961",
		1.00: "#fcfdbf",
	})
}

// Inferno is the hotter sibling of Magma, used for the Hill-sphere zoom.
func Inferno() palette.Palette {
	return newGradient(map[float64]string{
		0.00: "#000004",
		0.25: "#57106e",
		0.50: "#bc3754",
		0.75: "#f98e09",
		1.00: "#fcffa4",
	})
}

// GistStern rises through a red spike into blue-gray and out to white; the
// odd shape makes the island saddles of the archipelago map pop.
func GistStern() palette.Palette {
	return newGradient(map[float64]string{
		0.000: "#000000",
		0.055: "#e21212",
		0.250: "#3f3f7f",
		0.500: "#7f7fff",
		0.735: "#bcbc00",
		1.000: "#ffffff",
	})
}

// Uniform repeats one color; handy for single-color contour outlines.
func Uniform(c color.Color) palette.Palette {
	return uniform{c}
}

type uniform struct{ c color.Color }

func (u uniform) Colors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = u.c
	}
	return cs
}
