package render

import (
	"image/color"
	"testing"
)

func TestGradientCount(t *testing.T) {
	for name, pal := range map[string]interface {
		Colors(int) []color.Color
	}{
		"magma":      Magma(),
		"inferno":    Inferno(),
		"gist_stern": GistStern(),
	} {
		for _, n := range []int{1, 2, 90, 120, 150} {
			if got := len(pal.Colors(n)); got != n {
				t.Fatalf("%s: asked for %d colors, got %d", name, n, got)
			}
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	cs := Magma().Colors(120)
	r, g, b, _ := cs[0].RGBA()
	if r>>8 > 8 || g>>8 > 8 || b>>8 > 8 {
		t.Fatalf("magma should start near black, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = cs[119].RGBA()
	if r>>8 < 0xf0 || g>>8 < 0xf0 || b>>8 < 0xb0 {
		t.Fatalf("magma should end pale, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestUniform(t *testing.T) {
	cyan := color.NRGBA{G: 0xff, B: 0xff, A: 0xff}
	for _, c := range Uniform(cyan).Colors(7) {
		if c != color.Color(cyan) {
			t.Fatalf("uniform palette leaked %v", c)
		}
	}
}

func TestFaded(t *testing.T) {
	f := Faded(color.White, 0.08)
	nrgba, ok := f.(color.NRGBA)
	if !ok {
		t.Fatalf("faded color has type %T", f)
	}
	if nrgba.R != 0xff || nrgba.G != 0xff || nrgba.B != 0xff {
		t.Fatalf("faded white changed hue: %+v", nrgba)
	}
	if nrgba.A < 18 || nrgba.A > 22 {
		t.Fatalf("8%% opacity encoded as alpha %d", nrgba.A)
	}
}
