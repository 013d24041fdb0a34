package lagrange

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestLinspace(t *testing.T) {
	xs := linspace(-1.5, 1.7, 5)
	if len(xs) != 5 {
		t.Fatalf("got %d samples", len(xs))
	}
	if xs[0] != -1.5 || !floats.EqualWithinAbs(xs[4], 1.7, 1e-12) {
		t.Fatalf("span [%f, %f]", xs[0], xs[4])
	}
	if !floats.EqualWithinAbs(xs[2], 0.1, 1e-12) {
		t.Fatalf("midpoint %f", xs[2])
	}
	if one := linspace(0.25, 6.5, 1); len(one) != 1 || one[0] != 0.25 {
		t.Fatalf("single-sample span %v", one)
	}
}

func TestClamp(t *testing.T) {
	if clamp(-5, -3.05, -1.499) != -3.05 {
		t.Fatal("lower clamp failed")
	}
	if clamp(0, -3.05, -1.499) != -1.499 {
		t.Fatal("upper clamp failed")
	}
	if clamp(-2, -3.05, -1.499) != -2 {
		t.Fatal("in-range value altered")
	}
}

func TestWrapToPi(t *testing.T) {
	for _, c := range []struct{ in, exp float64 }{
		{0, 0},
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi, -math.Pi},
	} {
		if got := wrapToPi(c.in); !floats.EqualWithinAbs(got, c.exp, 1e-12) {
			t.Fatalf("wrapToPi(%f) = %f, expected %f", c.in, got, c.exp)
		}
	}
}
