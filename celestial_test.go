package lagrange

import (
	"strings"
	"testing"
)

func TestBodyTable(t *testing.T) {
	if len(Planets) != 5 {
		t.Fatalf("%d bodies in the archipelago table", len(Planets))
	}
	prev := 0.0
	for i := range Planets {
		b := Planets[i]
		if b.OrbitAU <= prev {
			t.Fatalf("%s out of order: %f AU after %f AU", b.Name, b.OrbitAU, prev)
		}
		prev = b.OrbitAU
		if μ := b.MassRatio(); μ <= 0 || μ >= 1 {
			t.Fatalf("%s has mass ratio %g", b.Name, μ)
		}
		sys := b.System()
		if sys.MassRatio() != b.MassRatio() {
			t.Fatalf("%s system mass ratio mismatch", b.Name)
		}
	}
}

func TestBodyFromString(t *testing.T) {
	for _, b := range Planets {
		got, err := BodyFromString(strings.ToUpper(b.Name))
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != b.Name || got.μ != b.μ {
			t.Fatalf("lookup for %s returned %s", b.Name, got.Name)
		}
	}
	if _, err := BodyFromString("Vesta"); err == nil {
		t.Fatal("unknown body accepted")
	}
}

func TestEarthMassRatio(t *testing.T) {
	if Earth.MassRatio() != 3.003e-6 {
		t.Fatalf("Earth mass ratio is %g", Earth.MassRatio())
	}
	if Jupiter.MassRatio() != 9.54e-4 {
		t.Fatalf("Jupiter mass ratio is %g", Jupiter.MassRatio())
	}
}

func TestCataloguedAnglesWrapped(t *testing.T) {
	for i := range Planets {
		a := Planets[i].angle
		if a < -3.15 || a > 6.3 {
			t.Fatalf("%s catalogued angle %f out of range", Planets[i].Name, a)
		}
	}
}
