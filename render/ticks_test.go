package render

import (
	"testing"
)

func TestMetricTicks(t *testing.T) {
	center := 1 - 3.003e-6
	ticks := MetricTicks{Center: center}.Ticks(center-0.016, center+0.016)
	if len(ticks) != 7 {
		t.Fatalf("got %d ticks", len(ticks))
	}
	mid := ticks[3]
	if mid.Label != "0.0 M km" && mid.Label != "-0.0 M km" {
		t.Fatalf("center tick labeled %q", mid.Label)
	}
	if ticks[0].Value >= ticks[6].Value {
		t.Fatal("ticks not increasing")
	}
	last := ticks[6]
	// 0.016 frame units is about 2.4 million km.
	if last.Label != "2.4 M km" {
		t.Fatalf("edge tick labeled %q", last.Label)
	}
}

func TestLevels(t *testing.T) {
	ls := Levels(-4, 0.5, 90)
	if len(ls) != 90 {
		t.Fatalf("got %d levels", len(ls))
	}
	if ls[0] != -4 {
		t.Fatalf("levels start at %f", ls[0])
	}
	if diff := ls[89] - 0.5; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("levels end at %f", ls[89])
	}
	thinned := Every(ls, 2)
	if len(thinned) != 45 {
		t.Fatalf("thinned to %d levels", len(thinned))
	}
	if thinned[1] != ls[2] {
		t.Fatal("thinning misaligned")
	}
}
