package render

import (
	"fmt"

	"gonum.org/v1/plot"
)

// mkmPerUnit is how many million kilometers one normalized frame unit spans
// (one astronomical unit).
const mkmPerUnit = 149.6

// MetricTicks labels an axis in millions of kilometers offset from Center,
// for zoom maps whose frame coordinates are normalized to 1 AU.
type MetricTicks struct {
	Center float64
	Count  int // tick count, 7 when zero
}

var _ plot.Ticker = MetricTicks{}

// Ticks implements plot.Ticker.
func (t MetricTicks) Ticks(min, max float64) []plot.Tick {
	n := t.Count
	if n < 2 {
		n = 7
	}
	ticks := make([]plot.Tick, n)
	for i := 0; i < n; i++ {
		v := min + (max-min)*float64(i)/float64(n-1)
		ticks[i] = plot.Tick{
			Value: v,
			Label: fmt.Sprintf("%.1f M km", (v-t.Center)*mkmPerUnit),
		}
	}
	return ticks
}
