package time

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-elec/dsp/core"
)

const (
	// BarScale is the number of bar characters per unit of magnitude.
	BarScale = 10
	// MaxBarLength clips every bar, keeping the graph a fixed width.
	MaxBarLength = 50
)

// BarLength returns min(MaxBarLength, floor(|x|*BarScale)).
func BarLength(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	bars := math.Floor(math.Abs(x) * BarScale)
	return int(core.Clamp(bars, 0, MaxBarLength))
}

// BarGraph renders one line per sample: a 1-based index, a bar of
// BarLength(x) '|' characters and the value with three decimals.
func BarGraph(samples []float64) []string {
	lines := make([]string, len(samples))
	for i, x := range samples {
		lines[i] = fmt.Sprintf("%2d: %s (%.3f)", i+1, strings.Repeat("|", BarLength(x)), x)
	}
	return lines
}
