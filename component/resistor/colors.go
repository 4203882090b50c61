package resistor

import "strings"

// Color describes the roles a band color can play. A color without a digit
// cannot be used as a significant-digit band; a color with an empty
// Tolerance falls back to [DefaultTolerance] on the tolerance band.
type Color struct {
	Name          string
	Digit         int
	HasDigit      bool
	Multiplier    float64
	HasMultiplier bool
	Tolerance     string
}

// DefaultTolerance applies when the tolerance band is absent or not a
// tolerance-bearing color.
const DefaultTolerance = "±20%"

// ColorTable is an immutable, case-insensitive color lookup. It is safe for
// concurrent use because nothing mutates it after construction.
type ColorTable struct {
	byName map[string]Color
	order  []Color
}

// NewColorTable indexes colors by lowercase name and registers aliases
// (alias → canonical name). Aliases to unknown colors are ignored.
func NewColorTable(colors []Color, aliases map[string]string) *ColorTable {
	t := &ColorTable{
		byName: make(map[string]Color, len(colors)+len(aliases)),
		order:  make([]Color, 0, len(colors)),
	}
	for _, c := range colors {
		key := strings.ToLower(c.Name)
		if _, dup := t.byName[key]; !dup {
			t.order = append(t.order, c)
		}
		t.byName[key] = c
	}
	for alias, canonical := range aliases {
		if c, ok := t.byName[strings.ToLower(canonical)]; ok {
			t.byName[strings.ToLower(alias)] = c
		}
	}
	return t
}

// Lookup returns the color registered under name, ignoring case and
// surrounding blanks.
func (t *ColorTable) Lookup(name string) (Color, bool) {
	c, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Colors returns the canonical colors in construction order. The slice is
// a copy.
func (t *ColorTable) Colors() []Color {
	return append([]Color(nil), t.order...)
}

// Len returns the number of names, aliases included.
func (t *ColorTable) Len() int {
	return len(t.byName)
}

func digit(name string, d int, mult float64, tol string) Color {
	return Color{Name: name, Digit: d, HasDigit: true, Multiplier: mult, HasMultiplier: true, Tolerance: tol}
}

// standardColors is the EIA color code for 4-band resistors.
var standardColors = []Color{
	digit("black", 0, 1, ""),
	digit("brown", 1, 10, "±1%"),
	digit("red", 2, 100, "±2%"),
	digit("orange", 3, 1e3, ""),
	digit("yellow", 4, 1e4, ""),
	digit("green", 5, 1e5, "±0.5%"),
	digit("blue", 6, 1e6, "±0.25%"),
	digit("violet", 7, 1e7, "±0.1%"),
	digit("grey", 8, 1e8, "±0.05%"),
	digit("white", 9, 1e9, ""),
	{Name: "gold", Multiplier: 0.1, HasMultiplier: true, Tolerance: "±5%"},
	{Name: "silver", Multiplier: 0.01, HasMultiplier: true, Tolerance: "±10%"},
}

var standardAliases = map[string]string{
	"purple": "violet",
	"gray":   "grey",
}

var standard = NewColorTable(standardColors, standardAliases)

// Standard returns the process-wide EIA color table.
func Standard() *ColorTable {
	return standard
}
