// Package resistor decodes 4-band resistor color codes into a resistance,
// a scaled display value and a tolerance.
package resistor

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidColor is returned when a band color cannot play the role of
// its band.
var ErrInvalidColor = errors.New("invalid band color")

// Band identifies a position on the resistor body.
type Band int

const (
	BandDigit1 Band = iota + 1
	BandDigit2
	BandMultiplier
	BandTolerance
)

func (b Band) String() string {
	switch b {
	case BandDigit1:
		return "first digit"
	case BandDigit2:
		return "second digit"
	case BandMultiplier:
		return "multiplier"
	case BandTolerance:
		return "tolerance"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// BandError reports the band whose color was rejected.
type BandError struct {
	Band  Band
	Color string
}

func (e *BandError) Error() string {
	role := "digit"
	if e.Band == BandMultiplier {
		role = "multiplier"
	}
	return fmt.Sprintf("%s band: color %q has no %s value", e.Band, e.Color, role)
}

// Unwrap makes BandError match ErrInvalidColor.
func (e *BandError) Unwrap() error {
	return ErrInvalidColor
}

// Result is a decoded resistor.
type Result struct {
	Digit1     int
	Digit2     int
	Multiplier float64
	Resistance float64 // ohms
	Magnitude  float64 // Resistance scaled to Unit
	Unit       string  // "Ω", "kΩ" or "MΩ"
	Tolerance  string
}

// Display renders the scaled value with three decimals, e.g. "47.000 kΩ".
func (r Result) Display() string {
	return decimal.NewFromFloat(r.Magnitude).StringFixed(3) + " " + r.Unit
}

// Scale picks the display unit: MΩ from 1e6, kΩ from 1e3, Ω below.
func Scale(ohms float64) (magnitude float64, unit string) {
	switch {
	case ohms >= 1e6:
		return ohms / 1e6, "MΩ"
	case ohms >= 1e3:
		return ohms / 1e3, "kΩ"
	default:
		return ohms, "Ω"
	}
}

// Decoder resolves band names against a shared [ColorTable].
type Decoder struct {
	table *ColorTable
}

// NewDecoder returns a Decoder backed by table, or by [Standard] when table
// is nil.
func NewDecoder(table *ColorTable) *Decoder {
	if table == nil {
		table = Standard()
	}
	return &Decoder{table: table}
}

// Digit returns the significant digit encoded by name.
func (d *Decoder) Digit(band Band, name string) (int, error) {
	c, ok := d.table.Lookup(name)
	if !ok || !c.HasDigit {
		return 0, &BandError{Band: band, Color: name}
	}
	return c.Digit, nil
}

// Multiplier returns the multiplier factor encoded by name.
func (d *Decoder) Multiplier(name string) (float64, error) {
	c, ok := d.table.Lookup(name)
	if !ok || !c.HasMultiplier {
		return 0, &BandError{Band: BandMultiplier, Color: name}
	}
	return c.Multiplier, nil
}

// Tolerance returns the tolerance text for name, or DefaultTolerance when
// name carries none.
func (d *Decoder) Tolerance(name string) string {
	c, ok := d.table.Lookup(name)
	if !ok || c.Tolerance == "" {
		return DefaultTolerance
	}
	return c.Tolerance
}

// Decode resolves the four bands. The tolerance band never fails.
func (d *Decoder) Decode(band1, band2, multiplier, tolerance string) (Result, error) {
	d1, err := d.Digit(BandDigit1, band1)
	if err != nil {
		return Result{}, err
	}
	d2, err := d.Digit(BandDigit2, band2)
	if err != nil {
		return Result{}, err
	}
	mult, err := d.Multiplier(multiplier)
	if err != nil {
		return Result{}, err
	}

	ohms := float64(10*d1+d2) * mult
	mag, unit := Scale(ohms)
	return Result{
		Digit1:     d1,
		Digit2:     d2,
		Multiplier: mult,
		Resistance: ohms,
		Magnitude:  mag,
		Unit:       unit,
		Tolerance:  d.Tolerance(tolerance),
	}, nil
}

// Decode resolves the four bands against the standard color table.
func Decode(band1, band2, multiplier, tolerance string) (Result, error) {
	return NewDecoder(nil).Decode(band1, band2, multiplier, tolerance)
}
