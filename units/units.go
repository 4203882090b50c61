// Package units implements the fixed table of electrical unit conversions:
// dBm and milliwatts, ordinary and angular frequency, peak and RMS voltage.
package units

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-elec/dsp/core"
)

var (
	// ErrInvalidDomain is returned when the input lies outside the domain of
	// the selected formula. No conversion is performed.
	ErrInvalidDomain = errors.New("input outside conversion domain")
	// ErrUnknownConversion is returned for a selector outside the table.
	ErrUnknownConversion = errors.New("unknown conversion")
)

// Conversion selects one entry of the conversion table. The numbering
// matches the converter menu.
type Conversion int

const (
	DBmToMilliwatt Conversion = iota + 1
	MilliwattToDBm
	HertzToRadPerSec
	RadPerSecToHertz
	PeakToRMS
	RMSToPeak
)

type entry struct {
	label     string
	unit      string
	precision int
	apply     func(float64) (float64, error)
}

var table = [...]entry{
	DBmToMilliwatt:   {label: "dBm → mW", unit: "mW", precision: 6, apply: total(DBmToMW)},
	MilliwattToDBm:   {label: "mW → dBm", unit: "dBm", precision: 4, apply: MWToDBm},
	HertzToRadPerSec: {label: "Hz → rad/s", unit: "rad/s", precision: 6, apply: total(HzToRad)},
	RadPerSecToHertz: {label: "rad/s → Hz", unit: "Hz", precision: 6, apply: total(RadToHz)},
	PeakToRMS:        {label: "Vpeak → Vrms", unit: "Vrms", precision: 6, apply: total(VpeakToVrms)},
	RMSToPeak:        {label: "Vrms → Vpeak", unit: "Vpeak", precision: 6, apply: total(VrmsToVpeak)},
}

func total(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) { return f(x), nil }
}

// All returns every conversion in menu order.
func All() []Conversion {
	return []Conversion{DBmToMilliwatt, MilliwattToDBm, HertzToRadPerSec, RadPerSecToHertz, PeakToRMS, RMSToPeak}
}

// Valid reports whether c names a table entry.
func (c Conversion) Valid() bool {
	return c >= DBmToMilliwatt && c <= RMSToPeak
}

// String returns the menu label, e.g. "dBm → mW".
func (c Conversion) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Conversion(%d)", int(c))
	}
	return table[c].label
}

// Unit returns the unit of the converted value.
func (c Conversion) Unit() string {
	if !c.Valid() {
		return ""
	}
	return table[c].unit
}

// Format renders a converted value the way the console shows it,
// e.g. "= 1.000000 mW".
func (c Conversion) Format(v float64) string {
	if !c.Valid() {
		return fmt.Sprintf("= %g", v)
	}
	e := table[c]
	return fmt.Sprintf("= %.*f %s", e.precision, v, e.unit)
}

// Convert applies the formula selected by c to x.
func Convert(c Conversion, x float64) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownConversion, int(c))
	}
	v, err := table[c].apply(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c, err)
	}
	return v, nil
}

// DBmToMW returns 10^(dBm/10).
func DBmToMW(dbm float64) float64 {
	return core.DBPowerToLinear(dbm)
}

// MWToDBm returns 10·log10(mW). mW must be positive.
func MWToDBm(mw float64) (float64, error) {
	if !(mw > 0) {
		return 0, fmt.Errorf("%w: power must be > 0 mW, got %g", ErrInvalidDomain, mw)
	}
	return core.LinearPowerToDB(mw), nil
}

// HzToRad returns the angular frequency 2π·f.
func HzToRad(f float64) float64 {
	return 2 * math.Pi * f
}

// RadToHz returns the ordinary frequency w/(2π).
func RadToHz(w float64) float64 {
	return w / (2 * math.Pi)
}

// VpeakToVrms returns Vp/√2, the RMS value of a sine with peak Vp.
func VpeakToVrms(vp float64) float64 {
	return vp / math.Sqrt2
}

// VrmsToVpeak returns Vr·√2, the peak value of a sine with RMS Vr.
func VrmsToVpeak(vr float64) float64 {
	return vr * math.Sqrt2
}
