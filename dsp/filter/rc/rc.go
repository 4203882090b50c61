// Package rc solves the single-pole RC cutoff equation fc = 1/(2π·R·C)
// for whichever of R or C is unknown.
package rc

import (
	"errors"
	"math"
)

// ErrInvalidSpec is returned by [Spec.Solve] when the cutoff is not positive
// or when not exactly one of R and C is given.
var ErrInvalidSpec = errors.New("rc: need cutoff > 0 and exactly one of R, C > 0")

// SolveC returns the capacitance in farads for cutoff fc (Hz) and R (ohms).
func SolveC(fc, r float64) float64 {
	return 1 / (2 * math.Pi * r * fc)
}

// SolveR returns the resistance in ohms for cutoff fc (Hz) and C (farads).
func SolveR(fc, c float64) float64 {
	return 1 / (2 * math.Pi * c * fc)
}

// Cutoff returns the -3 dB frequency of an RC section.
func Cutoff(r, c float64) float64 {
	return 1 / (2 * math.Pi * r * c)
}

// Spec is a cutoff frequency plus one known component. The unknown
// component is left at zero.
type Spec struct {
	Cutoff float64 // Hz
	R      float64 // ohms
	C      float64 // farads
}

// Solve returns a copy of s with the missing component filled in.
func (s Spec) Solve() (Spec, error) {
	if !(s.Cutoff > 0) {
		return s, ErrInvalidSpec
	}

	hasR, hasC := s.R > 0, s.C > 0
	switch {
	case hasR && s.C == 0:
		s.C = SolveC(s.Cutoff, s.R)
	case hasC && s.R == 0:
		s.R = SolveR(s.Cutoff, s.C)
	default:
		return s, ErrInvalidSpec
	}
	return s, nil
}
