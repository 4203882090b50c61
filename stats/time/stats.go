package time

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptySeries is returned for a series without samples.
	ErrEmptySeries = errors.New("sample series is empty")
	// ErrTooManySamples is returned when a series exceeds the configured cap.
	ErrTooManySamples = errors.New("sample series exceeds maximum length")
	// ErrNonFinite is returned when a sample is NaN or infinite.
	ErrNonFinite = errors.New("sample is not finite")
)

// Summary holds the statistics reported by the signal analyzer.
type Summary struct {
	Length     int
	Min        float64
	MinPos     int
	Max        float64
	MaxPos     int
	PeakToPeak float64 // max - min
	RMS        float64 // sqrt(mean(x²)), DC included
}

// Analyzer validates series against a length cap before summarizing them.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer returns an Analyzer configured by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{cfg: ApplyOptions(opts...)}
}

// MaxSamples returns the configured series length cap.
func (a *Analyzer) MaxSamples() int {
	return a.cfg.MaxSamples
}

// Validate checks that samples holds between 1 and MaxSamples finite values.
func (a *Analyzer) Validate(samples []float64) error {
	n := len(samples)
	if n == 0 {
		return ErrEmptySeries
	}
	if n > a.cfg.MaxSamples {
		return fmt.Errorf("%w: %d > %d", ErrTooManySamples, n, a.cfg.MaxSamples)
	}
	for i, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
	}
	return nil
}

// Analyze validates samples and computes their Summary.
func (a *Analyzer) Analyze(samples []float64) (Summary, error) {
	if err := a.Validate(samples); err != nil {
		return Summary{}, err
	}

	minVal, maxVal := samples[0], samples[0]
	var minPos, maxPos int
	for i, x := range samples[1:] {
		if x < minVal {
			minVal = x
			minPos = i + 1
		}
		if x > maxVal {
			maxVal = x
			maxPos = i + 1
		}
	}

	return Summary{
		Length:     len(samples),
		Min:        minVal,
		MinPos:     minPos,
		Max:        maxVal,
		MaxPos:     maxPos,
		PeakToPeak: maxVal - minVal,
		RMS:        RMS(samples),
	}, nil
}

// Analyze summarizes samples using the default length cap.
func Analyze(samples []float64) (Summary, error) {
	return NewAnalyzer().Analyze(samples)
}

// RMS returns the root-mean-square of the signal, or 0 for an empty signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(energy(signal) / float64(len(signal)))
}

// energy returns the sum of squares of signal.
func energy(signal []float64) float64 {
	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)

	var sum float64
	for _, v := range sq {
		sum += v
	}

	return sum
}
