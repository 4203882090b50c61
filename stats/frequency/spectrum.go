package frequency

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// MinFFTSize is the smallest transform used for short series.
const MinFFTSize = 8

// ErrEmptySignal is returned when there is nothing to transform.
var ErrEmptySignal = errors.New("signal is empty")

// FFTSize returns the power-of-two transform length used for n samples.
func FFTSize(n int) int {
	size := MinFFTSize
	for size < n {
		size <<= 1
	}
	return size
}

// MagnitudeSpectrum zero-pads signal to FFTSize(len(signal)) and returns the
// one-sided magnitude spectrum |X[k]| for k = 0..size/2.
func MagnitudeSpectrum(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	size := FFTSize(len(signal))
	in := make([]complex128, size)
	for i, x := range signal {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fft plan %d: %w", size, err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Peak returns the bin with the largest magnitude. The DC bin is skipped
// whenever the spectrum has other bins; ties keep the lowest bin.
func Peak(magnitude []float64) (bin int, value float64) {
	if len(magnitude) == 0 {
		return 0, 0
	}

	start := 0
	if len(magnitude) > 1 {
		start = 1
	}

	bin, value = start, magnitude[start]
	for k := start + 1; k < len(magnitude); k++ {
		if magnitude[k] > value {
			bin, value = k, magnitude[k]
		}
	}
	return bin, value
}

// BinFrequency returns the frequency of bin k for a transform of fftSize
// points at sampleRate.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}
