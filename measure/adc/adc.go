// Package adc models an ideal analog-to-digital converter reading and the
// linear placeholder temperature sensor used by the toolkit.
package adc

// Error is a constant error value of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidResolution = Error("adc resolution must be positive")
	ErrCodeOutOfRange    = Error("adc code outside [0, resolution]")
	ErrInvalidReference  = Error("reference voltage must be positive")
)

// Resolution10Bit is the full-scale code of a 10-bit converter.
const Resolution10Bit = 1023

// DegreesPerVolt is the slope of the placeholder temperature model.
// It is not a calibrated sensor curve.
const DegreesPerVolt = 100.0

// MaxCode returns the full-scale code 2^bits - 1.
func MaxCode(bits uint) int {
	return int(1<<bits) - 1
}

// ToVoltage converts a raw code to volts: code/resolution * vref.
func ToVoltage(code, resolution int, vref float64) float64 {
	return (float64(code) / float64(resolution)) * vref
}

// VoltageToTemperature applies the linear model T = v * 100.
func VoltageToTemperature(v float64) float64 {
	return v * DegreesPerVolt
}

// Reading is a raw converter code together with its scale.
type Reading struct {
	Code       int
	Resolution int
	VRef       float64
}

// Validate checks the reading against its own resolution and reference.
func (r Reading) Validate() error {
	if r.Resolution <= 0 {
		return ErrInvalidResolution
	}
	if r.Code < 0 || r.Code > r.Resolution {
		return ErrCodeOutOfRange
	}
	if !(r.VRef > 0) {
		return ErrInvalidReference
	}
	return nil
}

// Voltage returns the input voltage the code represents.
func (r Reading) Voltage() float64 {
	return ToVoltage(r.Code, r.Resolution, r.VRef)
}

// Temperature returns the modelled temperature in degrees Celsius.
func (r Reading) Temperature() float64 {
	return VoltageToTemperature(r.Voltage())
}
