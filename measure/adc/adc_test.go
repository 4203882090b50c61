package adc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxCode(t *testing.T) {
	assert.Equal(t, Resolution10Bit, MaxCode(10))
	assert.Equal(t, 255, MaxCode(8))
	assert.Equal(t, 4095, MaxCode(12))
}

func TestToVoltage(t *testing.T) {
	v := ToVoltage(512, Resolution10Bit, 5.0)
	assert.InDelta(t, 2.503, v, 1e-3)
	assert.InDelta(t, 250.3, VoltageToTemperature(2.503), 1e-9)

	assert.Zero(t, ToVoltage(0, Resolution10Bit, 3.3))
	assert.InDelta(t, 3.3, ToVoltage(Resolution10Bit, Resolution10Bit, 3.3), 1e-12)
}

func TestVoltageToTemperatureIsLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 3.3, 5} {
		assert.InDelta(t, v*100, VoltageToTemperature(v), 1e-12)
	}
}

func TestReading(t *testing.T) {
	r := Reading{Code: 512, Resolution: Resolution10Bit, VRef: 5}
	require.NoError(t, r.Validate())
	assert.InDelta(t, 2.5024, r.Voltage(), 1e-4)
	assert.InDelta(t, 250.24, r.Temperature(), 1e-2)
}

func TestReadingValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Reading
		want error
	}{
		{name: "zero resolution", r: Reading{Code: 0, Resolution: 0, VRef: 5}, want: ErrInvalidResolution},
		{name: "negative code", r: Reading{Code: -1, Resolution: 1023, VRef: 5}, want: ErrCodeOutOfRange},
		{name: "code above full scale", r: Reading{Code: 1024, Resolution: 1023, VRef: 5}, want: ErrCodeOutOfRange},
		{name: "zero reference", r: Reading{Code: 1, Resolution: 1023, VRef: 0}, want: ErrInvalidReference},
		{name: "nan reference", r: Reading{Code: 1, Resolution: 1023, VRef: math.NaN()}, want: ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.r.Validate(), tt.want)
		})
	}
}
