package results

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLines(t *testing.T) {
	tests := []struct {
		rec  Record
		kind Kind
		want string
	}{
		{
			rec:  SignalRecord{Min: -1, Max: 1, PeakToPeak: 2, RMS: 1},
			kind: KindSignal,
			want: "SIGNAL mn=-1.0000 mx=1.0000 p2p=2.0000 rms=1.0000",
		},
		{
			rec:  ADCRecord{Code: 512, VRef: 5, Voltage: 2.50244379, Temperature: 250.244379},
			kind: KindADC,
			want: "ADC adc=512 vref=5.00 V=2.5024 T=250.24",
		},
		{
			rec:  ResistorRecord{Resistance: 47000, Tolerance: "±20%"},
			kind: KindResistor,
			want: "RES R=47000 tol=±20%",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.rec.Kind())
		assert.Equal(t, tt.want, tt.rec.Line())
	}
}

func TestFileLog_MissingFile(t *testing.T) {
	log := NewFileLog(filepath.Join(t.TempDir(), "results.txt"), zerolog.Nop())

	_, err := log.Contents()
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestFileLog_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	log := NewFileLog(path, zerolog.Nop())

	require.NoError(t, log.Save(ResistorRecord{Resistance: 22, Tolerance: "±5%"}))
	require.NoError(t, log.Save(SignalRecord{Min: 0, Max: 0.5, PeakToPeak: 0.5, RMS: 0.25}))

	// A second handle on the same file sees and extends the same log.
	again := NewFileLog(path, zerolog.Nop())
	require.NoError(t, again.Save(ADCRecord{Code: 0, VRef: 3.3}))

	got, err := log.Contents()
	require.NoError(t, err)
	assert.Equal(t,
		"RES R=22 tol=±5%\n"+
			"SIGNAL mn=0.0000 mx=0.5000 p2p=0.5000 rms=0.2500\n"+
			"ADC adc=0 vref=3.30 V=0.0000 T=0.00\n",
		got)
}

func TestFileLog_UnwritableDirectory(t *testing.T) {
	log := NewFileLog(filepath.Join(t.TempDir(), "missing", "results.txt"), zerolog.Nop())

	err := log.Save(ResistorRecord{Resistance: 1, Tolerance: "±1%"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open results log")
}

func TestNewFileLog_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileLog("", zerolog.Nop()).Path())
}
