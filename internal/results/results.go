// Package results appends calculation records to a human-readable log file
// and reads the file back for display.
package results

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// ErrNoResults is returned by [FileLog.Contents] when nothing was saved yet.
var ErrNoResults = errors.New("no results yet")

// DefaultPath is the log file used when no other path is configured.
const DefaultPath = "results.txt"

// Kind tags a record line.
type Kind string

const (
	KindSignal   Kind = "SIGNAL"
	KindADC      Kind = "ADC"
	KindResistor Kind = "RES"
)

// Record is one log line.
type Record interface {
	Kind() Kind
	Line() string
}

// SignalRecord stores a signal analyzer summary.
type SignalRecord struct {
	Min, Max, PeakToPeak, RMS float64
}

func (SignalRecord) Kind() Kind { return KindSignal }

func (r SignalRecord) Line() string {
	return fmt.Sprintf("%s mn=%.4f mx=%.4f p2p=%.4f rms=%.4f", KindSignal, r.Min, r.Max, r.PeakToPeak, r.RMS)
}

// ADCRecord stores an ADC conversion.
type ADCRecord struct {
	Code        int
	VRef        float64
	Voltage     float64
	Temperature float64
}

func (ADCRecord) Kind() Kind { return KindADC }

func (r ADCRecord) Line() string {
	return fmt.Sprintf("%s adc=%d vref=%.2f V=%.4f T=%.2f", KindADC, r.Code, r.VRef, r.Voltage, r.Temperature)
}

// ResistorRecord stores a decoded resistor.
type ResistorRecord struct {
	Resistance float64
	Tolerance  string
}

func (ResistorRecord) Kind() Kind { return KindResistor }

func (r ResistorRecord) Line() string {
	return fmt.Sprintf("%s R=%.0f tol=%s", KindResistor, r.Resistance, r.Tolerance)
}

// Recorder persists records.
type Recorder interface {
	Save(rec Record) error
}

// FileLog appends records to a text file. The file is opened, appended to
// and closed for every record, so nothing is buffered between saves.
type FileLog struct {
	path string
	log  zerolog.Logger
}

// NewFileLog returns a FileLog writing to path (DefaultPath when empty).
func NewFileLog(path string, log zerolog.Logger) *FileLog {
	if path == "" {
		path = DefaultPath
	}
	return &FileLog{path: path, log: log}
}

// Path returns the log file location.
func (f *FileLog) Path() string {
	return f.path
}

// Save appends rec as one line.
func (f *FileLog) Save(rec Record) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results log: %w", err)
	}

	if _, err := fmt.Fprintln(file, rec.Line()); err != nil {
		file.Close()
		return fmt.Errorf("append %s record: %w", rec.Kind(), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close results log: %w", err)
	}

	f.log.Debug().Str("kind", string(rec.Kind())).Str("path", f.path).Msg("record saved")
	return nil
}

// Contents returns the raw log file.
func (f *FileLog) Contents() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoResults
	}
	if err != nil {
		return "", fmt.Errorf("read results log: %w", err)
	}
	return string(data), nil
}
