package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-elec/internal/config"
	"github.com/cwbudde/algo-elec/internal/prompt"
	"github.com/cwbudde/algo-elec/internal/results"
)

type session struct {
	out     string
	err     error
	logPath string
}

func (s session) saved(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(s.logPath)
	require.NoError(t, err)
	return string(data)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ResultsFile: filepath.Join(t.TempDir(), "results.txt"),
		MaxSamples:  config.DefaultMaxSamples,
		ADCBits:     config.DefaultADCBits,
		LogLevel:    config.DefaultLogLevel,
	}
}

func run(t *testing.T, cfg *config.Config, lines ...string) session {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	err := New(cfg, strings.NewReader(input), &out, zerolog.Nop()).Run()
	return session{out: out.String(), err: err, logPath: cfg.ResultsFile}
}

func TestRun_ExitAndEOF(t *testing.T) {
	s := run(t, testConfig(t), "7")
	require.NoError(t, s.err)
	assert.Contains(t, s.out, "Main Menu")
	assert.Contains(t, s.out, " 5. Resistor colour code calculator\n")
	assert.Contains(t, s.out, " 7. Exit\n")
	assert.True(t, strings.HasSuffix(s.out, "Bye!\n"))

	var out bytes.Buffer
	err := New(testConfig(t), strings.NewReader(""), &out, zerolog.Nop()).Run()
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestRun_MenuRetries(t *testing.T) {
	s := run(t, testConfig(t), "x", "9", "7")
	require.NoError(t, s.err)
	assert.Contains(t, s.out, "Enter a number.")
	assert.Contains(t, s.out, "Must be 1 to 7.")
	assert.Contains(t, s.out, "Bye!")
}

func TestRun_BackRequiresLoneB(t *testing.T) {
	s := run(t, testConfig(t), "3", "1000", "1", "1000", "back", "", "B", "7")
	require.NoError(t, s.err)
	assert.Equal(t, 3, strings.Count(s.out, "Enter 'b' to go back: "))
}

func TestSignal(t *testing.T) {
	s := run(t, testConfig(t), "1", "2", "1", "oops", "-1", "y", "b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "Enter 2 samples:\n")
	assert.Contains(t, s.out, "Invalid.\n")
	assert.Contains(t, s.out, "Min = -1.0000\nMax = 1.0000\nP2P = 2.0000\nRMS = 1.0000\n")
	assert.Contains(t, s.out, "Graph:\n 1: |||||||||| (1.000)\n 2: |||||||||| (-1.000)\n")
	assert.Contains(t, s.out, "Spectrum peak: bin ")
	assert.Contains(t, s.out, "Saved.")
	assert.Equal(t, "SIGNAL mn=-1.0000 mx=1.0000 p2p=2.0000 rms=1.0000\n", s.saved(t))
}

func TestSignal_SampleCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxSamples = 3

	s := run(t, cfg, "1", "5", "1", "4", "n", "b", "7")
	require.NoError(t, s.err)
	assert.Contains(t, s.out, "Must be 1 to 3.")
	assert.Contains(t, s.out, "RMS = 4.0000")
	assert.NotContains(t, s.out, "Saved.")
	assert.NoFileExists(t, s.logPath)
}

func TestADC(t *testing.T) {
	s := run(t, testConfig(t), "2", "-5", "5", "2000", "512", "y", "b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "Must be 0 to 1023.")
	assert.Contains(t, s.out, "Voltage = 2.5024 V\n")
	assert.Contains(t, s.out, "Temp ≈ 250.24 C\n")
	assert.Equal(t, "ADC adc=512 vref=5.00 V=2.5024 T=250.24\n", s.saved(t))
}

func TestADC_ConfiguredResolution(t *testing.T) {
	cfg := testConfig(t)
	cfg.ADCBits = 12

	s := run(t, cfg, "2", "3.3", "4095", "n", "b", "7")
	require.NoError(t, s.err)
	assert.Contains(t, s.out, "Voltage = 3.3000 V\n")
}

func TestRCFilter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "solve C", lines: []string{"3", "1000", "1", "1000"}, want: "C ≈ 0.000000159 F\n"},
		{name: "solve R", lines: []string{"3", "1000", "2", "0.000001"}, want: "R ≈ 159.15 Ω\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(t, testConfig(t), append(tt.lines, "b", "7")...)
			require.NoError(t, s.err)
			assert.Contains(t, s.out, "fc = 1/(2*pi*R*C)\n")
			assert.Contains(t, s.out, tt.want)
		})
	}
}

func TestUnitConverter(t *testing.T) {
	s := run(t, testConfig(t),
		"4",
		"1", "0",
		"2", "0",
		"2", "10",
		"3", "1",
		"0",
		"b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "1) dBm → mW\n")
	assert.Contains(t, s.out, "0) Back\n")
	assert.Contains(t, s.out, "= 1.000000 mW\n")
	assert.Contains(t, s.out, "Power must be > 0.\n")
	assert.Contains(t, s.out, "= 10.0000 dBm\n")
	assert.Contains(t, s.out, "= 6.283185 rad/s\n")
	assert.Equal(t, 5, strings.Count(s.out, "Unit Converter"))
}

func TestResistorCode(t *testing.T) {
	s := run(t, testConfig(t), "5", "Yellow", " violet ", "orange", "none", "y", "b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "R = 47000 ohms\n")
	assert.Contains(t, s.out, "≈ 47.000 kΩ\n")
	assert.Contains(t, s.out, "Tolerance: ±20%\n")
	assert.Equal(t, "RES R=47000 tol=±20%\n", s.saved(t))
}

func TestResistorCode_InvalidBands(t *testing.T) {
	tests := []struct {
		name  string
		bands []string
		want  string
	}{
		{name: "gold digit", bands: []string{"gold", "red", "red", "gold"}, want: "Invalid digit.\n"},
		{name: "unknown second digit", bands: []string{"red", "pink", "red", "gold"}, want: "Invalid digit.\n"},
		{name: "unknown multiplier", bands: []string{"red", "red", "pink", "gold"}, want: "Invalid multiplier.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"5"}, tt.bands...)
			s := run(t, testConfig(t), append(lines, "b", "7")...)
			require.NoError(t, s.err)
			assert.Contains(t, s.out, tt.want)
			assert.NotContains(t, s.out, "Save? (y/n)")
		})
	}
}

func TestHelper(t *testing.T) {
	s := run(t, testConfig(t), "6", "3", "1", "2", "2", "1", "2", "0", "b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "No results yet.\n")
	assert.Contains(t, s.out, "RC Filter:\n fc = 1/(2*pi*R*C)\n")
	assert.Equal(t, 2, strings.Count(s.out, "Correct.\n"))
	assert.Equal(t, 1, strings.Count(s.out, "Wrong.\n"))
	assert.Contains(t, s.out, "Score: 2/3\n")
}

func TestHelper_ViewSavedResults(t *testing.T) {
	cfg := testConfig(t)
	s := run(t, cfg, "5", "red", "red", "black", "gold", "y", "b", "6", "3", "0", "b", "7")
	require.NoError(t, s.err)

	assert.Contains(t, s.out, "≈ 22.000 Ω\n")
	assert.Contains(t, s.out, "Results:\nRES R=22 tol=±5%\n")
}

type failingStore struct{}

func (failingStore) Save(results.Record) error { return errors.New("disk full") }

func (failingStore) Contents() (string, error) { return "", errors.New("disk gone") }

func TestSaveFailureKeepsSession(t *testing.T) {
	var out bytes.Buffer
	input := strings.Join([]string{"2", "5", "0", "y", "b", "6", "3", "0", "b", "7"}, "\n") + "\n"

	err := NewWithStore(testConfig(t), strings.NewReader(input), &out, zerolog.Nop(), failingStore{}).Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Could not save.\n")
	assert.Contains(t, out.String(), "Could not read results.\n")
	assert.Contains(t, out.String(), "Bye!")
}
