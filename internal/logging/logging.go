// Package logging configures the zerolog logger used for diagnostics.
// Diagnostics go to stderr so they never mix with the console transcript.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps the interactive session quiet unless something fails.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the named level
// ("debug", "info", "warn", ...). An empty level means DefaultLevel.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
