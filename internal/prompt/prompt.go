// Package prompt reads validated scalar values from a line-oriented console.
//
// Every read consumes exactly one input line, so trailing garbage after a
// value is discarded instead of leaking into the next prompt. Invalid input
// is answered with a short message and the prompt is repeated until a valid
// value arrives; there is no retry limit.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before a valid
// value was read.
var ErrInputClosed = errors.New("input closed")

const (
	msgNotNumber = "Enter a number."
	msgInvalid   = "Invalid."
)

// Reader prompts on out and reads answers from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader over in and out.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts are printed to.
func (r *Reader) Out() io.Writer {
	return r.out
}

// Line prints prompt and returns the next input line without its line
// terminator. A final line without newline is still returned.
func (r *Reader) Line(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Int reads an integer in [min, max].
func (r *Reader) Int(prompt string, min, max int) (int, error) {
	for {
		line, err := r.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(r.out, msgNotNumber)
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(r.out, "Must be %d to %d.\n", min, max)
			continue
		}
		return v, nil
	}
}

// Float reads any finite real number.
func (r *Reader) Float(prompt string) (float64, error) {
	return r.float(prompt, func(float64) bool { return true })
}

// PositiveFloat reads a finite real number greater than zero.
func (r *Reader) PositiveFloat(prompt string) (float64, error) {
	return r.float(prompt, func(v float64) bool { return v > 0 })
}

func (r *Reader) float(prompt string, accept func(float64) bool) (float64, error) {
	for {
		line, err := r.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || !accept(v) {
			fmt.Fprintln(r.out, msgInvalid)
			continue
		}
		return v, nil
	}
}

// Token reads one line, trimmed and lowercased, for case-insensitive
// lookups. An empty line yields an empty token.
func (r *Reader) Token(prompt string) (string, error) {
	line, err := r.Line(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Confirm reads one line and reports whether it starts with y or Y.
func (r *Reader) Confirm(prompt string) (bool, error) {
	line, err := r.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(line, "y") || strings.HasPrefix(line, "Y"), nil
}
