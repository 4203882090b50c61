// Command elecbench is an interactive console toolkit for everyday
// electronics calculations.
//
// Usage:
//
//	elecbench [flags]
//	elecbench colors
//
// Settings come from flags, ELEC_* environment variables and an optional
// .elecbench.env file in the working directory.
//
// Examples:
//
//	elecbench
//	elecbench --results-file lab.txt --max-samples 256
//	ELEC_ADC_BITS=12 elecbench
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-elec/component/resistor"
	"github.com/cwbudde/algo-elec/internal/app"
	"github.com/cwbudde/algo-elec/internal/config"
	"github.com/cwbudde/algo-elec/internal/logging"
	"github.com/cwbudde/algo-elec/internal/prompt"
)

// errInputClosed is reported after the "Input error." message so main
// exits with status 1 without printing it twice.
var errInputClosed = errors.New("input closed")

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elecbench",
		Short: "Interactive electronics calculator",
		Long: `elecbench runs a menu-driven toolkit for electronics calculations:

  signal analyser   min, max, peak-to-peak, RMS, bar graph, spectrum peak
  ADC converter     code to voltage and temperature
  RC filter         solve R or C for a cutoff frequency
  unit converter    dBm/mW, Hz/rad/s, peak/RMS
  resistor code     4-band colour code decoder
  helper            explanations, quiz and saved results`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, errOut)
			if err != nil {
				return err
			}
			log.Debug().
				Str("results_file", cfg.ResultsFile).
				Int("max_samples", cfg.MaxSamples).
				Int("adc_bits", cfg.ADCBits).
				Msg("starting")

			err = app.New(cfg, in, out, log).Run()
			if errors.Is(err, prompt.ErrInputClosed) {
				fmt.Fprintln(out, "Input error.")
				return errInputClosed
			}
			return err
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newColorsCmd())
	return cmd
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the resistor band colors and their roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printColors(cmd.OutOrStdout(), resistor.Standard())
		},
	}
}

func printColors(w io.Writer, table *resistor.ColorTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Color\tDigit\tMultiplier\tTolerance")
	for _, c := range table.Colors() {
		digit, mult, tol := "-", "-", "-"
		if c.HasDigit {
			digit = strconv.Itoa(c.Digit)
		}
		if c.HasMultiplier {
			mult = "×" + strconv.FormatFloat(c.Multiplier, 'g', -1, 64)
		}
		if c.Tolerance != "" {
			tol = c.Tolerance
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, digit, mult, tol)
	}
	return tw.Flush()
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInputClosed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
