package app

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-elec/component/resistor"
	"github.com/cwbudde/algo-elec/dsp/filter/rc"
	"github.com/cwbudde/algo-elec/internal/results"
	"github.com/cwbudde/algo-elec/internal/tutor"
	"github.com/cwbudde/algo-elec/measure/adc"
	"github.com/cwbudde/algo-elec/stats/frequency"
	stime "github.com/cwbudde/algo-elec/stats/time"
	"github.com/cwbudde/algo-elec/units"
)

func (a *App) signal() error {
	a.heading("Signal Analyser")

	n, err := a.in.Int("How many samples: ", 1, a.analyzer.MaxSamples())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Enter %d samples:\n", n)
	samples := make([]float64, 0, n)
	for range n {
		x, err := a.in.Float("")
		if err != nil {
			return err
		}
		samples = append(samples, x)
	}

	sum, err := a.analyzer.Analyze(samples)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Fprintf(a.out, "\nMin = %.4f\n", sum.Min)
	fmt.Fprintf(a.out, "Max = %.4f\n", sum.Max)
	fmt.Fprintf(a.out, "P2P = %.4f\n", sum.PeakToPeak)
	fmt.Fprintf(a.out, "RMS = %.4f\n", sum.RMS)

	fmt.Fprintln(a.out, "\nGraph:")
	for _, line := range stime.BarGraph(samples) {
		fmt.Fprintln(a.out, line)
	}

	if mag, err := frequency.MagnitudeSpectrum(samples); err != nil {
		a.log.Warn().Err(err).Msg("spectrum unavailable")
	} else {
		bin, value := frequency.Peak(mag)
		fmt.Fprintf(a.out, "\nSpectrum peak: bin %d of %d, |X| = %.4f\n", bin, len(mag)-1, value)
	}

	return a.offerSave(results.SignalRecord{
		Min:        sum.Min,
		Max:        sum.Max,
		PeakToPeak: sum.PeakToPeak,
		RMS:        sum.RMS,
	})
}

func (a *App) adcConverter() error {
	a.heading("ADC Converter")

	vref, err := a.in.PositiveFloat("Reference voltage: ")
	if err != nil {
		return err
	}
	code, err := a.in.Int("ADC reading: ", 0, a.adcRes)
	if err != nil {
		return err
	}

	reading := adc.Reading{Code: code, Resolution: a.adcRes, VRef: vref}
	if err := reading.Validate(); err != nil {
		a.log.Warn().Err(err).Int("code", code).Msg("rejected adc reading")
		fmt.Fprintln(a.out, "Invalid.")
		return nil
	}

	v := reading.Voltage()
	t := reading.Temperature()
	fmt.Fprintf(a.out, "Voltage = %.4f V\n", v)
	fmt.Fprintf(a.out, "Temp ≈ %.2f C\n", t)

	return a.offerSave(results.ADCRecord{Code: code, VRef: vref, Voltage: v, Temperature: t})
}

func (a *App) rcFilter() error {
	a.heading("RC Filter")
	fmt.Fprintln(a.out, "fc = 1/(2*pi*R*C)")

	fc, err := a.in.PositiveFloat("Cutoff (Hz): ")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "1) Enter R, solve C")
	fmt.Fprintln(a.out, "2) Enter C, solve R")
	mode, err := a.in.Int("Select: ", 1, 2)
	if err != nil {
		return err
	}

	filter := rc.Spec{Cutoff: fc}
	if mode == 1 {
		if filter.R, err = a.in.PositiveFloat("R (ohms): "); err != nil {
			return err
		}
	} else {
		if filter.C, err = a.in.PositiveFloat("C (farads): "); err != nil {
			return err
		}
	}

	solved, err := filter.Solve()
	if err != nil {
		a.log.Warn().Err(err).Msg("rc solve failed")
		fmt.Fprintln(a.out, "Invalid.")
		return nil
	}

	if mode == 1 {
		fmt.Fprintf(a.out, "C ≈ %.9f F\n", solved.C)
	} else {
		fmt.Fprintf(a.out, "R ≈ %.2f Ω\n", solved.R)
	}
	return nil
}

func (a *App) unitConverter() error {
	all := units.All()
	for {
		a.heading("Unit Converter")
		for _, c := range all {
			fmt.Fprintf(a.out, "%d) %s\n", int(c), c)
		}
		fmt.Fprintln(a.out, "0) Back")

		choice, err := a.in.Int("Select: ", 0, len(all))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		c := units.Conversion(choice)
		x, err := a.in.Float("Value: ")
		if err != nil {
			return err
		}

		v, err := units.Convert(c, x)
		switch {
		case errors.Is(err, units.ErrInvalidDomain):
			a.log.Debug().Err(err).Float64("value", x).Msg("conversion rejected")
			fmt.Fprintln(a.out, "Power must be > 0.")
		case err != nil:
			return err
		default:
			fmt.Fprintln(a.out, c.Format(v))
		}
	}
}

func (a *App) resistorCode() error {
	a.heading("Resistor Colour Code")

	var bands [4]string
	for i, p := range []string{"Band 1: ", "Band 2: ", "Multiplier: ", "Tolerance: "} {
		tok, err := a.in.Token(p)
		if err != nil {
			return err
		}
		bands[i] = tok
	}

	res, err := a.decoder.Decode(bands[0], bands[1], bands[2], bands[3])
	if err != nil {
		var be *resistor.BandError
		if !errors.As(err, &be) {
			return err
		}
		a.log.Debug().Err(err).Msg("resistor decode failed")
		if be.Band == resistor.BandMultiplier {
			fmt.Fprintln(a.out, "Invalid multiplier.")
		} else {
			fmt.Fprintln(a.out, "Invalid digit.")
		}
		return nil
	}

	fmt.Fprintf(a.out, "\nR = %.0f ohms\n", res.Resistance)
	fmt.Fprintf(a.out, "≈ %s\n", res.Display())
	fmt.Fprintf(a.out, "Tolerance: %s\n", res.Tolerance)

	return a.offerSave(results.ResistorRecord{Resistance: res.Resistance, Tolerance: res.Tolerance})
}

func (a *App) helper() error {
	for {
		a.heading("Helper")
		fmt.Fprintln(a.out, "1) Explanations")
		fmt.Fprintln(a.out, "2) Quiz")
		fmt.Fprintln(a.out, "3) View results")
		fmt.Fprintln(a.out, "0) Back")

		choice, err := a.in.Int("Select: ", 0, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			return nil
		case 1:
			tutor.Explain(a.out)
		case 2:
			score, err := tutor.Run(a.in, tutor.Quiz)
			if err != nil {
				return err
			}
			a.log.Debug().Int("score", score).Int("of", len(tutor.Quiz)).Msg("quiz finished")
		case 3:
			if err := a.viewResults(); err != nil {
				return err
			}
		}
	}
}

func (a *App) viewResults() error {
	text, err := a.store.Contents()
	if errors.Is(err, results.ErrNoResults) {
		fmt.Fprintln(a.out, "No results yet.")
		return nil
	}
	if err != nil {
		a.log.Warn().Err(err).Msg("cannot read results")
		fmt.Fprintln(a.out, "Could not read results.")
		return nil
	}

	fmt.Fprintln(a.out, "\nResults:")
	fmt.Fprint(a.out, text)
	return nil
}
