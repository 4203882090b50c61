// Package app runs the interactive menu and the tool sessions behind it.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-elec/component/resistor"
	"github.com/cwbudde/algo-elec/internal/config"
	"github.com/cwbudde/algo-elec/internal/prompt"
	"github.com/cwbudde/algo-elec/internal/results"
	"github.com/cwbudde/algo-elec/measure/adc"
	stime "github.com/cwbudde/algo-elec/stats/time"
)

// Store saves records and reads the saved log back.
type Store interface {
	results.Recorder
	Contents() (string, error)
}

// App holds everything a session needs. It is not safe for concurrent use.
type App struct {
	in       *prompt.Reader
	out      io.Writer
	log      zerolog.Logger
	store    Store
	analyzer *stime.Analyzer
	decoder  *resistor.Decoder
	adcRes   int
	styles   styles
}

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	rule    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		heading: r.NewStyle().Bold(true),
		rule:    r.NewStyle().Faint(true),
	}
}

// New builds an App reading from in and printing to out. Saved records go
// to a results log at cfg.ResultsFile.
func New(cfg *config.Config, in io.Reader, out io.Writer, log zerolog.Logger) *App {
	return NewWithStore(cfg, in, out, log, results.NewFileLog(cfg.ResultsFile, log))
}

// NewWithStore is like New but saves records to store.
func NewWithStore(cfg *config.Config, in io.Reader, out io.Writer, log zerolog.Logger, store Store) *App {
	return &App{
		in:       prompt.New(in, out),
		out:      out,
		log:      log,
		store:    store,
		analyzer: stime.NewAnalyzer(stime.WithMaxSamples(cfg.MaxSamples)),
		decoder:  resistor.NewDecoder(resistor.Standard()),
		adcRes:   adc.MaxCode(uint(cfg.ADCBits)),
		styles:   newStyles(out),
	}
}

type tool struct {
	label string
	run   func(*App) error
}

var tools = []tool{
	{label: "Signal analyser", run: (*App).signal},
	{label: "ADC converter", run: (*App).adcConverter},
	{label: "RC filter calculator", run: (*App).rcFilter},
	{label: "Unit converter", run: (*App).unitConverter},
	{label: "Resistor colour code calculator", run: (*App).resistorCode},
	{label: "Helper (explain & quiz)", run: (*App).helper},
}

// Run shows the main menu until the user picks Exit. It returns nil on
// Exit and prompt.ErrInputClosed when input ends first.
func (a *App) Run() error {
	exit := len(tools) + 1
	for {
		a.printMenu()

		choice, err := a.in.Int("\nSelect item: ", 1, exit)
		if err != nil {
			return err
		}
		if choice == exit {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		t := tools[choice-1]
		a.log.Debug().Str("tool", t.label).Msg("tool selected")
		if err := t.run(a); err != nil {
			return err
		}
		if err := a.waitBack(); err != nil {
			return err
		}
	}
}

func (a *App) printMenu() {
	rule := strings.Repeat("-", 33)
	fmt.Fprintf(a.out, "\n%s\n\n", a.styles.title.Render("----------- Main Menu -----------"))
	for i, t := range tools {
		fmt.Fprintf(a.out, " %d. %s\n", i+1, t.label)
	}
	fmt.Fprintf(a.out, " %d. Exit\n", len(tools)+1)
	fmt.Fprintln(a.out, a.styles.rule.Render(rule))
}

// waitBack blocks until the user enters a lone "b".
func (a *App) waitBack() error {
	for {
		line, err := a.in.Line("\nEnter 'b' to go back: ")
		if err != nil {
			return err
		}
		if line == "b" || line == "B" {
			return nil
		}
	}
}

func (a *App) heading(s string) {
	fmt.Fprintf(a.out, "\n%s\n", a.styles.heading.Render(s))
}

// offerSave asks before storing rec. A failed save is reported and logged
// but does not end the session.
func (a *App) offerSave(rec results.Record) error {
	ok, err := a.in.Confirm("\nSave? (y/n): ")
	if err != nil || !ok {
		return err
	}

	if err := a.store.Save(rec); err != nil {
		a.log.Warn().Err(err).Str("kind", string(rec.Kind())).Msg("save failed")
		fmt.Fprintln(a.out, "Could not save.")
		return nil
	}
	fmt.Fprintln(a.out, "Saved.")
	return nil
}
