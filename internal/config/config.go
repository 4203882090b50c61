// Package config loads toolkit settings from defaults, an optional env-style
// file, ELEC_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ELEC_MAX_SAMPLES.
const EnvPrefix = "ELEC"

// Keys understood by Load.
const (
	KeyResultsFile = "results_file"
	KeyMaxSamples  = "max_samples"
	KeyADCBits     = "adc_bits"
	KeyLogLevel    = "log_level"
)

// Default values. They reproduce the classic console behavior.
const (
	DefaultResultsFile = "results.txt"
	DefaultMaxSamples  = 100
	DefaultADCBits     = 10
	DefaultLogLevel    = "warn"
	defaultConfigName  = ".elecbench"
	maxADCBits         = 24
)

// flag name → config key
var flagKeys = map[string]string{
	"results-file": KeyResultsFile,
	"max-samples":  KeyMaxSamples,
	"adc-bits":     KeyADCBits,
	"log-level":    KeyLogLevel,
}

// Config holds all settings of the toolkit.
type Config struct {
	ResultsFile string
	MaxSamples  int
	ADCBits     int
	LogLevel    string
}

// RegisterFlags defines the command-line flags read by Load.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "settings file (default ./"+defaultConfigName+".env if present)")
	fs.String("results-file", DefaultResultsFile, "file that saved results are appended to")
	fs.Int("max-samples", DefaultMaxSamples, "largest sample series accepted by the signal analyzer")
	fs.Int("adc-bits", DefaultADCBits, "ADC resolution in bits")
	fs.String("log-level", DefaultLogLevel, "diagnostic log level (debug, info, warn, error)")
}

// Load resolves the configuration. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyResultsFile, DefaultResultsFile)
	v.SetDefault(KeyMaxSamples, DefaultMaxSamples)
	v.SetDefault(KeyADCBits, DefaultADCBits)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	var configFile string
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}
	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		ResultsFile: v.GetString(KeyResultsFile),
		MaxSamples:  v.GetInt(KeyMaxSamples),
		ADCBits:     v.GetInt(KeyADCBits),
		LogLevel:    v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readConfigFile reads an explicit file, which must exist, or the optional
// .elecbench.env in the working directory.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Validate rejects settings the toolkit cannot run with.
func (c *Config) Validate() error {
	if c.ResultsFile == "" {
		return errors.New("config: results file must not be empty")
	}
	if c.MaxSamples < 1 {
		return fmt.Errorf("config: max samples must be at least 1, got %d", c.MaxSamples)
	}
	if c.ADCBits < 1 || c.ADCBits > maxADCBits {
		return fmt.Errorf("config: adc bits must be 1..%d, got %d", maxADCBits, c.ADCBits)
	}
	return nil
}
