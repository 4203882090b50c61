package time

// DefaultMaxSamples is the largest series accepted when no option overrides it.
const DefaultMaxSamples = 100

// Config defines the limits applied by an [Analyzer].
type Config struct {
	MaxSamples int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the limits used by the package-level functions.
func DefaultConfig() Config {
	return Config{
		MaxSamples: DefaultMaxSamples,
	}
}

// WithMaxSamples sets the series length cap. Non-positive values are ignored.
func WithMaxSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxSamples = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
