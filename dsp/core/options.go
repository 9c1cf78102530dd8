package core

// ProcessorConfig defines settings shared by signal sources and spectrum helpers.
type ProcessorConfig struct {
	// SampleRate in Hz. Spectrum bin k maps to k*SampleRate/N.
	SampleRate float64
	// Amplitude scales generated signals.
	Amplitude float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a unit-rate, unit-amplitude configuration.
// With SampleRate 1 bin frequencies read as cycles per sample.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1,
		Amplitude:  1,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithAmplitude sets the amplitude of generated signals.
func WithAmplitude(amplitude float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if amplitude >= 0 {
			cfg.Amplitude = amplitude
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
