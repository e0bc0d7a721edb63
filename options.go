package notesheet

import "log/slog"

// ParseOption configures parsing behavior.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives parse warnings.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(cfg *parseConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
