package getarg

import (
	"io"
	"log/slog"
)

type parseCfg struct {
	logger      *slog.Logger
	programName bool
}

type ParseOpt func(*parseCfg)

// WithLogger sets the logger Parse reports to at debug level. By default
// nothing is logged.
func WithLogger(logger *slog.Logger) ParseOpt {
	return func(c *parseCfg) {
		c.logger = logger
	}
}

// WithProgramName controls whether the first element of the input is the
// program name and should be skipped. Defaults to true, matching os.Args.
func WithProgramName(skip bool) ParseOpt {
	return func(c *parseCfg) {
		c.programName = skip
	}
}

func newParseCfg(opts []ParseOpt) *parseCfg {
	cfg := &parseCfg{programName: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
