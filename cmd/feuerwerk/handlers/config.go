package handlers

import (
	"fmt"

	"github.com/imamik/feuerwerk/internal/config"
	"github.com/imamik/feuerwerk/internal/runner"
)

// loadConfig resolves file, environment and flags, then validates the result.
var loadConfig = func(path string, applyFlags func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if applyFlags != nil {
		applyFlags(cfg)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fatal(err error) error {
	return &ExitError{Code: runner.ExitFatal, Err: err}
}
