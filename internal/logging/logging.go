// Package logging builds the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New constructs the logger: console development output when verbose, JSON
// production output at info level otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build()
}
