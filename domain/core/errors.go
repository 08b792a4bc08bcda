package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors: reported before any file is touched
	ErrSourceDir     = errors.New("invalid source directory")
	ErrOutputPath    = errors.New("invalid output path")
	ErrUnknownPolicy = errors.New("unknown consolidation policy")

	// Processing errors
	ErrDecode      = errors.New("workbook decode failed")
	ErrEmptyResult = errors.New("merged table contains no rows")
)

// Error constructors with context
func NewSourceDirError(path string, reason string) error {
	return fmt.Errorf("%w: %q (%s)", ErrSourceDir, path, reason)
}

func NewDecodeError(file string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecode, file, err)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrSourceDir) ||
		errors.Is(err, ErrOutputPath) ||
		errors.Is(err, ErrUnknownPolicy)
}

func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}
