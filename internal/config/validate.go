package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyPrefixes indicates that no comment marker is configured
	ErrEmptyPrefixes = errors.New("empty prefix list")

	// ErrInvalidOutputName indicates a missing or path-like report base name
	ErrInvalidOutputName = errors.New("invalid output file name")

	// ErrInvalidWorkers indicates a non-positive worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidIgnorePattern indicates an ignore glob that does not compile
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
)

// Validate checks that the configuration is valid and complete.
// An unknown output format is not an error: the report falls back to raw.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Prefixes) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one prefix required", ErrEmptyPrefixes))
	}
	for _, p := range cfg.Prefixes {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("%w: prefixes cannot be blank", ErrEmptyPrefixes))
			break
		}
	}

	if err := validateOutfile(&cfg.Outfile); err != nil {
		errs = append(errs, err)
	}

	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidWorkers, cfg.Workers))
	}

	for _, pattern := range cfg.IgnorePatterns {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidIgnorePattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateOutfile(cfg *OutfileConfig) error {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidOutputName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q must be a plain file name", ErrInvalidOutputName, cfg.Name)
	}
	return nil
}

// validationErrors keeps every failure reachable through errors.Is.
type validationErrors []error

func (v validationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

func (v validationErrors) Unwrap() []error {
	return v
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return validationErrors(errs)
}
