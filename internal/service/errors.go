package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrConfiguration  = errors.New("configuration error")
	ErrNotFound       = errors.New("not found")
)

// InvalidProfileError lists the input fields that failed validation.
type InvalidProfileError struct {
	Fields []string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidProfile, strings.Join(e.Fields, "; "))
}

func (e *InvalidProfileError) Unwrap() error {
	return ErrInvalidProfile
}

// ConfigurationError means the static food or template tables are
// inconsistent. It is a programming error, never a user input problem.
type ConfigurationError struct {
	What string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.What)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{What: fmt.Sprintf(format, args...)}
}
