package configuration

import "errors"

var (
	// ErrInvalidValue is an error that occurs when a configuration value
	// cannot be parsed into the type of its key.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrInvalidConfig is an error that occurs when the configuration as a
	// whole does not pass validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigExists is an error that occurs when a configuration template
	// is to be written, but a file already exists at its location.
	ErrConfigExists = errors.New("configuration file already exists")
)
