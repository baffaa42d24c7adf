package cli

import "errors"

var (
	// ErrNoCommand is returned when neither a command nor --version or
	// --license is given.
	ErrNoCommand = errors.New("no command given")

	// ErrInvalidConfig wraps every failure to load or validate the
	// configuration or to build the components from it.
	ErrInvalidConfig = errors.New("invalid configuration")
)
