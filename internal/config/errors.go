package config

import "errors"

// Validation errors returned by [CLIConfig.validate] and
// [StructuredConfig.validate] when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings (for
	// example, a missing RPC URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty credentials directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative verbosity).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrHomeDirUnavailable indicates that no home directory was configured
	// and the current user's one could not be determined.
	ErrHomeDirUnavailable = errors.New("unable to determine home directory")
)
