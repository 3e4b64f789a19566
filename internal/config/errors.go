package config

import "errors"

// Validation errors returned by the role-specific config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, empty files-index DSN, missing blob directory, or an
	// unsupported in-memory history DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or admin API secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid inbound transport settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMediaConfigs indicates invalid picker directory settings.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a retention age with no run interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
