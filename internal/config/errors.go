package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates invalid attachment vault settings
	// (for example, a missing master key).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidSecurityConfigs indicates missing engine secrets
	// (for example, no verification hash key).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidAuthConfigs indicates invalid bearer-token settings
	// (for example, missing sign key or zero token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
