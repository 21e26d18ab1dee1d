package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote host settings
	// (for example, a base URL without scheme or a zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown time zone or log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSecretsConfigs indicates a half-configured secret source.
	ErrInvalidSecretsConfigs = errors.New("invalid secrets configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
