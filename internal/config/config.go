// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "STOREFRONT_"

// StructuredConfig is the top-level runtime configuration container. It is
// populated by merging values from environment variables, an optional
// JSON/YAML file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the addresses and limits used to reach the hosted
	// configuration document and the contents API.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local key/value storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Secrets holds the optional Secret Manager location of the write token.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds library-level behaviour settings.
	App App `envPrefix:"APP_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: STOREFRONT_CONFIG
	FilePath string `env:"CONFIG"`
}

// Remote holds settings of the remote configuration host.
type Remote struct {
	// RawBaseURL is the raw-content host serving the configuration file.
	// Env: STOREFRONT_REMOTE_RAW_BASE_URL
	RawBaseURL string `env:"RAW_BASE_URL"`

	// APIBaseURL is the contents API host used for writes.
	// Env: STOREFRONT_REMOTE_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// Owner, Repo and Branch address the fallback document used when no
	// credentials are stored locally.
	Owner  string `env:"OWNER"`
	Repo   string `env:"REPO"`
	Branch string `env:"BRANCH"`

	// FilePath is the path of the configuration file inside the repository.
	// Env: STOREFRONT_REMOTE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// RequestTimeout bounds every outbound request.
	// Env: STOREFRONT_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// APIRate is the number of contents API calls allowed per second and
	// APIBurst the bucket size.
	APIRate  float64 `env:"API_RATE"`
	APIBurst int     `env:"API_BURST"`

	// UserAgent is sent with every request.
	UserAgent string `env:"USER_AGENT"`

	// ChromeTLS switches the HTTP client to a Chrome TLS fingerprint.
	// Env: STOREFRONT_REMOTE_CHROME_TLS
	ChromeTLS bool `env:"CHROME_TLS"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DSN selects the backend: postgres:// or postgresql:// URLs use
	// PostgreSQL, anything else is a SQLite file path.
	// Env: STOREFRONT_STORAGE_DSN
	DSN string `env:"DSN"`
}

// Secrets points at a Secret Manager secret holding the contents API token.
// Both fields must be set for the secret to be used.
type Secrets struct {
	// GCPProject is the Google Cloud project id.
	GCPProject string `env:"GCP_PROJECT"`
	// TokenSecret is the secret name (not the full resource path).
	TokenSecret string `env:"TOKEN_SECRET"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the refresh job re-resolves the
	// configuration. Zero disables the job.
	// Env: STOREFRONT_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// App holds library-level behaviour settings.
type App struct {
	// CommitMessagePrefix starts every commit message written by remote
	// saves. A timestamp is appended.
	CommitMessagePrefix string `env:"COMMIT_MESSAGE_PREFIX"`

	// TimeZone is the IANA zone used to format commit timestamps.
	TimeZone string `env:"TIME_ZONE"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`
}

// Default returns the built-in settings. They point the remote read at the
// placeholder repository username/repo on branch main.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			RawBaseURL:     "https://raw.githubusercontent.com",
			APIBaseURL:     "https://api.github.com",
			Owner:          "username",
			Repo:           "repo",
			Branch:         "main",
			FilePath:       "config.json",
			RequestTimeout: 10 * time.Second,
			APIRate:        1,
			APIBurst:       5,
			UserAgent:      "storefront-config",
		},
		Storage: Storage{
			DSN: "storefront.db",
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
		App: App{
			CommitMessagePrefix: "Mise à jour des paramètres du magasin",
			TimeZone:            "Local",
			LogLevel:            "info",
		},
	}
}

// GetStructuredConfig merges environment variables, the optional config file
// and the defaults into a single [StructuredConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile().
		withDefaults().
		build()
}
