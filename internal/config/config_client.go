package config

import (
	"fmt"
	"time"
)

// ClientRemote holds network settings used by the remote adapter.
type ClientRemote struct {
	RawBaseURL string
	APIBaseURL string
	// Owner, Repo and Branch address the fallback remote document.
	Owner  string
	Repo   string
	Branch string
	// FilePath is the configuration file path inside the repository.
	FilePath string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
	APIRate        float64
	APIBurst       int
	UserAgent      string
	ChromeTLS      bool
}

// ClientStorage contains local storage connection settings.
type ClientStorage struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientSecrets locates the optional write token secret.
type ClientSecrets struct {
	GCPProject  string
	TokenSecret string
}

// Enabled reports whether a secret source is configured.
func (s ClientSecrets) Enabled() bool {
	return s.GCPProject != "" && s.TokenSecret != ""
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job runs. Zero disables it.
	RefreshInterval time.Duration
}

// ClientApp holds library behaviour settings in their parsed form.
type ClientApp struct {
	CommitMessagePrefix string
	Location            *time.Location
	LogLevel            string
}

// ClientConfig is the validated runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Remote  ClientRemote
	Storage ClientStorage
	Secrets ClientSecrets
	Workers ClientWorkers
	App     ClientApp
}

// GetClientConfig loads the merged structured configuration and converts it
// into a validated [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client()
}

// Client maps the structured configuration onto a [ClientConfig] and
// validates it.
func (cfg *StructuredConfig) Client() (*ClientConfig, error) {
	loc, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: time zone %q: %w", ErrInvalidAppConfigs, cfg.App.TimeZone, err)
	}

	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			RawBaseURL:     cfg.Remote.RawBaseURL,
			APIBaseURL:     cfg.Remote.APIBaseURL,
			Owner:          cfg.Remote.Owner,
			Repo:           cfg.Remote.Repo,
			Branch:         cfg.Remote.Branch,
			FilePath:       cfg.Remote.FilePath,
			RequestTimeout: cfg.Remote.RequestTimeout,
			APIRate:        cfg.Remote.APIRate,
			APIBurst:       cfg.Remote.APIBurst,
			UserAgent:      cfg.Remote.UserAgent,
			ChromeTLS:      cfg.Remote.ChromeTLS,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
		},
		Secrets: ClientSecrets{
			GCPProject:  cfg.Secrets.GCPProject,
			TokenSecret: cfg.Secrets.TokenSecret,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		App: ClientApp{
			CommitMessagePrefix: cfg.App.CommitMessagePrefix,
			Location:            loc,
			LogLevel:            cfg.App.LogLevel,
		},
	}

	return clientCfg, clientCfg.validate()
}
