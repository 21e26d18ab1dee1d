package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Ahcene43/WAW/internal/adapter"
	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/internal/secrets"
	"github.com/Ahcene43/WAW/internal/service"
	"github.com/Ahcene43/WAW/internal/store"
	"github.com/Ahcene43/WAW/internal/workers"
	"github.com/Ahcene43/WAW/models"
)

const logRole = "storefront-config"

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.Storages
	tokens   *secrets.SecretManagerProvider
	services *service.Services
	workers  *workers.Workers

	closeOnce sync.Once
	closeErr  error
}

// Option customises [NewApp].
type Option func(*options)

type options struct {
	cfg           *config.ClientConfig
	logger        *logger.Logger
	memoryStorage bool
}

// WithConfig uses cfg instead of loading the configuration from the
// environment and the config file.
func WithConfig(cfg *Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger replaces the default stdout logger.
func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMemoryStorage keeps local storage in memory instead of opening the
// configured database.
func WithMemoryStorage() Option {
	return func(o *options) { o.memoryStorage = true }
}

// NewApp builds the component graph. Nothing is fetched until
// [App.Init] or a call on [App.Resolver].
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.cfg
	if cfg == nil {
		var err error
		if cfg, err = config.GetClientConfig(); err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	log := o.logger
	if log == nil {
		var err error
		if log, err = logger.New(os.Stdout, logRole, cfg.App.LogLevel); err != nil {
			log.Warn().Err(err).Str("func", "NewApp").Msg("falling back to debug level")
		}
	}

	var (
		storages *store.Storages
		err      error
	)
	if o.memoryStorage {
		storages = store.NewMemoryStorages(log)
	} else if storages, err = store.NewStorages(ctx, cfg.Storage, log); err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	github, err := adapter.NewGitHubAdapter(cfg.Remote, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	provider, err := secrets.NewTokenProvider(ctx, cfg.Secrets, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create token provider: %w", err)
	}
	var tokens secrets.TokenProvider
	if provider != nil {
		tokens = provider
	}

	services := service.NewServices(storages, github, tokens, *cfg, log)

	jobs := workers.NewWorkers()
	if cfg.Workers.RefreshInterval > 0 {
		jobs.Add(workers.Every(services.RefreshJob, cfg.Workers.RefreshInterval))
	}

	log.Debug().Str("func", "NewApp").Bool("secret_token", provider != nil).Msg("storefront configuration app ready")

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		tokens:   provider,
		services: services,
		workers:  jobs,
	}, nil
}

// Resolver returns the configuration resolver.
func (a *App) Resolver() Resolver {
	return a.services.Resolver
}

// Credentials returns the store of remote credentials.
func (a *App) Credentials() CredentialsStore {
	return a.storages.Credentials
}

// Init starts the first resolution; see [service.ConfigResolver.Init].
func (a *App) Init(ctx context.Context) <-chan models.Resolution {
	return a.services.Resolver.Init(ctx)
}

// StartRefresh starts the background jobs. It is a no-op when the refresh
// interval is zero.
func (a *App) StartRefresh(ctx context.Context) {
	a.workers.Start(ctx)
}

// Close stops background jobs and releases storage and secret clients. Only
// the first call has an effect.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.workers.Stop()

		var errs []error
		if a.tokens != nil {
			errs = append(errs, a.tokens.Close())
		}
		errs = append(errs, a.storages.Close())
		a.closeErr = errors.Join(errs...)
	})

	return a.closeErr
}
