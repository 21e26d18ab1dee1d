package service

import (
	"github.com/Ahcene43/WAW/internal/adapter"
	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/internal/secrets"
	"github.com/Ahcene43/WAW/internal/store"
)

type Services struct {
	Resolver   ConfigResolver
	RefreshJob RefreshJob
}

func NewServices(storages *store.Storages, github adapter.GitHubAdapter, tokens secrets.TokenProvider, cfg config.ClientConfig, log *logger.Logger) *Services {
	resolver := NewConfigResolver(storages.Documents, storages.Credentials, github, tokens, cfg, log)

	return &Services{
		Resolver:   resolver,
		RefreshJob: NewRefreshJob(resolver),
	}
}
