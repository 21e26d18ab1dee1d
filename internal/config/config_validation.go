// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"slices"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks the merged [StructuredConfig] before it is mapped. Only
// cross-field rules live here; per-group rules are in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if (cfg.Secrets.GCPProject == "") != (cfg.Secrets.TokenSecret == "") {
		return fmt.Errorf("%w: both project and secret name are required", ErrInvalidSecretsConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isHTTPURL(cfg.Remote.RawBaseURL) || !isHTTPURL(cfg.Remote.APIBaseURL) {
		return fmt.Errorf("%w: base URLs must be absolute http(s) URLs", ErrInvalidRemoteConfigs)
	}

	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.FilePath == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Remote.APIRate < 0 || cfg.Remote.APIBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidRemoteConfigs)
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if !slices.Contains(logLevels, cfg.App.LogLevel) || cfg.App.Location == nil {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
