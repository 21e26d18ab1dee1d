// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
)

// TokenProvider supplies the write token when the stored credentials carry
// none.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// accessor reads the payload of one secret version.
type accessor interface {
	Access(ctx context.Context, name string) ([]byte, error)
	Close() error
}

// SecretManagerProvider is the [TokenProvider] over Secret Manager. Every call
// reads the latest version so rotations take effect without a restart.
type SecretManagerProvider struct {
	name     string
	accessor accessor
	logger   *logger.Logger
}

// NewTokenProvider returns nil when cfg names no secret. Otherwise it opens
// a Secret Manager client using application default credentials.
func NewTokenProvider(ctx context.Context, cfg config.ClientSecrets, log *logger.Logger) (*SecretManagerProvider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewTokenProvider").Msg("error creating secret manager client")
		return nil, fmt.Errorf("creating secret manager client: %w", err)
	}

	return newSecretManagerProvider(cfg, &gcpAccessor{client: client}, log), nil
}

func newSecretManagerProvider(cfg config.ClientSecrets, a accessor, log *logger.Logger) *SecretManagerProvider {
	return &SecretManagerProvider{
		name:     SecretVersionName(cfg.GCPProject, cfg.TokenSecret),
		accessor: a,
		logger:   log,
	}
}

// SecretVersionName builds the resource name of the latest version of secret
// in project.
func SecretVersionName(project, secret string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, secret)
}

// Token implements [TokenProvider]. Surrounding whitespace is trimmed from
// the payload.
func (p *SecretManagerProvider) Token(ctx context.Context) (string, error) {
	data, err := p.accessor.Access(ctx, p.name)
	if err != nil {
		p.logger.Err(err).Str("func", "*SecretManagerProvider.Token").Str("secret", p.name).Msg("error accessing secret")
		return "", fmt.Errorf("accessing secret %s: %w", p.name, mapStatus(err))
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrEmptySecret
	}

	return token, nil
}

// Close releases the underlying client.
func (p *SecretManagerProvider) Close() error {
	return p.accessor.Close()
}

func mapStatus(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %w", ErrSecretNotFound, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %w", ErrSecretPermissionDenied, err)
	default:
		return err
	}
}

type gcpAccessor struct {
	client *secretmanager.Client
}

func (g *gcpAccessor) Access(ctx context.Context, name string) ([]byte, error) {
	result, err := g.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return result.GetPayload().GetData(), nil
}

func (g *gcpAccessor) Close() error {
	return g.client.Close()
}
