package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
)

type fakeAccessor struct {
	payload []byte
	err     error
	names   []string
	closed  bool
}

func (f *fakeAccessor) Access(_ context.Context, name string) ([]byte, error) {
	f.names = append(f.names, name)
	return f.payload, f.err
}

func (f *fakeAccessor) Close() error {
	f.closed = true
	return nil
}

var testSecrets = config.ClientSecrets{GCPProject: "shop-prod", TokenSecret: "github-token"}

func TestSecretVersionName(t *testing.T) {
	assert.Equal(t, "projects/shop-prod/secrets/github-token/versions/latest",
		SecretVersionName("shop-prod", "github-token"))
}

// TestNewTokenProvider_Disabled verifies that no client is opened when no
// secret is configured.
func TestNewTokenProvider_Disabled(t *testing.T) {
	p, err := NewTokenProvider(context.Background(), config.ClientSecrets{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestToken_TrimsPayload(t *testing.T) {
	fake := &fakeAccessor{payload: []byte("  ghp_abc\n")}
	p := newSecretManagerProvider(testSecrets, fake, logger.Nop())

	token, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", token)
	assert.Equal(t, []string{"projects/shop-prod/secrets/github-token/versions/latest"}, fake.names)

	require.NoError(t, p.Close())
	assert.True(t, fake.closed)
}

func TestToken_EmptyPayload(t *testing.T) {
	p := newSecretManagerProvider(testSecrets, &fakeAccessor{payload: []byte(" \n")}, logger.Nop())

	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestToken_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"not found", status.Error(codes.NotFound, "no such secret"), ErrSecretNotFound},
		{"denied", status.Error(codes.PermissionDenied, "nope"), ErrSecretPermissionDenied},
		{"unauthenticated", status.Error(codes.Unauthenticated, "who"), ErrSecretPermissionDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newSecretManagerProvider(testSecrets, &fakeAccessor{err: tc.err}, logger.Nop())
			_, err := p.Token(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestToken_OtherError(t *testing.T) {
	boom := errors.New("boom")
	p := newSecretManagerProvider(testSecrets, &fakeAccessor{err: boom}, logger.Nop())

	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSecretNotFound)
}
