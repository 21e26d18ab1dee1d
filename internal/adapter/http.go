package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/internal/transport"
	"github.com/Ahcene43/WAW/internal/utils"
	"github.com/Ahcene43/WAW/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const githubAcceptHeader = "application/vnd.github.v3+json"

// githubHTTPAdapter implements [GitHubAdapter] over resty. API calls share a
// token-bucket limiter; raw reads are not limited.
type githubHTTPAdapter struct {
	client   *utils.HTTPClient
	apiBase  string
	filePath string
	limiter  *rate.Limiter
	now      func() time.Time
	logger   *logger.Logger
}

// NewGitHubAdapter constructs a [GitHubAdapter] from the remote settings.
//
// The API base URL is normalised (trailing slash removed, scheme required).
// Every request is bounded by cfg.RequestTimeout. When cfg.ChromeTLS is set
// the client dials with a Chrome TLS fingerprint.
func NewGitHubAdapter(cfg config.ClientRemote, log *logger.Logger) (GitHubAdapter, error) {
	apiBase, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.APIBaseURL, err)
	}

	opts := []utils.HTTPClientOption{
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithUserAgent(cfg.UserAgent),
	}
	if cfg.ChromeTLS {
		opts = append(opts, utils.WithTransport(transport.NewChromeTransport(cfg.RequestTimeout)))
	}

	limit := rate.Inf
	if cfg.APIRate > 0 {
		limit = rate.Limit(cfg.APIRate)
	}
	burst := cfg.APIBurst
	if burst <= 0 {
		burst = 1
	}

	if log == nil {
		log = logger.Nop()
	}

	filePath := cfg.FilePath
	if filePath == "" {
		filePath = "config.json"
	}

	return &githubHTTPAdapter{
		client:   utils.NewHTTPClient(opts...),
		apiBase:  apiBase,
		filePath: filePath,
		limiter:  rate.NewLimiter(limit, burst),
		now:      time.Now,
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchDocument implements [GitHubAdapter].
func (h *githubHTTPAdapter) FetchDocument(ctx context.Context, rawURL string) (models.RawDocument, error) {
	log := h.opLogger(ctx, "FetchDocument")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetQueryParam("t", strconv.FormatInt(h.now().UnixMilli(), 10)).
		Get(rawURL)
	if err != nil {
		log.Err(err).Str("url", rawURL).Msg("remote document request failed")
		return nil, fmt.Errorf("fetch document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("remote document request rejected")
		return nil, err
	}

	doc, err := models.ParseRawDocument(resp.Body())
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("remote document is malformed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	log.Debug().Str("url", rawURL).Int("keys", len(doc)).Msg("remote document fetched")
	return doc, nil
}

// GetFileSHA implements [GitHubAdapter].
func (h *githubHTTPAdapter) GetFileSHA(ctx context.Context, creds models.Credentials) (string, error) {
	log := h.opLogger(ctx, "GetFileSHA")

	if err := h.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for API rate limit: %w", err)
	}

	var file models.ContentsFile
	resp, err := h.apiRequest(ctx, creds).
		SetQueryParam("ref", creds.BranchOrDefault()).
		SetResult(&file).
		Get(h.contentsURL(creds))
	if err != nil {
		log.Err(err).Msg("sha request failed")
		return "", fmt.Errorf("get file sha request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if file.SHA == "" {
		return "", fmt.Errorf("%w: contents response has no sha", ErrInvalidPayload)
	}

	return file.SHA, nil
}

// PutFile implements [GitHubAdapter].
func (h *githubHTTPAdapter) PutFile(ctx context.Context, creds models.Credentials, req models.PutContentsRequest) (models.WriteResult, error) {
	log := h.opLogger(ctx, "PutFile")

	if creds.Token == "" {
		return models.WriteResult{}, ErrMissingToken
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return models.WriteResult{}, fmt.Errorf("waiting for API rate limit: %w", err)
	}

	var result models.WriteResult
	resp, err := h.apiRequest(ctx, creds).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Put(h.contentsURL(creds))
	if err != nil {
		log.Err(err).Msg("put contents request failed")
		return models.WriteResult{}, fmt.Errorf("put contents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("put contents rejected")
		return models.WriteResult{}, err
	}

	log.Info().Str("commit", result.Commit.SHA).Msg("configuration file written")
	return result, nil
}

func (h *githubHTTPAdapter) apiRequest(ctx context.Context, creds models.Credentials) *resty.Request {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", githubAcceptHeader).
		ForceContentType("application/json")
	if creds.Token != "" {
		r.SetHeader("Authorization", "token "+creds.Token)
	}

	return r
}

func (h *githubHTTPAdapter) contentsURL(creds models.Credentials) string {
	return h.apiBase + creds.ContentsPath(h.filePath)
}

func (h *githubHTTPAdapter) opLogger(ctx context.Context, fn string) *logger.Logger {
	l := h.logger.With().Str("func", fn)
	if id, ok := utils.GetOperationIDFromContext(ctx); ok {
		l = l.Str("op_id", id)
	}

	return &logger.Logger{Logger: l.Logger()}
}
