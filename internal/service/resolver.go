package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ahcene43/WAW/internal/adapter"
	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/internal/secrets"
	"github.com/Ahcene43/WAW/internal/store"
	"github.com/Ahcene43/WAW/internal/utils"
	"github.com/Ahcene43/WAW/models"
)

type configResolver struct {
	cache       store.DocumentCache
	credentials store.CredentialsRepository
	github      adapter.GitHubAdapter
	tokens      secrets.TokenProvider

	remote config.ClientRemote
	app    config.ClientApp

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger

	mu      sync.RWMutex
	current models.Document

	listenersMu sync.Mutex
	listeners   []subscription
	nextID      uint64
}

type subscription struct {
	id       uint64
	listener Listener
}

// NewConfigResolver builds a [ConfigResolver] whose current document is the
// built-in default until the first resolution. tokens may be nil.
func NewConfigResolver(
	cache store.DocumentCache,
	credentials store.CredentialsRepository,
	github adapter.GitHubAdapter,
	tokens secrets.TokenProvider,
	cfg config.ClientConfig,
	log *logger.Logger,
) ConfigResolver {
	if log == nil {
		log = logger.Nop()
	}

	return &configResolver{
		cache:       cache,
		credentials: credentials,
		github:      github,
		tokens:      tokens,
		remote:      cfg.Remote,
		app:         cfg.App,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      log,
		current:     DefaultDocument(),
	}
}

// Resolve implements [ConfigResolver].
func (r *configResolver) Resolve(ctx context.Context) models.Resolution {
	id := r.ids.Generate()
	ctx = utils.WithOperationID(ctx, id)
	log := r.opLogger(ctx, "*configResolver.Resolve")

	res := models.Resolution{ID: id, RemoteURL: r.remoteURL(ctx)}

	remote, remoteErr := r.fetchRemote(ctx, res.RemoteURL)
	if remoteErr != nil {
		log.Warn().Err(remoteErr).Str("url", res.RemoteURL).Msg("continuing without remote configuration")
	}

	cached, cacheErr := r.loadCache(ctx)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("continuing without cached configuration")
	}

	// an empty object contributes nothing and does not count as a source
	var layers []models.RawDocument
	if cacheErr == nil && len(cached) > 0 {
		layers = append(layers, cached)
		res.Sources = append(res.Sources, models.SourceCache)
	}
	if remoteErr == nil && len(remote) > 0 {
		layers = append(layers, remote)
		res.Sources = append(res.Sources, models.SourceRemote)
	}

	doc := DefaultDocument()
	if len(layers) > 0 {
		merged, err := r.decodeMerged(layers...)
		if err != nil {
			// each layer decoded on its own, so this is not reachable with
			// well-formed members
			log.Err(err).Msg("error merging configuration sources, using defaults")
			res.Sources = nil
		} else {
			doc = merged
		}
	}
	if len(res.Sources) == 0 {
		res.Sources = []models.Source{models.SourceDefaults}
	}

	if !doc.HasPlaceholderRegion() {
		log.Debug().Msg("delivery prices carry no zero-cost placeholder region")
	}

	r.setCurrent(doc)
	res.Document = doc.Clone()
	res.ResolvedAt = r.now()

	log.Info().Strs("sources", sourceNames(res.Sources)).Msg("configuration resolved")

	if res.From(models.SourceRemote) {
		r.notify(models.EventRemoteLoaded, doc)
	}

	return res
}

// ResolveWith implements [ConfigResolver].
func (r *configResolver) ResolveWith(ctx context.Context, creds models.Credentials) (models.Resolution, error) {
	id := r.ids.Generate()
	ctx = utils.WithOperationID(ctx, id)
	log := r.opLogger(ctx, "*configResolver.ResolveWith")

	if !creds.CanRead() {
		return models.Resolution{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, ErrIncompleteCredentials)
	}

	url := creds.RawURL(r.remote.RawBaseURL, r.remote.FilePath)
	remote, err := r.fetchRemote(ctx, url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("remote configuration not loaded")
		return models.Resolution{}, err
	}

	current, err := r.Current().Raw()
	if err != nil {
		return models.Resolution{}, err
	}

	doc, err := r.decodeMerged(current, remote)
	if err != nil {
		return models.Resolution{}, err
	}
	r.setCurrent(doc)
	log.Info().Str("url", url).Msg("configuration loaded from remote")
	r.notify(models.EventRemoteLoaded, doc)

	return models.Resolution{
		ID:         id,
		Document:   doc.Clone(),
		Sources:    []models.Source{models.SourceRemote},
		RemoteURL:  url,
		ResolvedAt: r.now(),
	}, nil
}

// Init implements [ConfigResolver].
func (r *configResolver) Init(ctx context.Context) <-chan models.Resolution {
	done := make(chan models.Resolution, 1)
	go func() {
		defer close(done)
		done <- r.Resolve(ctx)
	}()

	return done
}

// Current implements [ConfigResolver].
func (r *configResolver) Current() models.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current.Clone()
}

// Replace implements [ConfigResolver].
func (r *configResolver) Replace(doc models.Document) {
	doc = doc.Clone()
	r.setCurrent(doc)
	r.notify(models.EventReplaced, doc)
}

// Subscribe implements [ConfigResolver].
func (r *configResolver) Subscribe(l Listener) func() {
	r.listenersMu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, subscription{id: id, listener: l})
	r.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.listenersMu.Lock()
			defer r.listenersMu.Unlock()
			for i, s := range r.listeners {
				if s.id == id {
					r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (r *configResolver) setCurrent(doc models.Document) {
	r.mu.Lock()
	r.current = doc
	r.mu.Unlock()
}

// notify delivers one event per listener, in subscription order. A panicking
// listener is logged and skipped.
func (r *configResolver) notify(kind models.EventKind, doc models.Document) {
	r.listenersMu.Lock()
	subs := make([]subscription, len(r.listeners))
	copy(subs, r.listeners)
	r.listenersMu.Unlock()

	for _, s := range subs {
		r.deliver(s, models.ConfigEvent{Kind: kind, Document: doc.Clone()})
	}
}

func (r *configResolver) deliver(s subscription, event models.ConfigEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Str("func", "*configResolver.deliver").
				Uint64("listener", s.id).
				Stringer("event", event.Kind).
				Interface("panic", rec).
				Msg("listener panicked")
		}
	}()

	s.listener.OnConfigEvent(event)
}

// remoteURL addresses the remote document with the stored credentials, or
// with the configured fallback repository when none are stored.
func (r *configResolver) remoteURL(ctx context.Context) string {
	creds, ok, err := r.credentials.Current(ctx)
	if err != nil {
		r.opLogger(ctx, "*configResolver.remoteURL").Warn().Err(err).Msg("error reading stored credentials")
	}
	if err != nil || !ok {
		creds = models.Credentials{Username: r.remote.Owner, Repo: r.remote.Repo, Branch: r.remote.Branch}
	}

	return creds.RawURL(r.remote.RawBaseURL, r.remote.FilePath)
}

func (r *configResolver) fetchRemote(ctx context.Context, url string) (models.RawDocument, error) {
	raw, err := r.github.FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if _, err = raw.Decode(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return raw, nil
}

func (r *configResolver) loadCache(ctx context.Context) (models.RawDocument, error) {
	raw, err := r.cache.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	if _, err = raw.Decode(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return raw, nil
}

func (r *configResolver) decodeMerged(layers ...models.RawDocument) (models.Document, error) {
	merged, err := mergeLayers(layers...)
	if err != nil {
		return models.Document{}, err
	}

	return merged.Decode()
}

func (r *configResolver) opLogger(ctx context.Context, fn string) *logger.Logger {
	l := r.logger.With().Str("func", fn)
	if id, ok := utils.GetOperationIDFromContext(ctx); ok {
		l = l.Str("op_id", id)
	}

	return &logger.Logger{Logger: l.Logger()}
}

func sourceNames(sources []models.Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = string(s)
	}

	return names
}
