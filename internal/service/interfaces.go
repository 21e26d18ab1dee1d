// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/Ahcene43/WAW/models"
)

// ConfigResolver owns the current storefront configuration. It layers the
// remote document, the local cache and the built-in defaults, and persists
// edits locally or to the remote host.
type ConfigResolver interface {
	// Resolve fetches the remote document and the cached one, shallow-merges
	// them over each other (remote wins) and installs the result as the
	// current document. With neither source available the defaults are
	// used. Resolve never fails; source failures are logged.
	Resolve(ctx context.Context) models.Resolution

	// ResolveWith fetches the remote document addressed by creds and merges
	// it over the current document. Unlike Resolve, a remote failure is
	// returned wrapped in [ErrRemoteUnavailable].
	ResolveWith(ctx context.Context, creds models.Credentials) (models.Resolution, error)

	// Init runs Resolve in the background. The returned channel delivers
	// exactly one Resolution and is then closed.
	Init(ctx context.Context) <-chan models.Resolution

	// Current returns a copy of the current document.
	Current() models.Document

	// Replace installs doc as the current document without touching any
	// storage and notifies listeners.
	Replace(doc models.Document)

	// Subscribe registers l for change events. Calling the returned function
	// removes it; further calls are no-ops.
	Subscribe(l Listener) (unsubscribe func())

	// PersistLocal writes doc to the local cache and makes it current.
	// Listeners are notified only when the write succeeded.
	PersistLocal(ctx context.Context, doc models.Document) error

	// PersistRemote writes doc to the remote repository addressed by creds.
	// Every failure is a *[RemoteWriteError]. Incomplete credentials fail
	// before any network call.
	PersistRemote(ctx context.Context, doc models.Document, creds models.Credentials) (models.WriteResult, error)

	// PersistRemoteCurrent is PersistRemote with the stored credentials,
	// taking the token from the configured secret when none is stored.
	PersistRemoteCurrent(ctx context.Context, doc models.Document) (models.WriteResult, error)
}

// Listener receives configuration change events. Calls are synchronous and
// happen after the mutation is visible through [ConfigResolver.Current].
type Listener interface {
	OnConfigEvent(event models.ConfigEvent)
}

// ListenerFunc adapts a function to [Listener].
type ListenerFunc func(event models.ConfigEvent)

func (f ListenerFunc) OnConfigEvent(event models.ConfigEvent) {
	f(event)
}

// RefreshJob re-resolves the configuration on a ticker.
type RefreshJob interface {
	// Start stops any running loop and starts a new one that calls Resolve
	// every interval (5 minutes when interval is not positive).
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
