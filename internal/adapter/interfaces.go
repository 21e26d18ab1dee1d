// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to reach the hosted
// storefront configuration: the raw-content host for reads and the GitHub
// contents API for writes.
//
// The primary abstraction is [GitHubAdapter], which decouples the service
// layer from resty and from the HTTP details. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrConflict] for 409) and
// [errors.As] with [*HTTPError] to read the host's message.
package adapter

import (
	"context"

	"github.com/Ahcene43/WAW/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter defines access to the hosted configuration file.
type GitHubAdapter interface {
	// FetchDocument downloads the configuration document at url (a raw
	// content URL). A cache-busting "t" query parameter holding the current
	// Unix time in milliseconds is appended to every request.
	// Returns an error for transport failures, non-2xx statuses and bodies
	// that are not a JSON object.
	FetchDocument(ctx context.Context, url string) (models.RawDocument, error)

	// GetFileSHA reads the current blob sha of the configuration file on the
	// credentials' branch. Returns a wrapped [ErrNotFound] when the file does
	// not exist yet.
	GetFileSHA(ctx context.Context, creds models.Credentials) (string, error)

	// PutFile creates or updates the configuration file. req.SHA must hold
	// the current sha when updating and be empty when creating. On a non-2xx
	// response the returned error is an [*HTTPError] carrying the host's
	// message.
	PutFile(ctx context.Context, creds models.Credentials, req models.PutContentsRequest) (models.WriteResult, error)
}
