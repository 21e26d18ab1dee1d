package client

import (
	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/internal/service"
	"github.com/Ahcene43/WAW/internal/store"
)

type (
	// Resolver owns the current configuration document.
	Resolver = service.ConfigResolver
	// Listener receives configuration change events.
	Listener = service.Listener
	// ListenerFunc adapts a function to Listener.
	ListenerFunc = service.ListenerFunc
	// RemoteWriteError is returned by every failed remote write.
	RemoteWriteError = service.RemoteWriteError
	// CredentialsStore reads and writes the stored remote credentials.
	CredentialsStore = store.CredentialsRepository
	// Config is the validated runtime configuration.
	Config = config.ClientConfig
	// Logger is the structured logger used by every component.
	Logger = logger.Logger
)

var (
	ErrIncompleteCredentials = service.ErrIncompleteCredentials
	ErrRemoteUnavailable     = service.ErrRemoteUnavailable
)
