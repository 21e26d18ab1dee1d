package models

import (
	"slices"
	"time"
)

// Source identifies where a resolved document came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceCache    Source = "cache"
	SourceDefaults Source = "defaults"
)

// Resolution is the outcome of one configuration resolution.
type Resolution struct {
	// ID correlates the log lines of one resolution.
	ID string
	// Document is the merged result, now the current configuration.
	Document Document
	// Sources lists the contributing sources, lowest priority first.
	Sources []Source
	// RemoteURL is the address the remote document was requested from.
	RemoteURL string
	// ResolvedAt is when the resolution finished.
	ResolvedAt time.Time
}

// From reports whether src contributed to the resolution.
func (r Resolution) From(src Source) bool {
	return slices.Contains(r.Sources, src)
}

// EventKind tells listeners which mutation happened.
type EventKind int

const (
	// EventRemoteLoaded follows a resolution that reached the remote document.
	EventRemoteLoaded EventKind = iota + 1
	// EventLocalSaved follows a successful write to the local cache.
	EventLocalSaved
	// EventReplaced follows an explicit in-memory replacement.
	EventReplaced
)

func (k EventKind) String() string {
	switch k {
	case EventRemoteLoaded:
		return "remote_loaded"
	case EventLocalSaved:
		return "local_saved"
	case EventReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// ConfigEvent is delivered to listeners after the current configuration
// changed.
type ConfigEvent struct {
	Kind     EventKind
	Document Document
}
