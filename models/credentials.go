// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBranch is used when credentials leave the branch empty.
const DefaultBranch = "main"

// Credentials address the hosted configuration file and authorise writes to
// it. They are stored apart from the configuration document and never merged
// into it.
type Credentials struct {
	// Username is the repository owner (user or organisation).
	Username string `json:"username"`
	// Repo is the repository name.
	Repo string `json:"repo"`
	// Branch is the target branch. Empty means [DefaultBranch].
	Branch string `json:"branch,omitempty"`
	// Token is the write credential. Reads never need it.
	Token string `json:"token,omitempty"`
}

// BranchOrDefault returns the configured branch or [DefaultBranch].
func (c Credentials) BranchOrDefault() string {
	if c.Branch == "" {
		return DefaultBranch
	}

	return c.Branch
}

// CanRead reports whether the credentials are enough to build a raw URL.
func (c Credentials) CanRead() bool {
	return c.Username != "" && c.Repo != ""
}

// CanWrite reports whether the credentials are enough to call the contents
// API.
func (c Credentials) CanWrite() bool {
	return c.CanRead() && c.Token != ""
}

// RawURL builds the raw-content URL of filePath in the repository the
// credentials point at, e.g.
// https://raw.githubusercontent.com/<owner>/<repo>/<branch>/config.json.
func (c Credentials) RawURL(rawBaseURL, filePath string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		strings.TrimRight(rawBaseURL, "/"),
		url.PathEscape(c.Username),
		url.PathEscape(c.Repo),
		c.BranchOrDefault(),
		strings.TrimLeft(filePath, "/"),
	)
}

// ContentsPath returns the contents API path of filePath relative to the API
// base URL.
func (c Credentials) ContentsPath(filePath string) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(c.Username),
		url.PathEscape(c.Repo),
		strings.TrimLeft(filePath, "/"),
	)
}

// StoreProfile is one entry of the "stores" map used by multi-store
// deployments. Github holds the credentials of that store's configuration
// repository.
type StoreProfile struct {
	Name   string       `json:"name,omitempty"`
	Github *Credentials `json:"github,omitempty"`
}
