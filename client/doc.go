// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the entry point for storefront front-ends.
//
// It wires runtime configuration, local storage, the remote adapter, the
// optional write-token secret and the background refresh job into a single
// [App]. The configuration itself is read and written through
// [App.Resolver].
package client
