// Package secrets resolves the remote write token from Google Cloud Secret
// Manager for deployments that keep it out of local storage.
package secrets
