// Package utils provides general-purpose helpers shared by the storefront
// configuration packages: context keys, the resty HTTP client wrapper and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OperationIDCtxKey is the key under which the id of the running resolution
// or remote save is stored.
var OperationIDCtxKey = contextKey("operationID")

// WithOperationID returns a copy of ctx carrying id.
func WithOperationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, OperationIDCtxKey, id)
}

// GetOperationIDFromContext retrieves the operation id stored by
// [WithOperationID]. ok is false when the value is missing or not a string.
func GetOperationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(OperationIDCtxKey).(string)
	return id, ok
}
