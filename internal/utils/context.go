// Package utils provides general-purpose helper utilities
// used across different parts of the suite.
// Includes type-safe context keys, HTTP response writing, HTTP client
// initialization, session token signing and validation, and uuid generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-medlux/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated
// [models.Identity] in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, identity)
var IdentityCtxKey = contextKey("identity")

// SessionTokenCtxKey is the key used to store the raw session token
// of the current request.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns ok == false when the value is missing, has an unexpected type,
// or is the anonymous (zero) identity.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsZero() {
		return models.Identity{}, false
	}
	return identity, true
}

// GetSessionTokenFromContext retrieves the raw session token from the context.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
