// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the identities of signed-in users in process memory.
//
// Each sign-in opens a session and hands back a signed token. The token is
// only a handle: the identity it authenticates lives in the [Manager], so
// clearing the session revokes the token at once. Sessions do not survive a
// restart and carry no expiry.
package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-medlux/internal/utils"
	"github.com/MKhiriev/go-medlux/models"
)

// IDGenerator issues session ids.
type IDGenerator interface {
	Generate() string
}

// Manager maps session ids to identities.
// It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]models.Identity

	ids     IDGenerator
	signKey string
	issuer  string
}

// NewManager builds an empty Manager signing tokens with signKey on behalf
// of issuer.
func NewManager(signKey, issuer string) *Manager {
	return &Manager{
		sessions: make(map[string]models.Identity),
		ids:      utils.NewUUIDGenerator(),
		signKey:  signKey,
		issuer:   issuer,
	}
}

// Set opens a session for identity and returns it with its signed token.
func (m *Manager) Set(identity models.Identity) (models.Session, error) {
	sid := m.ids.Generate()

	token, err := utils.GenerateSessionToken(m.issuer, sid, identity, m.signKey)
	if err != nil {
		return models.Session{}, err
	}

	m.mu.Lock()
	m.sessions[sid] = identity
	m.mu.Unlock()

	return models.Session{ID: sid, Token: token, Identity: identity}, nil
}

// Get returns the identity of the session named by token.
// Invalid tokens and cleared sessions report false.
func (m *Manager) Get(token string) (models.Identity, bool) {
	sid, ok := m.sessionID(token)
	if !ok {
		return models.Identity{}, false
	}

	m.mu.RLock()
	identity, ok := m.sessions[sid]
	m.mu.RUnlock()

	return identity, ok
}

// Clear closes the session named by token. Clearing an unknown or invalid
// token is a no-op.
func (m *Manager) Clear(token string) {
	sid, ok := m.sessionID(token)
	if !ok {
		return
	}

	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}

// RequireAuth returns the identity of token or a *[RedirectError] pointing at
// redirectTarget when there is none.
func (m *Manager) RequireAuth(token, redirectTarget string) (models.Identity, error) {
	identity, ok := m.Get(token)
	if !ok {
		return models.Identity{}, &RedirectError{Target: redirectTarget}
	}
	return identity, nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sessionID(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims, err := utils.ValidateAndParseSessionToken(token, m.signKey, m.issuer)
	if err != nil {
		return "", false
	}
	return claims.ID, true
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, utils.IdentityCtxKey, identity)
}

// FromContext returns the identity carried by ctx, if any.
func FromContext(ctx context.Context) (models.Identity, bool) {
	return utils.GetIdentityFromContext(ctx)
}
