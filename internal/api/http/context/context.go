// Package context carries the authenticated session through request
// contexts.
package context

import (
	"context"

	"github.com/dtroode/sociable-server/internal/model"
)

type contextKey int

const sessionKey contextKey = iota

// Manager implements model.ContextManager over request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a context carrying the session.
func (m *Manager) SetSessionToContext(ctx context.Context, session model.TokenPayload) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the session set by the authentication
// middleware, reporting whether one is present.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.TokenPayload, bool) {
	session, ok := ctx.Value(sessionKey).(model.TokenPayload)
	return session, ok
}
