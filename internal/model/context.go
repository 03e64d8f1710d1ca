package model

import "context"

// ContextManager stores and retrieves the authenticated session in a
// request context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, session TokenPayload) context.Context
	GetSessionFromContext(ctx context.Context) (TokenPayload, bool)
}
