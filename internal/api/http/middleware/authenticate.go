package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Authenticate validates bearer tokens and injects the session into the
// request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Require rejects requests without a valid token. A missing token and an
// invalid token are distinct outcomes: no credential is Unauthorized,
// a bad credential is Forbidden.
func (m *Authenticate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			m.writeError(w, http.StatusUnauthorized, apperror.NewMissingToken())
			return
		}

		session, err := m.tokenManager.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"error", err.Error())
			m.writeError(w, http.StatusForbidden, apperror.NewInvalidToken())
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetSessionToContext(r.Context(), session)))
	})
}

// Optional resolves the session when a valid token is present and leaves
// the caller anonymous otherwise.
func (m *Authenticate) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.tokenManager.Parse(tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetSessionToContext(r.Context(), session)))
	})
}

func (m *Authenticate) writeError(w http.ResponseWriter, status int, appErr *apperror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := struct {
		ResultCode int      `json:"resultCode"`
		Messages   []string `json:"messages"`
		Data       struct{} `json:"data"`
	}{
		ResultCode: 1,
		Messages:   appErr.Messages,
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.logger.Error("Authenticate middleware: failed to write response",
			"error", err.Error())
	}
}
