package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
	"github.com/dtroode/sociable-server/internal/service"
)

// AuthService covers registration, login and identity lookups.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	Me(ctx context.Context, userID int64) (model.PublicUser, error)
}

// Auth handles authentication endpoints.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(service AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid request body"))
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeError(w, h.logger, apperror.NewInvalidInput("Email, username and password are required"))
		return
	}

	session, err := h.service.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusCreated, sessionResponse{User: session.User, Token: session.Token})
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid request body"))
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, sessionResponse{User: session.User, Token: session.Token})
}

func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	user, err := h.service.Me(r.Context(), session.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, user)
}
