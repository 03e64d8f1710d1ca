package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// ProfileService covers profile reads and owner-scoped writes.
type ProfileService interface {
	Get(ctx context.Context, userID int64) (model.Profile, error)
	Update(ctx context.Context, userID int64, input model.ProfileUpdate) error
	GetStatus(ctx context.Context, userID int64) (string, error)
	SetStatus(ctx context.Context, userID int64, status string) error
	UpdatePhoto(ctx context.Context, userID int64) error
}

// Profile handles profile endpoints.
type Profile struct {
	service        ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewProfile(service ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Get returns the profile as a bare object, not wrapped in the envelope.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid user ID"))
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profile)
}

func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	var input model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid request body"))
		return
	}

	if err := h.service.Update(r.Context(), session.UserID, input); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}

// GetStatus returns the bare status string. A missing user polls as an
// empty status, never an error.
func (h *Profile) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, err := h.service.GetStatus(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, status)
}

type statusRequest struct {
	Status *string `json:"status"`
}

func (h *Profile) SetStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid status"))
		return
	}
	if req.Status == nil || len(*req.Status) > model.StatusMaxLength {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid status"))
		return
	}

	if err := h.service.SetStatus(r.Context(), session.UserID, *req.Status); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}

// UpdatePhoto acknowledges the upload; media storage is handled upstream.
func (h *Profile) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	if err := h.service.UpdatePhoto(r.Context(), session.UserID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}
