package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// FollowService covers the follow graph operations.
type FollowService interface {
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	FollowUser(ctx context.Context, followerID, followingID int64) error
	UnfollowUser(ctx context.Context, followerID, followingID int64) error
}

// Follow handles follow graph endpoints.
type Follow struct {
	service        FollowService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewFollow(service FollowService, contextManager model.ContextManager, logger *logger.Logger) *Follow {
	return &Follow{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Check returns a bare boolean for whether the caller follows the user.
func (h *Follow) Check(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	userID, ok := pathID(r, "userId")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid user ID"))
		return
	}

	followed, err := h.service.IsFollowing(r.Context(), session.UserID, userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, followed)
}

func (h *Follow) Follow(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	userID, ok := pathID(r, "userId")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid user ID"))
		return
	}

	if err := h.service.FollowUser(r.Context(), session.UserID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}

func (h *Follow) Unfollow(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	userID, ok := pathID(r, "userId")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid user ID"))
		return
	}

	if err := h.service.UnfollowUser(r.Context(), session.UserID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}
