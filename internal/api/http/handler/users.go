package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
	"github.com/dtroode/sociable-server/internal/service"
)

// DirectoryService lists users with viewer-relative follow state.
type DirectoryService interface {
	List(ctx context.Context, page, count int, term string, viewerID *int64) (service.DirectoryPage, error)
}

// Users handles the user directory endpoint.
type Users struct {
	service        DirectoryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUsers(service DirectoryService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns a directory page. Authentication is optional: anonymous
// callers get the listing with no follow state.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	count := queryInt(r, "count", model.DefaultDirectoryPageSize)
	term := r.URL.Query().Get("term")

	var viewerID *int64
	if session, ok := h.contextManager.GetSessionFromContext(r.Context()); ok {
		viewerID = &session.UserID
	}

	result, err := h.service.List(r.Context(), page, count, term, viewerID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
