package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// PostService covers post mutations and paginated reads.
type PostService interface {
	Create(ctx context.Context, title, content string, authorID int64) (model.PostWithAuthor, error)
	Get(ctx context.Context, id int64) (model.PostWithAuthor, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.PostWithAuthor, error)
	Update(ctx context.Context, id int64, patch model.PostPatch, callerID int64) (model.PostWithAuthor, error)
	Delete(ctx context.Context, id int64, callerID int64) error
}

// Post handles post endpoints.
type Post struct {
	service        PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPost(service PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postListResponse struct {
	Posts  []model.PostWithAuthor `json:"posts"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// pathID parses a numeric path segment. A non-numeric value is a true
// parse failure, not something to clamp.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional numeric query parameter, falling back to a
// default when absent or non-numeric.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid request body"))
		return
	}
	if req.Title == "" || req.Content == "" {
		writeError(w, h.logger, apperror.NewInvalidInput("Title and content are required"))
		return
	}

	post, err := h.service.Create(r.Context(), req.Title, req.Content, session.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusCreated, map[string]any{"post": post})
}

func (h *Post) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid post ID"))
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, map[string]any{"post": post})
}

func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	limit := model.ClampLimit(queryInt(r, "limit", model.DefaultPostPageSize))
	offset := model.ClampOffset(queryInt(r, "offset", 0))

	posts, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, postListResponse{Posts: posts, Limit: limit, Offset: offset})
}

func (h *Post) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := pathID(r, "authorId")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid author ID"))
		return
	}

	limit := model.ClampLimit(queryInt(r, "limit", model.DefaultPostPageSize))
	offset := model.ClampOffset(queryInt(r, "offset", 0))

	posts, err := h.service.ListByAuthor(r.Context(), authorID, limit, offset)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, postListResponse{Posts: posts, Limit: limit, Offset: offset})
}

func (h *Post) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid post ID"))
		return
	}

	var patch model.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid request body"))
		return
	}

	post, err := h.service.Update(r.Context(), id, patch, session.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, map[string]any{"post": post})
}

func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperror.NewMissingToken())
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, h.logger, apperror.NewInvalidInput("Invalid post ID"))
		return
	}

	if err := h.service.Delete(r.Context(), id, session.UserID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeData(w, h.logger, http.StatusOK, nil)
}
