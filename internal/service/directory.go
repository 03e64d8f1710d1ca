package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Directory implements the paginated user listing with viewer-relative
// follow state.
type Directory struct {
	directoryStore model.DirectoryStore
	logger         *logger.Logger
}

func NewDirectory(directoryStore model.DirectoryStore, logger *logger.Logger) *Directory {
	return &Directory{
		directoryStore: directoryStore,
		logger:         logger,
	}
}

// DirectoryPage is one page of directory entries plus the total count of
// the filtered set.
type DirectoryPage struct {
	Items      []model.DirectoryItem `json:"items"`
	TotalCount int                   `json:"totalCount"`
}

// List returns one directory page. Page and count are clamped, the search
// term is trimmed and a nil viewer sees no follow state.
func (s *Directory) List(ctx context.Context, page, count int, term string, viewerID *int64) (DirectoryPage, error) {
	page = model.ClampPage(page)
	count = model.ClampCount(count)

	items, totalCount, err := s.directoryStore.List(ctx, model.DirectoryQuery{
		Limit:    count,
		Offset:   (page - 1) * count,
		Term:     strings.TrimSpace(term),
		ViewerID: viewerID,
	})
	if err != nil {
		return DirectoryPage{}, fmt.Errorf("failed to list users: %w", err)
	}

	return DirectoryPage{Items: items, TotalCount: totalCount}, nil
}
