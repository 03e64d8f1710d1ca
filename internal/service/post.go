package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Post implements owner-scoped post mutations and paginated reads.
type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

// Create stores a post and returns the author-joined projection.
func (s *Post) Create(ctx context.Context, title, content string, authorID int64) (model.PostWithAuthor, error) {
	post, err := s.postStore.Create(ctx, title, content, authorID)
	if err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"author_id", authorID)

	withAuthor, err := s.postStore.GetByIDWithAuthor(ctx, post.ID)
	if err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to get created post: %w", err)
	}

	return withAuthor, nil
}

// Get returns the author-joined post.
func (s *Post) Get(ctx context.Context, id int64) (model.PostWithAuthor, error) {
	post, err := s.postStore.GetByIDWithAuthor(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.PostWithAuthor{}, apperror.NewNotFound("Post not found")
	}
	if err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListAll returns a page of posts, newest first. Out-of-range paging
// values are clamped.
func (s *Post) ListAll(ctx context.Context, limit, offset int) ([]model.PostWithAuthor, error) {
	posts, err := s.postStore.ListAll(ctx, model.ClampLimit(limit), model.ClampOffset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListByAuthor returns a page of one author's posts, newest first.
func (s *Post) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.PostWithAuthor, error) {
	posts, err := s.postStore.ListByAuthor(ctx, authorID, model.ClampLimit(limit), model.ClampOffset(offset))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}

	return posts, nil
}

// Update applies a partial update to the caller's own post. Existence is
// checked before ownership, so a missing post is NotFound even for a
// non-owner. An empty patch is a no-op success.
func (s *Post) Update(ctx context.Context, id int64, patch model.PostPatch, callerID int64) (model.PostWithAuthor, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.PostWithAuthor{}, apperror.NewNotFound("Post not found")
	}
	if err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != callerID {
		s.logger.Info("Post service: update denied",
			"post_id", id,
			"author_id", post.AuthorID,
			"caller_id", callerID)
		return model.PostWithAuthor{}, apperror.NewForbidden("You do not have permission to update this post")
	}

	if !patch.IsZero() {
		if _, err := s.postStore.Update(ctx, post.Apply(patch)); err != nil {
			return model.PostWithAuthor{}, fmt.Errorf("failed to update post: %w", err)
		}
	}

	withAuthor, err := s.postStore.GetByIDWithAuthor(ctx, id)
	if err != nil {
		return model.PostWithAuthor{}, fmt.Errorf("failed to get updated post: %w", err)
	}

	return withAuthor, nil
}

// Delete removes the caller's own post. Deleting an absent post is
// NotFound, not an idempotent success.
func (s *Post) Delete(ctx context.Context, id int64, callerID int64) error {
	post, err := s.postStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewNotFound("Post not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != callerID {
		s.logger.Info("Post service: delete denied",
			"post_id", id,
			"author_id", post.AuthorID,
			"caller_id", callerID)
		return apperror.NewForbidden("You do not have permission to delete this post")
	}

	if err := s.postStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apperror.NewNotFound("Post not found")
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted",
		"post_id", id,
		"caller_id", callerID)

	return nil
}
