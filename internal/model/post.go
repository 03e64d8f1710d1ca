package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, title, content string, authorID int64) (Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	GetByIDWithAuthor(ctx context.Context, id int64) (PostWithAuthor, error)
	ListAll(ctx context.Context, limit, offset int) ([]PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]PostWithAuthor, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id int64) error
}

// Post represents a stored post owned by its author.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostAuthor is the author projection joined onto post reads.
type PostAuthor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PostWithAuthor is a read-only projection of a post and its author.
// It is never persisted.
type PostWithAuthor struct {
	Post
	Author PostAuthor `json:"author"`
}

// PostPatch carries the optional fields of a partial post update.
// A nil field is left untouched.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// IsZero reports whether the patch carries no fields.
func (p PostPatch) IsZero() bool {
	return p.Title == nil && p.Content == nil
}

// Apply merges the patch into the post and returns the merged record.
// Only fields present in the patch are overwritten.
func (p Post) Apply(patch PostPatch) Post {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	return p
}
