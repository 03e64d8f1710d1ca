package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postWithAuthorColumns = `p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
			  u.id, u.username, u.email`

func scanPostWithAuthor(row pgx.Row) (model.PostWithAuthor, error) {
	var post model.PostWithAuthor
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.Username, &post.Author.Email,
	)
	return post, err
}

func (r *PostRepository) Create(ctx context.Context, title, content string, authorID int64) (model.Post, error) {
	query := `INSERT INTO posts (title, content, author_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, title, content, author_id, created_at, updated_at`

	var post model.Post
	err := r.db.QueryRow(ctx, query, title, content, authorID).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	var post model.Post
	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM posts WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetByIDWithAuthor(ctx context.Context, id int64) (model.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
			  FROM posts p
			  JOIN users u ON p.author_id = u.id
			  WHERE p.id = $1`

	post, err := scanPostWithAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PostWithAuthor{}, model.ErrNotFound
		}
		return model.PostWithAuthor{}, fmt.Errorf("failed to get post with author: %w", err)
	}

	return post, nil
}

func (r *PostRepository) ListAll(ctx context.Context, limit, offset int) ([]model.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
			  FROM posts p
			  JOIN users u ON p.author_id = u.id
			  ORDER BY p.created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.PostWithAuthor, error) {
	query := `SELECT ` + postWithAuthorColumns + `
			  FROM posts p
			  JOIN users u ON p.author_id = u.id
			  WHERE p.author_id = $1
			  ORDER BY p.created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows pgx.Rows) ([]model.PostWithAuthor, error) {
	posts := make([]model.PostWithAuthor, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// Update writes the full merged record. Partial-update merging happens in
// the service; the store always writes both columns.
func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `UPDATE posts
			  SET title = $1, content = $2
			  WHERE id = $3
			  RETURNING id, title, content, author_id, created_at, updated_at`

	var updated model.Post
	err := r.db.QueryRow(ctx, query, post.Title, post.Content, post.ID).Scan(
		&updated.ID, &updated.Title, &updated.Content, &updated.AuthorID,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
