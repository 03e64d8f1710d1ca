package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.DirectoryStore = (*DirectoryRepository)(nil)

type DirectoryRepository struct {
	db *Connection
}

func NewDirectoryRepository(db *Connection) *DirectoryRepository {
	return &DirectoryRepository{
		db: db,
	}
}

// escapeLike escapes LIKE metacharacters so the search term matches
// literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// List returns one directory page plus the total count of the filtered
// set. The followed flag is resolved against the viewer; an anonymous
// viewer sees false everywhere.
func (r *DirectoryRepository) List(ctx context.Context, query model.DirectoryQuery) ([]model.DirectoryItem, int, error) {
	pattern := ""
	if query.Term != "" {
		pattern = "%" + escapeLike(query.Term) + "%"
	}

	countQuery := `SELECT COUNT(*) FROM users u
				   WHERE $1 = '' OR u.username ILIKE $1`

	var totalCount int
	if err := r.db.QueryRow(ctx, countQuery, pattern).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count directory entries: %w", err)
	}

	pageQuery := `SELECT
					u.id,
					COALESCE(p.full_name, u.username),
					COALESCE(p.status, ''),
					p.photo_small_url,
					p.photo_large_url,
					CASE
						WHEN $2::bigint IS NULL THEN FALSE
						ELSE EXISTS (
							SELECT 1 FROM follows f
							WHERE f.follower_id = $2 AND f.following_id = u.id
						)
					END
				  FROM users u
				  LEFT JOIN profiles p ON p.user_id = u.id
				  WHERE $1 = '' OR u.username ILIKE $1
				  ORDER BY u.id ASC
				  LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, pageQuery, pattern, query.ViewerID, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list directory entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.DirectoryItem, 0)
	for rows.Next() {
		var item model.DirectoryItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Status,
			&item.Photos.Small, &item.Photos.Large, &item.Followed,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan directory entry: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read directory entries: %w", err)
	}

	return items, totalCount, nil
}
