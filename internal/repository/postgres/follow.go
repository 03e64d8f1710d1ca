package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.FollowStore = (*FollowRepository)(nil)

type FollowRepository struct {
	db *Connection
}

func NewFollowRepository(db *Connection) *FollowRepository {
	return &FollowRepository{
		db: db,
	}
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `SELECT 1 FROM follows
			  WHERE follower_id = $1 AND following_id = $2
			  LIMIT 1`

	var one int
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return true, nil
}

// Create inserts the follow edge, ignoring an already-existing edge.
func (r *FollowRepository) Create(ctx context.Context, followerID, followingID int64) error {
	query := `INSERT INTO follows (follower_id, following_id)
			  VALUES ($1, $2)
			  ON CONFLICT (follower_id, following_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to create follow edge: %w", err)
	}

	return nil
}

// Delete removes the follow edge. Deleting an absent edge is a no-op.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM follows
			  WHERE follower_id = $1 AND following_id = $2`

	_, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}

	return nil
}
