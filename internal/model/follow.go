package model

import "context"

// FollowStore defines persistence operations for the directed follow graph.
// Create and Delete are idempotent at the storage level.
type FollowStore interface {
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	Create(ctx context.Context, followerID, followingID int64) error
	Delete(ctx context.Context, followerID, followingID int64) error
}
