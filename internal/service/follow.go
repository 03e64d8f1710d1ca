package service

import (
	"context"
	"fmt"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Follow implements the directed follow graph operations.
type Follow struct {
	followStore model.FollowStore
	logger      *logger.Logger
}

func NewFollow(followStore model.FollowStore, logger *logger.Logger) *Follow {
	return &Follow{
		followStore: followStore,
		logger:      logger,
	}
}

// IsFollowing reports whether the follower -> following edge exists.
func (s *Follow) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	followed, err := s.followStore.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return followed, nil
}

// FollowUser creates the edge. Following yourself is rejected; following
// someone twice is a no-op success.
func (s *Follow) FollowUser(ctx context.Context, followerID, followingID int64) error {
	if followerID == followingID {
		return apperror.NewInvalidOperation("Cannot follow yourself")
	}

	if err := s.followStore.Create(ctx, followerID, followingID); err != nil {
		return fmt.Errorf("failed to follow user: %w", err)
	}

	s.logger.Info("Follow service: edge created",
		"follower_id", followerID,
		"following_id", followingID)

	return nil
}

// UnfollowUser removes the edge. Unfollowing someone not followed is a
// no-op success.
func (s *Follow) UnfollowUser(ctx context.Context, followerID, followingID int64) error {
	if err := s.followStore.Delete(ctx, followerID, followingID); err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	s.logger.Info("Follow service: edge removed",
		"follower_id", followerID,
		"following_id", followingID)

	return nil
}
