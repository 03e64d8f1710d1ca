package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Profile implements profile reads with default-merge semantics and
// owner-scoped writes.
type Profile struct {
	profileStore model.ProfileStore
	logger       *logger.Logger
}

func NewProfile(profileStore model.ProfileStore, logger *logger.Logger) *Profile {
	return &Profile{
		profileStore: profileStore,
		logger:       logger,
	}
}

// Get returns the profile for the user. A user without a profile row gets
// defaults; only a missing identity is NotFound.
func (s *Profile) Get(ctx context.Context, userID int64) (model.Profile, error) {
	profile, err := s.profileStore.Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apperror.NewNotFound("User not found")
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// Update upserts the caller's own profile.
func (s *Profile) Update(ctx context.Context, userID int64, input model.ProfileUpdate) error {
	if err := s.profileStore.Upsert(ctx, userID, input); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	s.logger.Info("Profile service: profile updated",
		"user_id", userID)

	return nil
}

// GetStatus returns the user's status, empty when unset or when the user
// does not exist.
func (s *Profile) GetStatus(ctx context.Context, userID int64) (string, error) {
	status, err := s.profileStore.GetStatus(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}

	return status, nil
}

// SetStatus writes the caller's status. Length is validated at the
// transport boundary.
func (s *Profile) SetStatus(ctx context.Context, userID int64, status string) error {
	if err := s.profileStore.SetStatus(ctx, userID, status); err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	return nil
}

// UpdatePhoto acknowledges a photo upload without storing it. Media
// storage lives outside this service.
func (s *Profile) UpdatePhoto(ctx context.Context, userID int64) error {
	s.logger.Info("Profile service: photo upload acknowledged",
		"user_id", userID)
	return nil
}
