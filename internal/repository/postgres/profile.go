package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/sociable-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// Get reads the profile joined from the identity side, so a user without
// a profile row still yields a fully-defaulted profile. ErrNotFound means
// the identity itself is absent.
func (r *ProfileRepository) Get(ctx context.Context, userID int64) (model.Profile, error) {
	query := `SELECT
				u.id,
				COALESCE(p.about_me, ''),
				COALESCE(p.contacts, '{}'::jsonb),
				COALESCE(p.looking_for_a_job, FALSE),
				COALESCE(p.looking_for_a_job_description, ''),
				COALESCE(p.full_name, u.username),
				COALESCE(p.status, ''),
				p.photo_small_url,
				p.photo_large_url
			  FROM users u
			  LEFT JOIN profiles p ON p.user_id = u.id
			  WHERE u.id = $1`

	var profile model.Profile
	var contacts []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.AboutMe, &contacts, &profile.LookingForAJob,
		&profile.LookingForAJobDescription, &profile.FullName, &profile.Status,
		&profile.Photos.Small, &profile.Photos.Large,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(contacts, &profile.Contacts); err != nil {
		return model.Profile{}, fmt.Errorf("failed to unmarshal profile contacts: %w", err)
	}

	return profile, nil
}

// Upsert writes the full-profile columns. Contacts are serialized from the
// fixed-key struct, so omitted links become explicit nulls.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, input model.ProfileUpdate) error {
	contacts, err := json.Marshal(input.Contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal profile contacts: %w", err)
	}

	query := `INSERT INTO profiles (user_id, about_me, contacts, looking_for_a_job,
									looking_for_a_job_description, full_name)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (user_id)
			  DO UPDATE SET
				about_me = EXCLUDED.about_me,
				contacts = EXCLUDED.contacts,
				looking_for_a_job = EXCLUDED.looking_for_a_job,
				looking_for_a_job_description = EXCLUDED.looking_for_a_job_description,
				full_name = EXCLUDED.full_name`

	_, err = r.db.Exec(ctx, query,
		userID, input.AboutMe, contacts, input.LookingForAJob,
		input.LookingForAJobDescription, input.FullName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// GetStatus returns an empty string when the identity or profile row is
// absent; status polling never errors on a miss.
func (r *ProfileRepository) GetStatus(ctx context.Context, userID int64) (string, error) {
	query := `SELECT COALESCE(p.status, '')
			  FROM users u
			  LEFT JOIN profiles p ON p.user_id = u.id
			  WHERE u.id = $1`

	var status string
	err := r.db.QueryRow(ctx, query, userID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get status: %w", err)
	}

	return status, nil
}

// SetStatus upserts only the status column so it never clobbers the rest
// of the profile.
func (r *ProfileRepository) SetStatus(ctx context.Context, userID int64, status string) error {
	query := `INSERT INTO profiles (user_id, status)
			  VALUES ($1, $2)
			  ON CONFLICT (user_id)
			  DO UPDATE SET status = EXCLUDED.status`

	_, err := r.db.Exec(ctx, query, userID, status)
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	return nil
}
