package repository

import (
	"context"
	"fmt"

	"arenaodds/database"
	"arenaodds/models"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository implements the service.ProfileRepository interface
type ProfileRepository struct {
	q queryable
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{q: db.Pool}
}

// newProfileRepositoryWithTx creates a new profile repository with a transaction
func newProfileRepositoryWithTx(tx queryable) *ProfileRepository {
	return &ProfileRepository{q: tx}
}

// GetByDiscordID retrieves a profile by Discord ID, nil if none exists
func (r *ProfileRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Profile, error) {
	query := `
		SELECT discord_id, username, win_rate, created_at, updated_at
		FROM profiles
		WHERE discord_id = $1
	`

	var profile models.Profile
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&profile.DiscordID,
		&profile.Username,
		&profile.WinRate,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for discord ID %d: %w", discordID, err)
	}

	return &profile, nil
}

// Upsert creates or updates the stored win rate for a player
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (discord_id, username, win_rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id) DO UPDATE
		SET username = EXCLUDED.username,
		    win_rate = EXCLUDED.win_rate,
		    updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, profile.DiscordID, profile.Username, profile.WinRate).Scan(
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile for discord ID %d: %w", profile.DiscordID, err)
	}

	return nil
}
