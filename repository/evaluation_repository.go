package repository

import (
	"context"
	"fmt"

	"arenaodds/database"
	"arenaodds/models"
)

// EvaluationRepository implements the service.EvaluationRepository interface
type EvaluationRepository struct {
	q queryable
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *database.DB) *EvaluationRepository {
	return &EvaluationRepository{q: db.Pool}
}

// newEvaluationRepositoryWithTx creates a new evaluation repository with a transaction
func newEvaluationRepositoryWithTx(tx queryable) *EvaluationRepository {
	return &EvaluationRepository{q: tx}
}

// Create persists an evaluation row and fills in its ID and timestamp
func (r *EvaluationRepository) Create(ctx context.Context, eval *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (
			discord_id, format_key, win_rate,
			expected_wins, expected_gems, expected_packs,
			total_value, profit, roi_ratio
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		eval.DiscordID,
		eval.FormatKey,
		eval.WinRate,
		eval.ExpectedWins,
		eval.ExpectedGems,
		eval.ExpectedPacks,
		eval.TotalValue,
		eval.Profit,
		eval.ROIRatio,
	).Scan(&eval.ID, &eval.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create evaluation for discord ID %d: %w", eval.DiscordID, err)
	}

	return nil
}

// GetRecentByUser returns a user's latest evaluations, newest first
func (r *EvaluationRepository) GetRecentByUser(ctx context.Context, discordID int64, limit int) ([]*models.Evaluation, error) {
	query := `
		SELECT id, discord_id, format_key, win_rate,
		       expected_wins, expected_gems, expected_packs,
		       total_value, profit, roi_ratio, created_at
		FROM evaluations
		WHERE discord_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluations for discord ID %d: %w", discordID, err)
	}
	defer rows.Close()

	var evals []*models.Evaluation
	for rows.Next() {
		var eval models.Evaluation
		err := rows.Scan(
			&eval.ID,
			&eval.DiscordID,
			&eval.FormatKey,
			&eval.WinRate,
			&eval.ExpectedWins,
			&eval.ExpectedGems,
			&eval.ExpectedPacks,
			&eval.TotalValue,
			&eval.Profit,
			&eval.ROIRatio,
			&eval.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evals = append(evals, &eval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return evals, nil
}
