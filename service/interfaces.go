package service

import (
	"context"

	"arenaodds/events"
	"arenaodds/models"
)

// ProfileRepository defines the interface for player profile data access
type ProfileRepository interface {
	// GetByDiscordID retrieves a profile by Discord ID, nil if none exists
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Profile, error)

	// Upsert creates or updates the stored win rate for a player
	Upsert(ctx context.Context, profile *models.Profile) error
}

// EvaluationRepository defines the interface for evaluation history access
type EvaluationRepository interface {
	// Create persists an evaluation row and fills in its ID and timestamp
	Create(ctx context.Context, eval *models.Evaluation) error

	// GetRecentByUser returns a user's latest evaluations, newest first
	GetRecentByUser(ctx context.Context, discordID int64, limit int) ([]*models.Evaluation, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork represents a transactional boundary over the repositories
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() ProfileRepository
	EvaluationRepository() EvaluationRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// OddsService computes win-count distributions and ROI expectations for
// the built-in event formats. It is stateless and safe for concurrent use.
type OddsService interface {
	// Distribution returns the win-count distribution for a format
	Distribution(format *models.EventFormat, winRate float64) (models.WinCountDistribution, error)

	// Summary computes the full ROI report for a format at a win rate
	Summary(format *models.EventFormat, winRate float64) (*models.ROISummary, error)

	// Sweep computes summaries across a range of win rates (inclusive ends)
	Sweep(format *models.EventFormat, from, to, step float64) ([]*models.ROISummary, error)

	// BreakEvenGems finds the win rate where expected gem rewards alone
	// cover the admission price
	BreakEvenGems(format *models.EventFormat) (float64, error)

	// BreakEven finds the win rate where total expected value (gems, packs,
	// and rares) covers the admission price. Fails with ErrAlwaysProfitable
	// or ErrNeverProfitable when the curve has no crossing.
	BreakEven(format *models.EventFormat) (float64, error)
}

// ProfileService manages stored win rates and evaluation history
type ProfileService interface {
	// GetProfile returns a player's stored profile, nil if none exists
	GetProfile(ctx context.Context, discordID int64) (*models.Profile, error)

	// SetWinRate creates or updates a player's stored win rate
	SetWinRate(ctx context.Context, discordID int64, username string, winRate float64) (*models.Profile, error)

	// RecordEvaluation persists the result of an EV lookup
	RecordEvaluation(ctx context.Context, discordID int64, summary *models.ROISummary) (*models.Evaluation, error)

	// RecentEvaluations returns a player's latest recorded lookups
	RecentEvaluations(ctx context.Context, discordID int64, limit int) ([]*models.Evaluation, error)
}
