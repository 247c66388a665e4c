package service

import (
	"context"
	"fmt"

	"arenaodds/events"
	"arenaodds/models"
)

type profileService struct {
	uowFactory UnitOfWorkFactory
}

// NewProfileService creates a new profile service
func NewProfileService(uowFactory UnitOfWorkFactory) ProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func (s *profileService) GetProfile(ctx context.Context, discordID int64) (*models.Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	profile, err := uow.ProfileRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return profile, nil
}

func (s *profileService) SetWinRate(ctx context.Context, discordID int64, username string, winRate float64) (*models.Profile, error) {
	if winRate < 0 || winRate > 1 {
		return nil, fmt.Errorf("win rate must be between 0 and 1, got %v", winRate)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	existing, err := uow.ProfileRepository().GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var oldWinRate float64
	if existing != nil {
		oldWinRate = existing.WinRate
	}

	profile := &models.Profile{
		DiscordID: discordID,
		Username:  username,
		WinRate:   winRate,
	}
	if err := uow.ProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	uow.EventBus().Publish(events.ProfileUpdatedEvent{
		DiscordID:  discordID,
		Username:   username,
		OldWinRate: oldWinRate,
		NewWinRate: winRate,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return profile, nil
}

func (s *profileService) RecordEvaluation(ctx context.Context, discordID int64, summary *models.ROISummary) (*models.Evaluation, error) {
	if summary == nil {
		return nil, fmt.Errorf("no summary given")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	eval := &models.Evaluation{
		DiscordID:     discordID,
		FormatKey:     summary.FormatKey,
		WinRate:       summary.WinRate,
		ExpectedWins:  summary.ExpectedWins,
		ExpectedGems:  summary.ExpectedGems,
		ExpectedPacks: summary.ExpectedPacks,
		TotalValue:    summary.TotalValue,
		Profit:        summary.Profit,
		ROIRatio:      summary.ROIRatio,
	}

	if err := uow.EvaluationRepository().Create(ctx, eval); err != nil {
		return nil, fmt.Errorf("failed to create evaluation record: %w", err)
	}

	uow.EventBus().Publish(events.EvaluationRecordedEvent{
		EvaluationID: eval.ID,
		DiscordID:    discordID,
		FormatKey:    eval.FormatKey,
		WinRate:      eval.WinRate,
		ROIRatio:     eval.ROIRatio,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return eval, nil
}

func (s *profileService) RecentEvaluations(ctx context.Context, discordID int64, limit int) ([]*models.Evaluation, error) {
	if limit <= 0 {
		limit = 10
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	evals, err := uow.EvaluationRepository().GetRecentByUser(ctx, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent evaluations: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return evals, nil
}
