package service

import (
	"context"
	"errors"
	"testing"

	"arenaodds/events"
	"arenaodds/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockedProfileService() (ProfileService, *MockUnitOfWork, *MockProfileRepository, *MockEvaluationRepository, *MockEventPublisher) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockProfileRepo := new(MockProfileRepository)
	mockEvalRepo := new(MockEvaluationRepository)
	mockPublisher := new(MockEventPublisher)

	mockUoW.SetRepositories(mockProfileRepo, mockEvalRepo, mockPublisher)
	mockFactory.On("Create").Return(mockUoW)

	return NewProfileService(mockFactory), mockUoW, mockProfileRepo, mockEvalRepo, mockPublisher
}

func TestProfileService_SetWinRate_NewProfile(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, mockProfileRepo, _, mockPublisher := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockProfileRepo.On("Upsert", ctx, mock.MatchedBy(func(p *models.Profile) bool {
		return p.DiscordID == 123456 && p.Username == "drafty" && p.WinRate == 0.62
	})).Return(nil)

	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		updated, ok := e.(events.ProfileUpdatedEvent)
		return ok && updated.DiscordID == 123456 &&
			updated.OldWinRate == 0 && updated.NewWinRate == 0.62
	})).Return()

	profile, err := service.SetWinRate(ctx, 123456, "drafty", 0.62)
	require.NoError(t, err)
	assert.Equal(t, 0.62, profile.WinRate)

	mockProfileRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	mockUoW.AssertCalled(t, "Commit")
}

func TestProfileService_SetWinRate_ExistingProfile(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, mockProfileRepo, _, mockPublisher := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	existing := &models.Profile{DiscordID: 123456, Username: "drafty", WinRate: 0.55}
	mockProfileRepo.On("GetByDiscordID", ctx, int64(123456)).Return(existing, nil)
	mockProfileRepo.On("Upsert", ctx, mock.AnythingOfType("*models.Profile")).Return(nil)

	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		updated, ok := e.(events.ProfileUpdatedEvent)
		return ok && updated.OldWinRate == 0.55 && updated.NewWinRate == 0.7
	})).Return()

	_, err := service.SetWinRate(ctx, 123456, "drafty", 0.7)
	require.NoError(t, err)

	mockPublisher.AssertExpectations(t)
}

func TestProfileService_SetWinRate_OutOfRange(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newMockedProfileService()

	_, err := service.SetWinRate(ctx, 123456, "drafty", 1.5)
	assert.Error(t, err)

	_, err = service.SetWinRate(ctx, 123456, "drafty", -0.1)
	assert.Error(t, err)
}

func TestProfileService_SetWinRate_UpsertFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, mockProfileRepo, _, _ := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByDiscordID", ctx, int64(123456)).Return(nil, nil)
	mockProfileRepo.On("Upsert", ctx, mock.AnythingOfType("*models.Profile")).
		Return(errors.New("connection lost"))

	_, err := service.SetWinRate(ctx, 123456, "drafty", 0.6)
	assert.Error(t, err)

	mockUoW.AssertCalled(t, "Rollback")
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, mockProfileRepo, _, _ := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	stored := &models.Profile{DiscordID: 123456, Username: "drafty", WinRate: 0.58}
	mockProfileRepo.On("GetByDiscordID", ctx, int64(123456)).Return(stored, nil)

	profile, err := service.GetProfile(ctx, 123456)
	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetProfile_Missing(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, mockProfileRepo, _, _ := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockProfileRepo.On("GetByDiscordID", ctx, int64(999)).Return(nil, nil)

	profile, err := service.GetProfile(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_RecordEvaluation(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, _, mockEvalRepo, mockPublisher := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockEvalRepo.On("Create", ctx, mock.MatchedBy(func(e *models.Evaluation) bool {
		return e.DiscordID == 123456 && e.FormatKey == "premier_draft" && e.WinRate == 0.6
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Evaluation).ID = 42
	})

	mockPublisher.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		recorded, ok := e.(events.EvaluationRecordedEvent)
		return ok && recorded.EvaluationID == 42 && recorded.FormatKey == "premier_draft"
	})).Return()

	summary := &models.ROISummary{
		FormatKey:  "premier_draft",
		WinRate:    0.6,
		TotalValue: 2100,
		Profit:     600,
		ROIRatio:   1.4,
	}
	eval, err := service.RecordEvaluation(ctx, 123456, summary)
	require.NoError(t, err)
	assert.Equal(t, int64(42), eval.ID)

	mockEvalRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProfileService_RecordEvaluation_NilSummary(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _ := newMockedProfileService()

	_, err := service.RecordEvaluation(ctx, 123456, nil)
	assert.Error(t, err)
}

func TestProfileService_RecentEvaluations_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	service, mockUoW, _, mockEvalRepo, _ := newMockedProfileService()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockEvalRepo.On("GetRecentByUser", ctx, int64(123456), 10).
		Return([]*models.Evaluation{}, nil)

	evals, err := service.RecentEvaluations(ctx, 123456, 0)
	require.NoError(t, err)
	assert.Empty(t, evals)

	mockEvalRepo.AssertExpectations(t)
}
