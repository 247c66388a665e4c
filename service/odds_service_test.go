package service

import (
	"testing"

	"arenaodds/config"
	"arenaodds/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOddsService() OddsService {
	return NewOddsService(&config.Config{PackGemValue: 200})
}

func TestOddsService_Summary_QuickDraft(t *testing.T) {
	svc := newTestOddsService()

	// Reference numbers from the Channel Fireball Quick Draft breakdown
	summary, err := svc.Summary(models.QuickDraft, 0.6)
	require.NoError(t, err)

	assert.Equal(t, "quick_draft", summary.FormatKey)
	assert.Equal(t, 0.6, summary.WinRate)
	assert.Equal(t, 750.0, summary.Admission)
	assert.InDelta(t, 4.0, summary.ExpectedWins, 0.05)
	assert.InDelta(t, 499, summary.ExpectedGems, 1)
	assert.InDelta(t, 1345, summary.TotalValue, 2)
	assert.InDelta(t, 595, summary.Profit, 2)
	assert.InDelta(t, 1.79, summary.ROIRatio, 0.01)
}

func TestOddsService_Summary_SealedGems(t *testing.T) {
	svc := newTestOddsService()

	summary, err := svc.Summary(models.Sealed, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1002, summary.ExpectedGems, 1)
}

func TestOddsService_Summary_MonotonicInWinRate(t *testing.T) {
	svc := newTestOddsService()

	for _, format := range models.Formats {
		prev := -1.0
		for _, winRate := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
			summary, err := svc.Summary(format, winRate)
			require.NoError(t, err)
			assert.Greater(t, summary.TotalValue, prev,
				"%s at win rate %v", format.Key, winRate)
			prev = summary.TotalValue
		}
	}
}

func TestOddsService_Summary_NilFormat(t *testing.T) {
	svc := newTestOddsService()

	_, err := svc.Summary(nil, 0.5)
	assert.Error(t, err)
}

func TestOddsService_Summary_RewardTableMismatch(t *testing.T) {
	svc := newTestOddsService()

	broken := &models.EventFormat{
		Key:         "broken",
		Rule:        models.LoseN(3, 7),
		GemRewards:  []float64{50, 100},
		PackRewards: []float64{1, 1},
		Admission:   750,
	}
	_, err := svc.Summary(broken, 0.5)
	assert.Error(t, err)
}

func TestOddsService_Sweep(t *testing.T) {
	svc := newTestOddsService()

	rows, err := svc.Sweep(models.PremierDraft, 0.4, 0.8, 0.1)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, 0.4, rows[0].WinRate)
	assert.InDelta(t, 0.8, rows[4].WinRate, 1e-9)

	// Inclusive upper bound despite accumulated float drift
	rows, err = svc.Sweep(models.PremierDraft, 0.4, 0.7, 0.05)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}

func TestOddsService_Sweep_InvalidRange(t *testing.T) {
	svc := newTestOddsService()

	_, err := svc.Sweep(models.PremierDraft, 0.4, 0.8, 0)
	assert.Error(t, err)

	_, err = svc.Sweep(models.PremierDraft, 0.8, 0.4, 0.1)
	assert.Error(t, err)
}

func TestOddsService_BreakEvenGems(t *testing.T) {
	svc := newTestOddsService()

	// Reference gems-only break-even rates
	expected := map[*models.EventFormat]float64{
		models.QuickDraft:   0.7469,
		models.PremierDraft: 0.678,
		models.TradDraft:    0.707,
		models.Sealed:       0.8101,
		models.TradSealed:   0.8412,
	}

	for format, want := range expected {
		got, err := svc.BreakEvenGems(format)
		require.NoError(t, err, format.Key)
		assert.InDelta(t, want, got, 0.001, format.Key)
	}
}

func TestOddsService_BreakEven_TotalValue(t *testing.T) {
	svc := newTestOddsService()

	// Quick Draft pays more than admission even at a zero win rate once
	// packs and rares are counted
	_, err := svc.BreakEven(models.QuickDraft)
	assert.ErrorIs(t, err, ErrAlwaysProfitable)

	// Premier Draft has a genuine crossing
	got, err := svc.BreakEven(models.PremierDraft)
	require.NoError(t, err)

	below, err := svc.Summary(models.PremierDraft, got-0.01)
	require.NoError(t, err)
	above, err := svc.Summary(models.PremierDraft, got+0.01)
	require.NoError(t, err)
	assert.Less(t, below.TotalValue, below.Admission)
	assert.Greater(t, above.TotalValue, above.Admission)
}

func TestOddsService_Distribution(t *testing.T) {
	svc := newTestOddsService()

	dist, err := svc.Distribution(models.TradDraft, 0.5)
	require.NoError(t, err)
	require.Len(t, dist, 4)

	var sum float64
	for _, p := range dist {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
