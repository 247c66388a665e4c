package bot

import (
	"testing"
	"time"

	"arenaodds/models"
	"arenaodds/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGems(t *testing.T) {
	assert.Equal(t, "0", FormatGems(0))
	assert.Equal(t, "499", FormatGems(499.4))
	assert.Equal(t, "1,345", FormatGems(1344.9))
	assert.Equal(t, "-1,200", FormatGems(-1200))
	assert.Equal(t, "1,234,567", FormatGems(1234567))
}

func TestFormatWinRate(t *testing.T) {
	assert.Equal(t, "60.0%", FormatWinRate(0.6))
	assert.Equal(t, "74.7%", FormatWinRate(0.7469))
}

func TestBuildSummaryEmbed(t *testing.T) {
	summary := &models.ROISummary{
		FormatKey:     "quick_draft",
		WinRate:       0.6,
		Admission:     750,
		ExpectedWins:  3.98,
		ExpectedGems:  499.2,
		ExpectedPacks: 1.23,
		BonusRares:    3,
		TotalValue:    1345.4,
		Profit:        595.4,
		ROIRatio:      1.79,
	}

	embed := buildSummaryEmbed(models.QuickDraft, summary)
	assert.Contains(t, embed.Title, "Quick Draft")
	assert.Contains(t, embed.Title, "60.0%")
	assert.Equal(t, colorProfit, embed.Color)
	require.Len(t, embed.Fields, 6)
	assert.Equal(t, "4.0", embed.Fields[0].Value)
	assert.Equal(t, "499", embed.Fields[1].Value)
	assert.Contains(t, embed.Fields[5].Value, "+595")

	summary.Profit = -300
	embed = buildSummaryEmbed(models.QuickDraft, summary)
	assert.Equal(t, colorLoss, embed.Color)
	assert.Contains(t, embed.Fields[5].Value, "-300")
}

func TestBuildOddsEmbed(t *testing.T) {
	dist := models.WinCountDistribution{0.25, 0.5, 0.25}

	embed := buildOddsEmbed(models.TradDraft, 0.5, dist)
	assert.Contains(t, embed.Title, "Traditional Draft")
	assert.Contains(t, embed.Description, "Wins")
	assert.Contains(t, embed.Description, "50.0%")
	assert.Contains(t, embed.Description, "100.0%")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "1.00")
}

func TestBuildSweepEmbed(t *testing.T) {
	rows := []*models.ROISummary{
		{WinRate: 0.4, ExpectedWins: 1.9, ExpectedGems: 300, TotalValue: 1100, Profit: -400, ROIRatio: 0.73},
		{WinRate: 0.5, ExpectedWins: 2.7, ExpectedGems: 500, TotalValue: 1500, Profit: 0, ROIRatio: 1.0},
	}

	embed := buildSweepEmbed(models.PremierDraft, rows)
	assert.Contains(t, embed.Description, "40%")
	assert.Contains(t, embed.Description, "50%")
	assert.Contains(t, embed.Description, "1,100")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "1,500")
}

func TestBuildBreakEvenEmbed(t *testing.T) {
	embed := buildBreakEvenEmbed(models.PremierDraft, 0.678, 0.512, nil)
	assert.Contains(t, embed.Description, "67.8%")
	assert.Contains(t, embed.Description, "51.2%")

	embed = buildBreakEvenEmbed(models.QuickDraft, 0.7469, 0, service.ErrAlwaysProfitable)
	assert.Contains(t, embed.Description, "74.7%")
	assert.Contains(t, embed.Description, service.ErrAlwaysProfitable.Error())
}

func TestBuildHistoryEmbed(t *testing.T) {
	embed := buildHistoryEmbed("drafty", nil)
	assert.Contains(t, embed.Description, "No evaluations")

	evals := []*models.Evaluation{
		{
			FormatKey: "premier_draft",
			WinRate:   0.6,
			Profit:    595,
			ROIRatio:  1.79,
			CreatedAt: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
		},
	}
	embed = buildHistoryEmbed("drafty", evals)
	assert.Contains(t, embed.Title, "drafty")
	assert.Contains(t, embed.Description, "Premier Draft")
	assert.Contains(t, embed.Description, "Mar 14")
}
