package service

import (
	"errors"
	"fmt"

	"arenaodds/config"
	"arenaodds/models"
	"arenaodds/odds"
)

// Break-even search outcomes for formats whose value curve never crosses
// the admission price on [0,1].
var (
	ErrAlwaysProfitable = errors.New("expected value exceeds admission at every win rate")
	ErrNeverProfitable  = errors.New("expected value never reaches admission")
)

const breakEvenIterations = 60

type oddsService struct {
	packGemValue float64
}

// NewOddsService creates a new odds service using the configured pack value
func NewOddsService(cfg *config.Config) OddsService {
	return &oddsService{
		packGemValue: cfg.PackGemValue,
	}
}

func (s *oddsService) Distribution(format *models.EventFormat, winRate float64) (models.WinCountDistribution, error) {
	if format == nil {
		return nil, fmt.Errorf("no event format given")
	}
	dist, err := odds.Distribution(format.Rule, winRate)
	if err != nil {
		return nil, fmt.Errorf("failed to compute distribution for %s: %w", format.Key, err)
	}
	return dist, nil
}

func (s *oddsService) Summary(format *models.EventFormat, winRate float64) (*models.ROISummary, error) {
	dist, err := s.Distribution(format, winRate)
	if err != nil {
		return nil, err
	}

	gems, err := odds.ExpectedReward(dist, format.GemRewards)
	if err != nil {
		return nil, fmt.Errorf("gem rewards for %s: %w", format.Key, err)
	}
	packs, err := odds.ExpectedReward(dist, format.PackRewards)
	if err != nil {
		return nil, fmt.Errorf("pack rewards for %s: %w", format.Key, err)
	}

	// Unopened packs and drafted rares are both valued at the gem price of
	// a pack. This likely overstates rares a little; see the reference
	// analysis for the caveats.
	totalValue := gems + s.packGemValue*(packs+format.BonusRares)

	return &models.ROISummary{
		FormatKey:     format.Key,
		WinRate:       winRate,
		Admission:     format.Admission,
		ExpectedWins:  dist.ExpectedWins(),
		ExpectedGems:  gems,
		ExpectedPacks: packs,
		BonusRares:    format.BonusRares,
		TotalValue:    totalValue,
		Profit:        totalValue - format.Admission,
		ROIRatio:      totalValue / format.Admission,
	}, nil
}

func (s *oddsService) Sweep(format *models.EventFormat, from, to, step float64) ([]*models.ROISummary, error) {
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %v", step)
	}
	if from > to {
		return nil, fmt.Errorf("sweep range is empty: from %v to %v", from, to)
	}

	var summaries []*models.ROISummary
	// Half a step of slack keeps the inclusive upper end despite float drift
	for winRate := from; winRate <= to+step/2; winRate += step {
		r := winRate
		if r > 1 {
			r = 1
		}
		summary, err := s.Summary(format, r)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *oddsService) BreakEvenGems(format *models.EventFormat) (float64, error) {
	return s.breakEven(format, func(summary *models.ROISummary) float64 {
		return summary.ExpectedGems
	})
}

func (s *oddsService) BreakEven(format *models.EventFormat) (float64, error) {
	return s.breakEven(format, func(summary *models.ROISummary) float64 {
		return summary.TotalValue
	})
}

// breakEven bisects for the win rate where the chosen value component
// equals the admission price. Expected value is non-decreasing in the win
// rate for every built-in format, so a sign check at the endpoints decides
// whether a crossing exists.
func (s *oddsService) breakEven(format *models.EventFormat, value func(*models.ROISummary) float64) (float64, error) {
	valueAt := func(winRate float64) (float64, error) {
		summary, err := s.Summary(format, winRate)
		if err != nil {
			return 0, err
		}
		return value(summary) - format.Admission, nil
	}

	lo, hi := 0.0, 1.0
	atLo, err := valueAt(lo)
	if err != nil {
		return 0, err
	}
	atHi, err := valueAt(hi)
	if err != nil {
		return 0, err
	}

	if atLo >= 0 {
		return 0, ErrAlwaysProfitable
	}
	if atHi < 0 {
		return 0, ErrNeverProfitable
	}

	for i := 0; i < breakEvenIterations; i++ {
		mid := (lo + hi) / 2
		atMid, err := valueAt(mid)
		if err != nil {
			return 0, err
		}
		if atMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
