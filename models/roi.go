package models

// WinCountDistribution holds the probability of finishing an event with
// exactly k wins, indexed by k. Entries sum to 1 for any valid win rate.
type WinCountDistribution []float64

// ExpectedWins returns the mean of the distribution
func (d WinCountDistribution) ExpectedWins() float64 {
	var sum float64
	for wins, p := range d {
		sum += float64(wins) * p
	}
	return sum
}

// ROISummary is the consolidated expectation report for one format at one
// win rate. All values are unrounded; presentation layers round for display.
type ROISummary struct {
	FormatKey     string
	WinRate       float64
	Admission     float64
	ExpectedWins  float64
	ExpectedGems  float64
	ExpectedPacks float64
	BonusRares    float64
	TotalValue    float64
	Profit        float64
	ROIRatio      float64
}
