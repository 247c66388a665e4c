package models

import "time"

// Evaluation is one recorded EV lookup: who asked, for which format, at
// what win rate, and the headline numbers they were shown.
type Evaluation struct {
	ID            int64
	DiscordID     int64
	FormatKey     string
	WinRate       float64
	ExpectedWins  float64
	ExpectedGems  float64
	ExpectedPacks float64
	TotalValue    float64
	Profit        float64
	ROIRatio      float64
	CreatedAt     time.Time
}
