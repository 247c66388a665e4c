package testutil

import (
	"arenaodds/models"
)

// CreateTestProfile creates a test profile with default values
func CreateTestProfile(discordID int64, username string) *models.Profile {
	return &models.Profile{
		DiscordID: discordID,
		Username:  username,
		WinRate:   0.5,
	}
}

// CreateTestProfileWithWinRate creates a test profile with a specific win rate
func CreateTestProfileWithWinRate(discordID int64, username string, winRate float64) *models.Profile {
	profile := CreateTestProfile(discordID, username)
	profile.WinRate = winRate
	return profile
}

// CreateTestEvaluation creates a test evaluation record
func CreateTestEvaluation(discordID int64, formatKey string) *models.Evaluation {
	return &models.Evaluation{
		DiscordID:     discordID,
		FormatKey:     formatKey,
		WinRate:       0.6,
		ExpectedWins:  3.96,
		ExpectedGems:  499,
		ExpectedPacks: 1.2,
		TotalValue:    1345,
		Profit:        595,
		ROIRatio:      1.79,
	}
}

// CreateTestEvaluationWithWinRate creates a test evaluation at a specific win rate
func CreateTestEvaluationWithWinRate(discordID int64, formatKey string, winRate float64) *models.Evaluation {
	eval := CreateTestEvaluation(discordID, formatKey)
	eval.WinRate = winRate
	return eval
}
