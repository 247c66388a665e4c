package models

import "time"

// Profile stores a player's assumed win rate so EV commands can default to
// it when no explicit rate is given.
type Profile struct {
	DiscordID int64
	Username  string
	WinRate   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
