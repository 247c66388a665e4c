package models

// StopKind identifies how an event terminates
type StopKind int

const (
	// StopAfterLosses ends the event once the player accumulates a fixed
	// number of losses, or hits the win cap, whichever comes first
	StopAfterLosses StopKind = iota
	// FixedRounds plays every round regardless of outcome
	FixedRounds
)

// StoppingRule is the termination condition of a tournament format.
// Losses and WinCap apply to StopAfterLosses; Rounds applies to FixedRounds.
type StoppingRule struct {
	Kind   StopKind
	Losses int
	WinCap int
	Rounds int
}

// MaxWins returns the largest reachable win count under the rule, i.e. the
// upper bound of the distribution's support.
func (r StoppingRule) MaxWins() int {
	if r.Kind == FixedRounds {
		return r.Rounds
	}
	return r.WinCap
}

// LoseN builds a loss-capped stopping rule
func LoseN(losses, maxWins int) StoppingRule {
	return StoppingRule{Kind: StopAfterLosses, Losses: losses, WinCap: maxWins}
}

// PlayAll builds a fixed-round stopping rule
func PlayAll(rounds int) StoppingRule {
	return StoppingRule{Kind: FixedRounds, Rounds: rounds}
}

// EventFormat describes one supported tournament type: its stopping rule,
// reward tables indexed by win count, admission price in gems, and the
// assumed average number of bonus rares picked up along the way.
// Instances are process-wide read-only constants; reward tables must have
// exactly Rule.MaxWins()+1 entries.
type EventFormat struct {
	Key         string
	Name        string
	Rule        StoppingRule
	GemRewards  []float64
	PackRewards []float64
	Admission   float64
	BonusRares  float64
}

// Built-in formats. Reward schedules and admission prices follow the
// Channel Fireball event breakdown; traditional formats use per-match win
// rates, the others per-game.
var (
	QuickDraft = &EventFormat{
		Key:         "quick_draft",
		Name:        "Quick Draft",
		Rule:        LoseN(3, 7),
		GemRewards:  []float64{50, 100, 200, 300, 450, 650, 850, 950},
		PackRewards: []float64{1, 1, 1, 1, 1, 1, 1, 2},
		Admission:   750,
		BonusRares:  3,
	}

	PremierDraft = &EventFormat{
		Key:         "premier_draft",
		Name:        "Premier Draft",
		Rule:        LoseN(3, 7),
		GemRewards:  []float64{50, 100, 250, 1000, 1400, 1600, 1800, 2200},
		PackRewards: []float64{1, 1, 2, 2, 3, 4, 5, 6},
		Admission:   1500,
		BonusRares:  3,
	}

	TradDraft = &EventFormat{
		Key:         "trad_draft",
		Name:        "Traditional Draft",
		Rule:        PlayAll(3),
		GemRewards:  []float64{0, 0, 1000, 3000},
		PackRewards: []float64{1, 1, 4, 6},
		Admission:   1500,
		BonusRares:  3,
	}

	// Sealed events hand out the six event packs as the prize pool floor;
	// three of those are counted here as unopened pack rewards.
	Sealed = &EventFormat{
		Key:         "sealed",
		Name:        "Sealed",
		Rule:        LoseN(3, 7),
		GemRewards:  []float64{200, 400, 600, 1200, 1400, 1600, 2000, 2200},
		PackRewards: []float64{3, 3, 3, 3, 3, 3, 3, 3},
		Admission:   2000,
		BonusRares:  3,
	}

	TradSealed = &EventFormat{
		Key:         "trad_sealed",
		Name:        "Traditional Sealed",
		Rule:        LoseN(2, 4),
		GemRewards:  []float64{200, 500, 1200, 1800, 2200},
		PackRewards: []float64{3, 3, 3, 3, 3},
		Admission:   2000,
		BonusRares:  3,
	}
)

// Formats lists every built-in format in display order
var Formats = []*EventFormat{QuickDraft, PremierDraft, TradDraft, Sealed, TradSealed}

// FormatByKey looks up a built-in format by its key. Returns nil if the key
// is unknown.
func FormatByKey(key string) *EventFormat {
	for _, f := range Formats {
		if f.Key == key {
			return f
		}
	}
	return nil
}
