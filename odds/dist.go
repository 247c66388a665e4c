// Package odds computes win-count probability distributions for
// early-stopping tournament structures, using the closed-form record
// probabilities from Frank Karsten's Channel Fireball event analysis.
package odds

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"arenaodds/models"
)

// Lose3MaxWins is the win cap of every stop-after-three-losses event
const Lose3MaxWins = 7

// DefaultLose2MaxWins is the win cap ProbLose2 assumes when none is given
const DefaultLose2MaxWins = 5

func checkWinRate(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return &DomainError{Param: "winRate", Value: p, Msg: "must be within [0,1]"}
	}
	return nil
}

// ProbLose3 returns the probability of finishing with exactly `wins` wins
// in an event that stops at three losses, capped at seven wins.
//
// Below the cap this is the negative binomial record probability: any
// ordering of `wins` wins and two losses, C(wins+2,2) of them, followed by
// the decisive third loss. At the cap it sums over clinching the seventh
// win after zero, one, or two losses.
func ProbLose3(winRate float64, wins int) (float64, error) {
	if err := checkWinRate(winRate); err != nil {
		return 0, err
	}
	if wins < 0 || wins > Lose3MaxWins {
		return 0, &DomainError{Param: "wins", Value: float64(wins), Msg: "must be within [0,7]"}
	}

	p, q := winRate, 1-winRate
	if wins == Lose3MaxWins {
		return math.Pow(p, 7) + 7*math.Pow(p, 6)*q*p + 28*math.Pow(p, 6)*q*q*p, nil
	}
	orderings := float64(combin.Binomial(wins+2, 2))
	return math.Pow(p, float64(wins)) * q * q * orderings * q, nil
}

// ProbLose2 returns the probability of finishing with exactly `wins` wins
// in an event that stops at two losses. maxWins <= 0 selects the default
// cap of five.
func ProbLose2(winRate float64, wins, maxWins int) (float64, error) {
	if maxWins <= 0 {
		maxWins = DefaultLose2MaxWins
	}
	if err := checkWinRate(winRate); err != nil {
		return 0, err
	}
	if wins < 0 || wins > maxWins {
		return 0, &DomainError{Param: "wins", Value: float64(wins), Msg: "must be within the rule's support"}
	}

	p, q := winRate, 1-winRate
	if wins == maxWins {
		return math.Pow(p, float64(wins)) + float64(wins)*math.Pow(p, float64(wins))*q, nil
	}
	return math.Pow(p, float64(wins)) * q * q * float64(wins+1), nil
}

// ProbFixedRounds returns the probability of exactly `wins` wins across a
// fixed number of rounds where every round is played out regardless of the
// running record: the plain binomial distribution.
func ProbFixedRounds(winRate float64, wins, rounds int) (float64, error) {
	if rounds <= 0 {
		return 0, &DomainError{Param: "rounds", Value: float64(rounds), Msg: "must be positive"}
	}
	if err := checkWinRate(winRate); err != nil {
		return 0, err
	}
	if wins < 0 || wins > rounds {
		return 0, &DomainError{Param: "wins", Value: float64(wins), Msg: "must be within [0,rounds]"}
	}

	p, q := winRate, 1-winRate
	orderings := float64(combin.Binomial(rounds, wins))
	return orderings * math.Pow(p, float64(wins)) * math.Pow(q, float64(rounds-wins)), nil
}

// Distribution computes the full win-count distribution for a stopping
// rule: one probability per win count from zero through the rule's cap.
func Distribution(rule models.StoppingRule, winRate float64) (models.WinCountDistribution, error) {
	maxWins := rule.MaxWins()
	dist := make(models.WinCountDistribution, maxWins+1)

	for wins := 0; wins <= maxWins; wins++ {
		var (
			prob float64
			err  error
		)
		switch {
		case rule.Kind == models.FixedRounds:
			prob, err = ProbFixedRounds(winRate, wins, rule.Rounds)
		case rule.Losses == 3:
			prob, err = ProbLose3(winRate, wins)
		case rule.Losses == 2:
			prob, err = ProbLose2(winRate, wins, rule.WinCap)
		default:
			err = &DomainError{Param: "losses", Value: float64(rule.Losses), Msg: "only 2- and 3-loss rules are modeled"}
		}
		if err != nil {
			return nil, err
		}
		dist[wins] = prob
	}
	return dist, nil
}

// ExpectedReward folds a distribution against a same-length reward table:
// the probability-weighted sum of payouts.
func ExpectedReward(dist models.WinCountDistribution, rewards []float64) (float64, error) {
	if len(dist) != len(rewards) {
		return 0, &LengthMismatchError{Distribution: len(dist), Rewards: len(rewards)}
	}
	var sum float64
	for i, p := range dist {
		sum += p * rewards[i]
	}
	return sum, nil
}
