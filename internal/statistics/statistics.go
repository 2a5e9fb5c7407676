package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjackforbots/internal/game"
)

// RoundRecord captures one settled round for aggregation
type RoundRecord struct {
	Result   game.RoundResult
	Doubled  bool  // the stake was 2x the bet
	BetCents int64 // base bet for the round
}

// Net returns the round's profit or loss in cents: payout minus the stake
// actually committed.
func (r RoundRecord) Net() int64 {
	stake := r.BetCents
	if r.Doubled {
		stake *= 2
	}
	return r.Result.PayoutCents - stake
}

// SimStats is the running aggregate over a simulation run. Counters only
// ever increase; a blackjack also counts as a win for its side, and the
// busts counter covers both player and dealer busts.
type SimStats struct {
	Rounds           int
	PlayerWins       int
	DealerWins       int
	Pushes           int
	PlayerBlackjacks int
	DealerBlackjacks int
	Busts            int
	Surrenders       int
	NetCents         int64

	Values []float64 // per-round net in bet units, for spread statistics
}

// Add incorporates a settled round into the aggregate
func (s *SimStats) Add(rec RoundRecord) {
	net := rec.Net()
	s.Rounds++
	s.NetCents += net
	if rec.BetCents > 0 {
		s.Values = append(s.Values, float64(net)/float64(rec.BetCents))
	}

	switch rec.Result.Outcome {
	case game.PlayerBlackjack:
		s.PlayerBlackjacks++
		s.PlayerWins++
	case game.DealerBlackjack:
		s.DealerBlackjacks++
		s.DealerWins++
	case game.DealerBust:
		s.PlayerWins++
		s.Busts++
	case game.PlayerBust:
		s.DealerWins++
		s.Busts++
	case game.PlayerWin:
		s.PlayerWins++
	case game.DealerWin:
		s.DealerWins++
	case game.Push:
		s.Pushes++
	case game.PlayerSurrender:
		s.Surrenders++
	}
}

// Mean returns the mean net result in bets per round
func (s *SimStats) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance returns the sample variance of per-round results
func (s *SimStats) Variance() float64 {
	n := len(s.Values)
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	sum := 0.0
	for _, v := range s.Values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n-1)
}

// StdDev returns the sample standard deviation of per-round results
func (s *SimStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *SimStats) StdError() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(len(s.Values)))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *SimStats) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-round result
func (s *SimStats) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the p-th percentile (0..1) of per-round results,
// linearly interpolated
func (s *SimStats) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the outcome ledger: every round lands in exactly one of
// wins, pushes or surrenders, and the blackjack counters never exceed the
// win counters that contain them.
func (s *SimStats) Validate() error {
	settled := s.PlayerWins + s.DealerWins + s.Pushes + s.Surrenders
	if settled != s.Rounds {
		return fmt.Errorf("ledger mismatch: %d wins+pushes+surrenders for %d rounds", settled, s.Rounds)
	}
	if s.PlayerBlackjacks > s.PlayerWins {
		return fmt.Errorf("player blackjacks (%d) exceed player wins (%d)", s.PlayerBlackjacks, s.PlayerWins)
	}
	if s.DealerBlackjacks > s.DealerWins {
		return fmt.Errorf("dealer blackjacks (%d) exceed dealer wins (%d)", s.DealerBlackjacks, s.DealerWins)
	}
	if s.Busts > s.Rounds {
		return fmt.Errorf("busts (%d) exceed rounds (%d)", s.Busts, s.Rounds)
	}
	return nil
}
