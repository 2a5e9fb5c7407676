package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// progressEvery is how many rounds pass between progress log lines
const progressEvery = 100000

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Seed     uint64
	BetCents int64
	Rules    game.Rules
	Strategy game.Strategy // nil selects the basic placeholder strategy
	Logger   *log.Logger
	Clock    quartz.Clock // nil selects the real clock; tests inject a mock
}

// Simulator plays many sequential rounds against one shoe and aggregates
// the outcomes. The shoe persists across rounds and reshuffles itself
// whenever it runs dry, so identical config always replays the identical
// draw sequence.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Strategy == nil {
		config.Strategy = bot.NewBasicBot(config.Logger)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns the aggregated statistics
func (s *Simulator) Run() (*statistics.SimStats, error) {
	if s.config.Rules.NumDecks < 1 {
		return nil, fmt.Errorf("invalid rules: %d decks", s.config.Rules.NumDecks)
	}

	shoe := deck.NewShoe(s.config.Rules.NumDecks, s.config.Seed)
	stats := &statistics.SimStats{}
	start := s.config.Clock.Now()

	for i := 0; i < s.config.Rounds; i++ {
		round := game.NewRound(s.config.Rules, shoe, s.config.Strategy, s.config.BetCents, s.config.Logger)
		result := round.Play()

		stats.Add(statistics.RoundRecord{
			Result:   result,
			Doubled:  round.Player().Doubled,
			BetCents: s.config.BetCents,
		})

		if (i+1)%progressEvery == 0 {
			elapsed := s.config.Clock.Since(start)
			perSec := 0.0
			if elapsed > 0 {
				perSec = float64(i+1) / elapsed.Seconds()
			}
			s.config.Logger.Info("simulation progress",
				"rounds", i+1,
				"rounds_per_sec", fmt.Sprintf("%.0f", perSec),
				"mean_bets", fmt.Sprintf("%.4f", stats.Mean()),
				"shoe_remaining", shoe.Remaining())
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// RunSimulation is a convenience wrapper for a one-shot run with a named
// built-in strategy
func RunSimulation(rounds int, rules game.Rules, seed uint64, betCents int64, strategy string, logger *log.Logger) (*statistics.SimStats, error) {
	strat, err := bot.New(strategy, randutil.NewFromUint64(seed), logger)
	if err != nil {
		return nil, err
	}
	return New(Config{
		Rounds:   rounds,
		Seed:     seed,
		BetCents: betCents,
		Rules:    rules,
		Strategy: strat,
		Logger:   logger,
	}).Run()
}
