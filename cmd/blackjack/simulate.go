package main

import (
	"fmt"
	"time"

	"github.com/lox/blackjackforbots/cmd/blackjack/shared"
	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/simulator"
	"github.com/lox/blackjackforbots/internal/statistics"
)

type SimulateCmd struct {
	Rounds   int    `help:"Number of rounds to simulate (overrides config)"`
	Seed     uint64 `help:"Shoe seed (overrides config)"`
	Bet      int64  `help:"Bet per round in cents (overrides config)"`
	Strategy string `help:"Strategy: basic, stand or rand (overrides config)"`
	Decks    int    `help:"Number of decks in the shoe (overrides config)"`
	Config   string `type:"path" help:"HCL rules/simulation file"`
	Verbose  bool   `help:"Per-round debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Verbose)

	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Rounds > 0 {
		cfg.Simulation.Rounds = c.Rounds
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Bet > 0 {
		cfg.Simulation.Bet = c.Bet
	}
	if c.Strategy != "" {
		cfg.Simulation.Strategy = c.Strategy
	}
	if c.Decks > 0 {
		cfg.Rules.NumDecks = c.Decks
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	strat, err := bot.New(cfg.Simulation.Strategy, randutil.NewFromUint64(cfg.Simulation.Seed), logger)
	if err != nil {
		return err
	}

	fmt.Printf("Simulating %d rounds of %s (decks: %d, seed: %d, bet: %d)\n",
		cfg.Simulation.Rounds, cfg.Simulation.Strategy,
		cfg.Rules.NumDecks, cfg.Simulation.Seed, cfg.Simulation.Bet)

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Rounds:   cfg.Simulation.Rounds,
		Seed:     cfg.Simulation.Seed,
		BetCents: cfg.Simulation.Bet,
		Rules:    cfg.Rules,
		Strategy: strat,
		Logger:   logger,
	}).Run()
	if err != nil {
		return err
	}
	printSummary(stats, time.Since(start))
	return nil
}

func printSummary(stats *statistics.SimStats, duration time.Duration) {
	pct := func(n int) float64 {
		if stats.Rounds == 0 {
			return 0
		}
		return float64(n) / float64(stats.Rounds) * 100
	}

	fmt.Printf("\n=== OUTCOMES (%d rounds in %v) ===\n", stats.Rounds, duration.Round(time.Millisecond))
	fmt.Printf("Player wins:       %8d (%.2f%%), of which blackjacks %d\n",
		stats.PlayerWins, pct(stats.PlayerWins), stats.PlayerBlackjacks)
	fmt.Printf("Dealer wins:       %8d (%.2f%%), of which blackjacks %d\n",
		stats.DealerWins, pct(stats.DealerWins), stats.DealerBlackjacks)
	fmt.Printf("Pushes:            %8d (%.2f%%)\n", stats.Pushes, pct(stats.Pushes))
	fmt.Printf("Surrenders:        %8d (%.2f%%)\n", stats.Surrenders, pct(stats.Surrenders))
	fmt.Printf("Busts (any side):  %8d (%.2f%%)\n", stats.Busts, pct(stats.Busts))

	mean := stats.Mean()
	low, high := stats.ConfidenceInterval95()
	fmt.Printf("\n=== BANKROLL ===\n")
	fmt.Printf("Net: $%.2f over %d rounds\n", float64(stats.NetCents)/100, stats.Rounds)
	fmt.Printf("Mean: %.4f bets/round (95%% CI [%.4f, %.4f])\n", mean, low, high)
	fmt.Printf("Std Dev: %.4f bets\n", stats.StdDev())
	fmt.Printf("House edge: %.2f%%\n", -mean*100)
}
