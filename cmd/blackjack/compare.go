package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/lox/blackjackforbots/cmd/blackjack/shared"
	"github.com/lox/blackjackforbots/internal/config"
	"github.com/lox/blackjackforbots/internal/simulator"
)

type CompareCmd struct {
	Rounds     int      `default:"100000" help:"Rounds per strategy"`
	Seed       uint64   `default:"42" help:"Shoe seed shared by every run"`
	Bet        int64    `default:"100" help:"Bet per round in cents"`
	Strategies []string `default:"basic,stand,rand" help:"Strategies to compare"`
	Config     string   `type:"path" help:"HCL rules file"`
	Verbose    bool     `help:"Per-round debug logging"`
}

func (c *CompareCmd) Run() error {
	logger := shared.SetupLogger(c.Verbose)

	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	base := simulator.Config{
		Rounds:   c.Rounds,
		Seed:     c.Seed,
		BetCents: c.Bet,
		Rules:    cfg.Rules,
		Logger:   logger,
	}

	results, err := simulator.Compare(context.Background(), base, c.Strategies)
	if err != nil {
		return err
	}

	// Best performer first
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return results[names[i]].Mean() > results[names[j]].Mean()
	})

	fmt.Printf("=== STRATEGY COMPARISON (%d rounds each, seed %d) ===\n", c.Rounds, c.Seed)
	for _, name := range names {
		stats := results[name]
		low, high := stats.ConfidenceInterval95()
		fmt.Printf("%-8s mean %+.4f bets/round  CI95 [%+.4f, %+.4f]  net $%.2f\n",
			name, stats.Mean(), low, high, float64(stats.NetCents)/100)
	}
	return nil
}
