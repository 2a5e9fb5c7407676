package simulator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjackforbots/internal/bot"
	"github.com/lox/blackjackforbots/internal/randutil"
	"github.com/lox/blackjackforbots/internal/statistics"
)

// Compare runs one simulation per named built-in strategy concurrently and
// returns the stats keyed by strategy name. Every run gets its own shoe
// seeded from base.Seed, so runs are independent and each one keeps the
// single-owner access the engine requires.
func Compare(ctx context.Context, base Config, strategies []string) (map[string]*statistics.SimStats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]*statistics.SimStats, len(strategies))

	for _, name := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cfg := base
			strat, err := bot.New(name, randutil.NewFromUint64(cfg.Seed), cfg.Logger)
			if err != nil {
				return err
			}
			cfg.Strategy = strat

			stats, err := New(cfg).Run()
			if err != nil {
				return err
			}

			mu.Lock()
			results[name] = stats
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
