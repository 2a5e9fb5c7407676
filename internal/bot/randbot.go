package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/game"
)

// RandBot picks a uniform random decision among the actions legal in the
// current situation. The rng is supplied by the caller, never the engine,
// so a seeded simulation replays identically.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(s game.Situation) game.Decision {
	choices := []game.Decision{game.Hit, game.Stand}
	if s.CanDouble && len(s.Player.Cards) == 2 {
		choices = append(choices, game.Double)
	}
	if s.Rules.Surrender && len(s.Player.Cards) == 2 {
		choices = append(choices, game.Surrender)
	}

	d := choices[r.rng.IntN(len(choices))]
	r.logger.Debug("rand-bot random action", "decision", d.String())
	return d
}
