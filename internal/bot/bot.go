package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/game"
)

// New creates a built-in strategy by name. RandBot takes its rng from the
// caller so simulations stay reproducible.
func New(name string, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	switch name {
	case "basic":
		return NewBasicBot(logger), nil
	case "stand":
		return NewStandBot(logger), nil
	case "rand":
		return NewRandBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want basic, stand or rand)", name)
	}
}

// Names lists the built-in strategy names accepted by New
func Names() []string {
	return []string{"basic", "stand", "rand"}
}
