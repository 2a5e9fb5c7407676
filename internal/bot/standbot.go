package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/game"
)

// StandBot stands on any two cards. Useful as a floor for strategy
// comparisons: it can never bust.
type StandBot struct {
	logger *log.Logger
}

// NewStandBot creates a new StandBot instance
func NewStandBot(logger *log.Logger) *StandBot {
	return &StandBot{logger: logger}
}

func (s *StandBot) Decide(game.Situation) game.Decision {
	return game.Stand
}
