package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/game"
)

// BasicBot is the naive baseline strategy: double a two-card 9 through 11
// when doubling is on offer, otherwise hit below 17 and stand at 17 or
// better. It never surrenders. This is a placeholder, not correct basic
// strategy.
type BasicBot struct {
	logger *log.Logger
}

// NewBasicBot creates a new BasicBot instance
func NewBasicBot(logger *log.Logger) *BasicBot {
	return &BasicBot{logger: logger}
}

func (b *BasicBot) Decide(s game.Situation) game.Decision {
	total := s.Player.Total()

	if s.Rules.DoubleAllowed && s.CanDouble && len(s.Player.Cards) == 2 && total >= 9 && total <= 11 {
		b.logger.Debug("basic-bot doubling", "total", total, "upcard", s.Dealer.Upcard().String())
		return game.Double
	}
	if total < 17 {
		return game.Hit
	}
	return game.Stand
}
