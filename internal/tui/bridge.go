package tui

import (
	"github.com/lox/blackjackforbots/internal/deck"
	"github.com/lox/blackjackforbots/internal/game"
)

// Prompt is a decision point forwarded to the terminal. It snapshots the
// situation so the UI never touches the hands the round owns.
type Prompt struct {
	PlayerCards  []deck.Card
	PlayerTotal  int
	PlayerSoft   bool
	Upcard       deck.Card
	CanDouble    bool
	CanSurrender bool
}

// HumanStrategy is a game.Strategy that forwards each decision point to
// the TUI and blocks until the player answers with a keypress. The round
// engine asks twice at the opening decision when surrender is enabled
// (once for the surrender window, once for the main decision); the bridge
// prompts once per distinct situation and replays the remembered answer
// for the duplicate ask.
type HumanStrategy struct {
	prompts   chan Prompt
	decisions chan game.Decision

	last    game.Decision
	lastKey situationKey
	asked   bool
}

type situationKey struct {
	cards     int
	canDouble bool
}

// NewHumanStrategy creates the bridge. Prompts are delivered on Prompts()
// and answered with Answer().
func NewHumanStrategy() *HumanStrategy {
	return &HumanStrategy{
		prompts:   make(chan Prompt),
		decisions: make(chan game.Decision),
	}
}

// Prompts returns the channel the TUI receives decision points on
func (h *HumanStrategy) Prompts() <-chan Prompt {
	return h.prompts
}

// Answer delivers the player's keypress to a blocked Decide call
func (h *HumanStrategy) Answer(d game.Decision) {
	h.decisions <- d
}

// Reset clears the remembered answer. The TUI calls this before each
// round so the opening decision of a new round prompts again.
func (h *HumanStrategy) Reset() {
	h.asked = false
}

func (h *HumanStrategy) Decide(s game.Situation) game.Decision {
	key := situationKey{cards: len(s.Player.Cards), canDouble: s.CanDouble}
	if h.asked && key == h.lastKey {
		return h.last
	}

	total, soft := s.Player.Total(), s.Player.IsSoft()
	h.prompts <- Prompt{
		PlayerCards:  s.Player.Snapshot(),
		PlayerTotal:  total,
		PlayerSoft:   soft,
		Upcard:       s.Dealer.Upcard(),
		CanDouble:    s.CanDouble && len(s.Player.Cards) == 2,
		CanSurrender: s.Rules.Surrender && len(s.Player.Cards) == 2,
	}
	d := <-h.decisions

	h.last = d
	h.lastKey = key
	h.asked = true
	return d
}
