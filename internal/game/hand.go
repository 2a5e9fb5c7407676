package game

import (
	"strconv"
	"strings"

	"github.com/lox/blackjackforbots/internal/deck"
)

// Hand is the ordered cards held by one party during a round, plus the
// flags the settlement needs. A Hand is owned by the Round that dealt it
// and lives for exactly one round.
type Hand struct {
	Cards       []deck.Card
	Doubled     bool
	Surrendered bool
}

// Add appends a drawn card to the hand
func (h *Hand) Add(c deck.Card) {
	h.Cards = append(h.Cards, c)
}

// value sums the hand with aces first counted as eleven, then downgrades
// aces to one, one at a time, until the total no longer busts or every ace
// has been downgraded. Returns the resulting total and whether an ace is
// still counted as eleven.
func (h *Hand) value() (total int, soft bool) {
	aces := 0
	for _, c := range h.Cards {
		total += c.PointValue()
		if c.IsAce() {
			aces++
		}
	}
	reduced := 0
	for total > 21 && reduced < aces {
		total -= 10
		reduced++
	}
	return total, reduced < aces && total <= 21
}

// Total returns the best total for the hand: as close to 21 as the ace
// downgrade rule allows, over 21 only when every ace already counts one.
func (h *Hand) Total() int {
	total, _ := h.value()
	return total
}

// IsSoft reports whether the hand's minimal total still counts an ace as
// eleven. Ace+6 is a soft 17; Ace+6+9 is a hard 16.
func (h *Hand) IsSoft() bool {
	_, soft := h.value()
	return soft
}

// IsBlackjack reports a natural: exactly two cards totalling 21. A
// three-card 21 is never a blackjack.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total() == 21
}

// IsBust reports whether the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Total() > 21
}

// Upcard returns the face-up card, the first one dealt. Only meaningful
// for the dealer's hand, where it is the one card a strategy may see
// before the reveal.
func (h *Hand) Upcard() deck.Card {
	return h.Cards[0]
}

// Snapshot returns a copy of the card slice for display code that outlives
// the round
func (h *Hand) Snapshot() []deck.Card {
	return append([]deck.Card(nil), h.Cards...)
}

// String renders the hand like "A♠ 6♥ (soft 17)"
func (h *Hand) String() string {
	var sb strings.Builder
	for i, c := range h.Cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	total, soft := h.value()
	sb.WriteString(" (")
	if soft {
		sb.WriteString("soft ")
	}
	sb.WriteString(strconv.Itoa(total))
	sb.WriteByte(')')
	return sb.String()
}
