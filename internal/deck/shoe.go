package deck

import (
	rand "math/rand/v2"

	"github.com/lox/blackjackforbots/internal/randutil"
)

// Shoe is a dealing shoe holding one or more shuffled 52-card decks.
// Cards are drawn in order from a cursor; when the cursor reaches the end
// the same cards are reshuffled in place and dealing continues, so a shoe
// never runs out.
type Shoe struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewShoe creates a shoe of decks standard decks, shuffled deterministically
// from seed. The caller is responsible for validating decks >= 1.
func NewShoe(decks int, seed uint64) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, decks*52),
		rng:   randutil.NewFromUint64(seed),
	}
	for d := 0; d < decks; d++ {
		for suit := Clubs; suit <= Spades; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.Shuffle()
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order.
// Exhausting a stacked shoe reshuffles it like any other, so callers that
// need a fixed sequence should stack at least as many cards as they draw.
// Intended for tests and scripted demos.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{
		cards: stacked,
		rng:   randutil.NewFromUint64(0),
	}
}

// Shuffle randomly permutes every card in the shoe, dealt and undealt alike.
// The cursor is not touched; callers reset it when starting a fresh pass.
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw deals the next card. An exhausted shoe reshuffles in place and
// resets the cursor before dealing, so Draw always succeeds.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		s.Shuffle()
		s.next = 0
	}
	card := s.cards[s.next]
	s.next++
	return card
}

// Remaining returns the number of undealt cards before the next reshuffle
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Size returns the total number of cards in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}
