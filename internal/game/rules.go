package game

// Rules is the immutable table configuration. Every rule-conditioned
// behaviour in the round engine reads from here.
type Rules struct {
	NumDecks         int
	DealerHitsSoft17 bool // H17 (true) vs S17 (false)
	DoubleAllowed    bool
	DoubleAfterSplit bool // recognised for completeness; splitting is not implemented
	Surrender        bool // late surrender
	PeekForBlackjack bool
	BlackjackPaysNum int
	BlackjackPaysDen int
}

// DefaultRules returns the classic six-deck table: dealer hits soft 17,
// doubling allowed, no surrender, dealer peeks, blackjack pays 3:2.
func DefaultRules() Rules {
	return Rules{
		NumDecks:         6,
		DealerHitsSoft17: true,
		DoubleAllowed:    true,
		DoubleAfterSplit: true,
		Surrender:        false,
		PeekForBlackjack: true,
		BlackjackPaysNum: 3,
		BlackjackPaysDen: 2,
	}
}

// BlackjackPayout returns stake plus bonus for a natural, using integer
// division on the configured ratio. A 100 bet pays 250 at 3:2, 220 at 6:5.
func (r Rules) BlackjackPayout(bet int64) int64 {
	return bet + bet*int64(r.BlackjackPaysNum)/int64(r.BlackjackPaysDen)
}
