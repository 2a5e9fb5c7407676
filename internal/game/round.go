package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjackforbots/internal/deck"
)

// Outcome classifies how a round settled
type Outcome int

const (
	PlayerBlackjack Outcome = iota
	DealerBlackjack
	PlayerBust
	DealerBust
	PlayerWin
	DealerWin
	Push
	PlayerSurrender
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "player-blackjack"
	case DealerBlackjack:
		return "dealer-blackjack"
	case PlayerBust:
		return "player-bust"
	case DealerBust:
		return "dealer-bust"
	case PlayerWin:
		return "player-win"
	case DealerWin:
		return "dealer-win"
	case Push:
		return "push"
	case PlayerSurrender:
		return "player-surrender"
	default:
		return "unknown"
	}
}

// RoundResult is the immutable settlement of one round. PayoutCents is
// stake plus winnings returned to the player; the net for bankroll
// tracking is payout minus the stake actually committed (2x when doubled).
type RoundResult struct {
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	PayoutCents int64
}

// Round plays one blackjack hand from deal to settlement. It draws from a
// shared shoe, exclusively owns the two hands it deals, consults the
// strategy for player decisions, and resolves the dealer's play and the
// payout from the rules.
type Round struct {
	rules    Rules
	shoe     *deck.Shoe
	strategy Strategy
	bet      int64
	logger   *log.Logger

	player Hand
	dealer Hand
}

// NewRound creates a round against the given shoe. The bet is in cents.
func NewRound(rules Rules, shoe *deck.Shoe, strategy Strategy, bet int64, logger *log.Logger) *Round {
	return &Round{
		rules:    rules,
		shoe:     shoe,
		strategy: strategy,
		bet:      bet,
		logger:   logger,
	}
}

// Player returns the player's hand for display after (or during) play
func (r *Round) Player() *Hand {
	return &r.player
}

// Dealer returns the dealer's hand for display after (or during) play
func (r *Round) Dealer() *Hand {
	return &r.dealer
}

// Play runs the round to settlement: deal, dealer peek, player turn,
// dealer turn, payout.
func (r *Round) Play() RoundResult {
	r.player = Hand{}
	r.dealer = Hand{}

	// Initial deal alternates player, dealer, player, dealer
	r.player.Add(r.shoe.Draw())
	r.dealer.Add(r.shoe.Draw())
	r.player.Add(r.shoe.Draw())
	r.dealer.Add(r.shoe.Draw())

	r.logger.Debug("dealt",
		"player", r.player.String(),
		"upcard", r.dealer.Upcard().String())

	// Dealer checks the hole card before the player acts
	if r.rules.PeekForBlackjack && r.dealer.IsBlackjack() {
		if r.player.IsBlackjack() {
			return r.settle(Push)
		}
		return r.settle(DealerBlackjack)
	}

	if r.player.IsBlackjack() {
		return r.settle(PlayerBlackjack)
	}

	if result, settled := r.playerTurn(); settled {
		return result
	}

	r.dealerTurn()

	if r.dealer.IsBust() {
		return r.settle(DealerBust)
	}
	pt, dt := r.player.Total(), r.dealer.Total()
	switch {
	case pt > dt:
		return r.settle(PlayerWin)
	case pt < dt:
		return r.settle(DealerWin)
	default:
		return r.settle(Push)
	}
}

// playerTurn runs the player's decision loop. It returns a settled result
// for the paths that end the round immediately (surrender, bust); a
// doubled hand always falls through to the dealer turn, busted or not.
func (r *Round) playerTurn() (RoundResult, bool) {
	canDouble := r.rules.DoubleAllowed
	for {
		// Late surrender is only on the table for the opening decision
		if r.rules.Surrender && len(r.player.Cards) == 2 {
			if r.decide(canDouble) == Surrender {
				r.player.Surrendered = true
				return r.settle(PlayerSurrender), true
			}
		}

		switch d := r.decide(canDouble); {
		case d == Double && canDouble:
			r.player.Doubled = true
			r.player.Add(r.shoe.Draw())
			// One card and done. A doubled hand is never settled here,
			// busted or not; it resolves by comparison after the dealer
			// plays.
			return RoundResult{}, false
		case d == Hit:
			r.player.Add(r.shoe.Draw())
			if r.player.IsBust() {
				return r.settle(PlayerBust), true
			}
			canDouble = false
		default:
			// Stand, or a Double chosen when no longer permitted, ends
			// the turn.
			return RoundResult{}, false
		}
	}
}

// dealerTurn plays the dealer's fixed policy: draw below 17, and on a
// soft 17 when the rules say to hit it. The loop terminates because each
// draw strictly increases the minimal total.
func (r *Round) dealerTurn() {
	for {
		total := r.dealer.Total()
		if total < 17 {
			r.dealer.Add(r.shoe.Draw())
			continue
		}
		if total == 17 && r.rules.DealerHitsSoft17 && r.dealer.IsSoft() {
			r.dealer.Add(r.shoe.Draw())
			continue
		}
		return
	}
}

func (r *Round) decide(canDouble bool) Decision {
	return r.strategy.Decide(Situation{
		Player:    &r.player,
		Dealer:    &r.dealer,
		Rules:     r.rules,
		CanDouble: canDouble,
	})
}

func (r *Round) settle(oc Outcome) RoundResult {
	var payout int64
	switch oc {
	case PlayerBlackjack:
		payout = r.rules.BlackjackPayout(r.bet)
	case DealerBlackjack, PlayerBust, DealerWin:
		payout = 0
	case DealerBust, PlayerWin:
		payout = r.bet * 2
		if r.player.Doubled {
			payout = r.bet * 4
		}
	case Push:
		payout = r.bet
		if r.player.Doubled {
			payout = r.bet * 2
		}
	case PlayerSurrender:
		payout = r.bet / 2
	}

	result := RoundResult{
		Outcome:     oc,
		PlayerTotal: r.player.Total(),
		DealerTotal: r.dealer.Total(),
		PayoutCents: payout,
	}

	r.logger.Debug("settled",
		"outcome", oc.String(),
		"player", r.player.String(),
		"dealer", r.dealer.String(),
		"doubled", r.player.Doubled,
		"payout", payout)

	return result
}
