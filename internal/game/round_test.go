package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjackforbots/internal/deck"
)

// script plays a fixed decision sequence, repeating the last entry once
// exhausted. Note the engine consults the strategy twice at the opening
// decision when surrender is enabled (surrender window, then the main
// decision), and each consultation consumes one entry.
type script struct {
	decisions []Decision
	calls     int
}

func (s *script) Decide(Situation) Decision {
	i := s.calls
	if i >= len(s.decisions) {
		i = len(s.decisions) - 1
	}
	s.calls++
	return s.decisions[i]
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// stacked builds a shoe dealing the given cards in order. The deal order
// is player, dealer, player, dealer, then draws in play order.
func stacked(t *testing.T, cards string) *deck.Shoe {
	t.Helper()
	parsed, err := deck.ParseCards(cards)
	require.NoError(t, err)
	return deck.NewStackedShoe(parsed...)
}

func playRound(t *testing.T, rules Rules, cards string, bet int64, decisions ...Decision) (*Round, RoundResult) {
	t.Helper()
	round := NewRound(rules, stacked(t, cards), &script{decisions: decisions}, bet, testLogger())
	return round, round.Play()
}

func TestDealOrder(t *testing.T) {
	t.Parallel()
	// player: As, 7c; dealer: Kh, 8d
	round, _ := playRound(t, DefaultRules(), "AsKh7c8d", 100, Stand)
	require.Equal(t, "A♠ 7♣ (soft 18)", round.Player().String())
	require.Equal(t, "K♥ 8♦ (18)", round.Dealer().String())
}

func TestPlayerBlackjack(t *testing.T) {
	t.Parallel()
	// player As+Kd is a natural; dealer's 20 never gets to act
	_, res := playRound(t, DefaultRules(), "AsKhKdQc", 100, Stand)
	require.Equal(t, PlayerBlackjack, res.Outcome)
	require.Equal(t, 21, res.PlayerTotal)
	require.Equal(t, int64(250), res.PayoutCents) // 3:2 on 100
}

func TestPlayerBlackjackSixFivePayout(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.BlackjackPaysNum = 6
	rules.BlackjackPaysDen = 5
	_, res := playRound(t, rules, "AsKhKdQc", 100, Stand)
	require.Equal(t, PlayerBlackjack, res.Outcome)
	require.Equal(t, int64(220), res.PayoutCents)
}

func TestDealerBlackjackPeek(t *testing.T) {
	t.Parallel()
	// dealer As+Kd is a natural; peek settles before the player acts
	strat := &script{decisions: []Decision{Hit}}
	round := NewRound(DefaultRules(), stacked(t, "ThAs7cKd"), strat, 100, testLogger())
	res := round.Play()
	require.Equal(t, DealerBlackjack, res.Outcome)
	require.Equal(t, int64(0), res.PayoutCents)
	require.Zero(t, strat.calls, "peek must settle before the strategy is consulted")
}

func TestPeekPushWhenBothBlackjack(t *testing.T) {
	t.Parallel()
	_, res := playRound(t, DefaultRules(), "AsAhKdKc", 100, Stand)
	require.Equal(t, Push, res.Outcome)
	require.Equal(t, int64(100), res.PayoutCents)
}

func TestNoPeekDealerBlackjackWins(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.PeekForBlackjack = false
	// dealer natural 21 beats the player's stood 20 at settlement
	_, res := playRound(t, rules, "ThAsJcKd", 100, Stand)
	require.Equal(t, DealerWin, res.Outcome)
	require.Equal(t, 20, res.PlayerTotal)
	require.Equal(t, 21, res.DealerTotal)
	require.Equal(t, int64(0), res.PayoutCents)
}

func TestPlayerBustSettlesImmediately(t *testing.T) {
	t.Parallel()
	// player Th+7c hits into Kh for 27; dealer never acts
	round, res := playRound(t, DefaultRules(), "Th9d7c8sKh", 100, Hit)
	require.Equal(t, PlayerBust, res.Outcome)
	require.Equal(t, int64(0), res.PayoutCents)
	require.Len(t, round.Dealer().Cards, 2)
}

func TestPlayerWinPays2x(t *testing.T) {
	t.Parallel()
	// player stands on 20, dealer stands on 17
	_, res := playRound(t, DefaultRules(), "Th9dTs8c", 100, Stand)
	require.Equal(t, PlayerWin, res.Outcome)
	require.Equal(t, int64(200), res.PayoutCents)
}

func TestDealerBustPays2x(t *testing.T) {
	t.Parallel()
	// dealer T+6 must draw and busts on the King
	_, res := playRound(t, DefaultRules(), "ThTc9s6dKh", 100, Stand)
	require.Equal(t, DealerBust, res.Outcome)
	require.Equal(t, int64(200), res.PayoutCents)
}

func TestPush(t *testing.T) {
	t.Parallel()
	_, res := playRound(t, DefaultRules(), "ThTsJdKc", 100, Stand)
	require.Equal(t, Push, res.Outcome)
	require.Equal(t, int64(100), res.PayoutCents)
}

func TestDealerStandsOnSoft17(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.DealerHitsSoft17 = false
	// dealer Ah+6d is soft 17 and must stand under S17
	round, res := playRound(t, rules, "ThAh8c6d", 100, Stand)
	require.Len(t, round.Dealer().Cards, 2)
	require.Equal(t, 17, res.DealerTotal)
	require.Equal(t, PlayerWin, res.Outcome) // 18 beats 17
}

func TestDealerHitsSoft17(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.DealerHitsSoft17 = true
	// dealer Ah+6d draws exactly one more card (2s for hard 19)
	round, res := playRound(t, rules, "ThAh8c6d2s", 100, Stand)
	require.Len(t, round.Dealer().Cards, 3)
	require.Equal(t, 19, res.DealerTotal)
	require.Equal(t, DealerWin, res.Outcome)
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	t.Parallel()
	// dealer 2+3 keeps drawing small cards until reaching at least 17
	round, res := playRound(t, DefaultRules(), "Th2dTs3c4h5s6d", 100, Stand)
	require.GreaterOrEqual(t, res.DealerTotal, 17)
	require.Equal(t, 5, len(round.Dealer().Cards))
}

func TestDoubleDrawsOneCardAndPays4x(t *testing.T) {
	t.Parallel()
	// player 6+5 doubles into a Th for 21; dealer stands on 18
	round, res := playRound(t, DefaultRules(), "6c9d5h9sTh", 100, Double)
	require.True(t, round.Player().Doubled)
	require.Len(t, round.Player().Cards, 3)
	require.Equal(t, PlayerWin, res.Outcome)
	require.Equal(t, int64(400), res.PayoutCents)
}

func TestDoublePushPays2x(t *testing.T) {
	t.Parallel()
	// doubled 21 against a dealer who draws from 11 to 21
	_, res := playRound(t, DefaultRules(), "6c2d5h9sThKs", 100, Double)
	require.Equal(t, Push, res.Outcome)
	require.Equal(t, int64(200), res.PayoutCents)
}

func TestDoubledBustResolvedByComparison(t *testing.T) {
	t.Parallel()
	// A doubled hand that busts is not settled as an immediate player
	// bust; the dealer still plays and the totals are compared as-is.
	round, res := playRound(t, DefaultRules(), "Tc9d6h9sKh", 100, Double)
	require.True(t, round.Player().Doubled)
	require.Equal(t, 26, res.PlayerTotal)
	require.Equal(t, 18, res.DealerTotal)
	require.NotEqual(t, PlayerBust, res.Outcome)
	require.Equal(t, PlayerWin, res.Outcome)
	require.Equal(t, int64(400), res.PayoutCents)
}

func TestIllegalDoubleTreatedAsStand(t *testing.T) {
	t.Parallel()
	// After hitting once the double window is closed; a Double answer is
	// silently taken as Stand and the dealer plays out.
	round, res := playRound(t, DefaultRules(), "5c9d3hTs2cKh", 100, Hit, Double)
	require.False(t, round.Player().Doubled)
	require.Len(t, round.Player().Cards, 3) // no card drawn for the refused double
	require.Equal(t, 10, res.PlayerTotal)
	require.Equal(t, DealerWin, res.Outcome)
}

func TestDoubleDisallowedByRules(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.DoubleAllowed = false
	// Double on the opening decision is refused outright and becomes a stand
	round, res := playRound(t, rules, "6c9d5h9s", 100, Double)
	require.False(t, round.Player().Doubled)
	require.Len(t, round.Player().Cards, 2)
	require.Equal(t, DealerWin, res.Outcome) // 11 loses to 18
}

func TestSurrenderForfeitsHalf(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.Surrender = true
	round, res := playRound(t, rules, "5c9dTh8s", 100, Surrender)
	require.Equal(t, PlayerSurrender, res.Outcome)
	require.True(t, round.Player().Surrendered)
	require.Equal(t, int64(50), res.PayoutCents)
}

func TestSurrenderHalfRoundsDown(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.Surrender = true
	_, res := playRound(t, rules, "5c9dTh8s", 101, Surrender)
	require.Equal(t, int64(50), res.PayoutCents)
}

func TestSurrenderOnlyOnOpeningDecision(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()
	rules.Surrender = true
	// Opening window declined (Hit consumed by the surrender ask, then the
	// main decision hits); a later Surrender is downgraded to a stand.
	round, res := playRound(t, rules, "5c9d3hTs2cKh", 100, Hit, Hit, Surrender)
	require.NotEqual(t, PlayerSurrender, res.Outcome)
	require.False(t, round.Player().Surrendered)
	require.Equal(t, DealerWin, res.Outcome)
}

func TestSurrenderIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()
	// rules.Surrender off: a Surrender answer falls into the stand branch
	_, res := playRound(t, DefaultRules(), "Th9dTs8c", 100, Surrender)
	require.Equal(t, PlayerWin, res.Outcome)
}
