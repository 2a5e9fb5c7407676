package game

// Decision is a player action returned by a Strategy
type Decision int

const (
	Hit Decision = iota
	Stand
	Double
	Surrender
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Situation is the read-only view a strategy decides from. The hands are
// borrowed from the Round for the duration of the call and must not be
// retained or mutated. The full dealer hand is exposed for convenience,
// but a faithful strategy consults only Dealer.Upcard() before the reveal.
type Situation struct {
	Player    *Hand
	Dealer    *Hand
	Rules     Rules
	CanDouble bool
}

// Strategy decides the player's action at one decision point. Decide must
// be free of side effects and deterministic for a given Situation;
// randomised strategies take their rng from the caller so the engine stays
// reproducible.
type Strategy interface {
	Decide(s Situation) Decision
}
