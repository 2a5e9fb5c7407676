package deck

import "testing"

func TestPointValue(t *testing.T) {
	tests := []struct {
		card     string
		expected int
	}{
		{"2c", 2},
		{"3d", 3},
		{"4h", 4},
		{"5s", 5},
		{"6c", 6},
		{"7d", 7},
		{"8h", 8},
		{"9s", 9},
		{"Tc", 10},
		{"Jd", 10},
		{"Qh", 10},
		{"Ks", 10},
		{"Ac", 11},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			card, err := ParseCard(tt.card)
			if err != nil {
				t.Fatalf("ParseCard(%q) error: %v", tt.card, err)
			}
			if got := card.PointValue(); got != tt.expected {
				t.Errorf("PointValue() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHtD",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards() returned %d cards, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{Card{Suit: Spades, Rank: Ace}, "A♠"},
		{Card{Suit: Hearts, Rank: Ten}, "T♥"},
		{Card{Suit: Diamonds, Rank: Two}, "2♦"},
		{Card{Suit: Clubs, Rank: King}, "K♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCardPredicates(t *testing.T) {
	ace := Card{Suit: Hearts, Rank: Ace}
	if !ace.IsAce() {
		t.Error("ace should be an ace")
	}
	if !ace.IsRed() {
		t.Error("heart should be red")
	}
	jack := Card{Suit: Spades, Rank: Jack}
	if !jack.IsFaceCard() {
		t.Error("jack should be a face card")
	}
	if jack.IsRed() {
		t.Error("spade should not be red")
	}
	ten := Card{Suit: Clubs, Rank: Ten}
	if ten.IsFaceCard() {
		t.Error("ten is not a face card")
	}
}
