package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	require.Equal(t, 6, r.NumDecks)
	require.True(t, r.DealerHitsSoft17)
	require.True(t, r.DoubleAllowed)
	require.False(t, r.Surrender)
	require.True(t, r.PeekForBlackjack)
	require.Equal(t, 3, r.BlackjackPaysNum)
	require.Equal(t, 2, r.BlackjackPaysDen)
}

func TestBlackjackPayout(t *testing.T) {
	tests := []struct {
		name     string
		num, den int
		bet      int64
		expected int64
	}{
		{"3:2 on 100", 3, 2, 100, 250},
		{"6:5 on 100", 6, 5, 100, 220},
		{"3:2 truncates", 3, 2, 101, 252}, // 101 + 303/2
		{"1:1", 1, 1, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			r.BlackjackPaysNum = tt.num
			r.BlackjackPaysDen = tt.den
			require.Equal(t, tt.expected, r.BlackjackPayout(tt.bet))
		})
	}
}
