package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		player, dealer int
		want           Outcome
		msg            string
	}{
		{20, 19, PlayerWon, "Player won!"},
		{19, 20, DealerWon, "Dealer won!"},
		{23, 18, DealerWonPlayerBust, "Dealer won! Player is over 21."},
		{18, 23, PlayerWonDealerBust, "Player won! Dealer is over 21."},
		{19, 19, Draw, "Draw!"},
		{21, 21, Draw, "Draw!"},
		// Player bust is checked first.
		{22, 25, DealerWonPlayerBust, "Dealer won! Player is over 21."},
	}
	for _, tt := range tests {
		p := NewPlayer(Hand{total: tt.player, finished: true})
		d := NewDealer(Hand{total: tt.dealer, finished: true})
		got := Resolve(p, d)
		assert.Equal(t, tt.want, got, "player %d dealer %d", tt.player, tt.dealer)
		assert.Equal(t, tt.msg, got.String())
	}
	assert.Equal(t, "", Undecided.String())
}

func TestOutcomeWinners(t *testing.T) {
	assert.True(t, PlayerWon.PlayerWins())
	assert.True(t, PlayerWonDealerBust.PlayerWins())
	assert.True(t, DealerWon.DealerWins())
	assert.True(t, DealerWonPlayerBust.DealerWins())
	assert.False(t, Draw.PlayerWins())
	assert.False(t, Draw.DealerWins())
}
