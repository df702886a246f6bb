package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	expected := map[Rank]int{
		Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9,
		Ten: 10, Jack: 10, Queen: 10, King: 10,
		Ace: 1,
	}
	require.Len(t, expected, NumRanks)
	for rank, value := range expected {
		c, err := NewCard(rank, Hearts)
		require.NoError(t, err)
		assert.Equal(t, value, c.Value(), "rank %s", rank)
	}
}

func TestNewCardErrors(t *testing.T) {
	_, err := NewCard(Rank(1), Spades)
	require.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewCard(Ace+1, Spades)
	require.ErrorIs(t, err, ErrInvalidRank)
	_, err = NewCard(Ace, Suit(7))
	require.ErrorIs(t, err, ErrInvalidSuit)
	assert.Panics(t, func() { MustCard(0, Clubs) })
}

func TestParseRank(t *testing.T) {
	for i, sym := range []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"} {
		r, err := ParseRank(sym)
		require.NoError(t, err)
		assert.Equal(t, Two+Rank(i), r)
		assert.Equal(t, sym, r.String())
	}
	r, err := ParseRank("T")
	require.NoError(t, err)
	assert.Equal(t, Ten, r)
	for _, bad := range []string{"", "1", "11", "X", "a", "j"} {
		_, err := ParseRank(bad)
		assert.ErrorIs(t, err, ErrInvalidRank, "symbol %q", bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "10♥", MustCard(Ten, Hearts).String())
	assert.Equal(t, "A♠", MustCard(Ace, Spades).String())
	assert.Equal(t, "K♣", MustCard(King, Clubs).String())
	assert.True(t, MustCard(Two, Diamonds).IsRed())
	assert.False(t, MustCard(Two, Clubs).IsRed())
	assert.True(t, MustCard(Ace, Clubs).IsAce())
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  error
	}{
		{
			name:     "glyphs",
			input:    "A♠ 10♥ K♦ 2♣",
			expected: []Card{MustCard(Ace, Spades), MustCard(Ten, Hearts), MustCard(King, Diamonds), MustCard(Two, Clubs)},
		},
		{
			name:     "letters case insensitive",
			input:    "as 10H qD Tc",
			expected: []Card{MustCard(Ace, Spades), MustCard(Ten, Hearts), MustCard(Queen, Diamonds), MustCard(Ten, Clubs)},
		},
		{
			name:     "empty",
			input:    "  ",
			expected: []Card{},
		},
		{
			name:    "bad rank",
			input:   "As 1h",
			wantErr: ErrInvalidRank,
		},
		{
			name:    "bad suit",
			input:   "Ax",
			wantErr: ErrInvalidSuit,
		},
		{
			name:    "suit only",
			input:   "♠",
			wantErr: ErrInvalidSuit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
	assert.Panics(t, func() { MustParseCards("nope") })
}
