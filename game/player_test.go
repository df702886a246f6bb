package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for key, want := range map[byte]Action{'h': Hit, 's': Stand, 'd': DoubleDown, 'p': Split} {
		a, err := ParseAction(key)
		require.NoError(t, err)
		assert.Equal(t, want, a)
		assert.Equal(t, key, a.Key())
	}
	for _, key := range []byte{'H', 'S', 'x', ' ', '\n', 0} {
		_, err := ParseAction(key)
		assert.ErrorIs(t, err, ErrInvalidInput, "key %q", key)
	}
	assert.Len(t, Actions, 4)
	assert.Equal(t, "double down", DoubleDown.String())
}

func TestPlayerHitStand(t *testing.T) {
	p := NewPlayer(hand("2s 3h"))
	d := newPile("4c 5d")
	require.NoError(t, p.Do(Hit, d))
	assert.Equal(t, 9, p.Score())
	assert.False(t, p.Finished())
	require.NoError(t, p.Do(Stand, d))
	assert.True(t, p.Finished())
	assert.Equal(t, 1, d.drawn)
	require.ErrorIs(t, p.Do(Hit, d), ErrHandFinished)
}

func TestDoubleDownOneCardThenStand(t *testing.T) {
	p := NewPlayer(hand("10s 5h"))
	d := newPile("4c 5d 6h")
	require.NoError(t, p.Do(DoubleDown, d))
	assert.Equal(t, 1, d.drawn)
	assert.Equal(t, 19, p.Score())
	assert.False(t, p.Busted())
	assert.True(t, p.Finished(), "double down stands even on 19")
	assert.True(t, p.Doubled())
}

func TestDoubleDownEmptyDeck(t *testing.T) {
	p := NewPlayer(hand("10s 5h"))
	require.Error(t, p.Do(DoubleDown, newPile("")))
	assert.False(t, p.Finished())
	assert.False(t, p.Doubled())
}

func TestSplitIsAStub(t *testing.T) {
	p := NewPlayer(hand("8s 8h"))
	d := newPile("4c")
	err := p.Do(Split, d)
	require.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, 0, d.drawn)
	assert.Equal(t, 16, p.Score())
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Finished())
}

func TestUnknownAction(t *testing.T) {
	p := NewPlayer(hand("8s 8h"))
	require.ErrorIs(t, p.Do(Action(42), newPile("")), ErrInvalidInput)
}
