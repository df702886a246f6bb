package game

import (
	"errors"
	"fmt"
	"testing"

	"fortio.org/blackjack/cards"
	"github.com/stretchr/testify/require"
)

// pile hands out its cards in order then fails with cards.ErrEmptyDeck.
type pile struct {
	cards []cards.Card
	drawn int
}

func newPile(s string) *pile {
	return &pile{cards: cards.MustParseCards(s)}
}

func (p *pile) DrawOne() (cards.Card, error) {
	if len(p.cards) == 0 {
		return cards.Card{}, cards.ErrEmptyDeck
	}
	c := p.cards[0]
	p.cards = p.cards[1:]
	p.drawn++
	return c, nil
}

func hand(s string) Hand {
	return NewHand(cards.MustParseCards(s)...)
}

// scriptUI feeds keys as if typed and records what was displayed.
type scriptUI struct {
	keys    []byte
	views   []View
	notices []string
	rejects []error
	readErr error // returned once keys are exhausted, errScriptDone if nil.
}

var errScriptDone = errors.New("script done")

func (s *scriptUI) Show(v View) error {
	s.views = append(s.views, v)
	return nil
}

func (s *scriptUI) Notice(msg string) {
	s.notices = append(s.notices, msg)
}

func (s *scriptUI) NextAction() (Action, error) {
	if len(s.keys) == 0 {
		if s.readErr != nil {
			return 0, s.readErr
		}
		return 0, errScriptDone
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return ParseAction(k)
}

func (s *scriptUI) Reject(err error) {
	s.rejects = append(s.rejects, err)
}

func (s *scriptUI) last() View {
	return s.views[len(s.views)-1]
}

func stackedGame(t *testing.T, ui UI, top string) *Game {
	t.Helper()
	d, err := cards.NewStackedDeck(1, cards.MustParseCards(top)...)
	require.NoError(t, err, fmt.Sprintf("stacking %q", top))
	g := New(ui, 1)
	g.Deck = d
	return g
}
