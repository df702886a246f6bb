package game

import (
	"slices"

	"fortio.org/blackjack/cards"
)

const (
	// Blackjack is the best possible total, anything above is a bust.
	Blackjack = 21
	// softBonus is what counting one ace as 11 instead of 1 adds.
	softBonus = 10
)

// Drawer is where hands get their cards from, typically a *cards.Deck.
type Drawer interface {
	DrawOne() (cards.Card, error)
}

// Scorer is the read only view of a hand shared by the player and the dealer.
type Scorer interface {
	Score() int
	Finished() bool
	Cards() []cards.Card
}

// Hand is an ordered set of cards (in draw order), its total and whether
// no more cards can be drawn this round.
type Hand struct {
	cards    []cards.Card
	total    int
	soft     bool
	finished bool
}

// NewHand returns a hand holding the given cards, already scored.
func NewHand(initial ...cards.Card) Hand {
	h := Hand{cards: slices.Clone(initial)}
	h.recompute()
	return h
}

// recompute always starts from scratch, it is never patched incrementally.
// Only one ace can be upgraded and only when that doesn't bust.
func (h *Hand) recompute() {
	sum := 0
	hasAce := false
	for _, c := range h.cards {
		sum += c.Value()
		hasAce = hasAce || c.IsAce()
	}
	h.soft = hasAce && sum+softBonus <= Blackjack
	if h.soft {
		sum += softBonus
	}
	h.total = sum
	if h.total >= Blackjack {
		h.finished = true
	}
}

// Hit draws one card into the hand. Errors from the drawer (empty deck)
// are returned unchanged and leave the hand untouched.
func (h *Hand) Hit(d Drawer) error {
	c, err := d.DrawOne()
	if err != nil {
		return err
	}
	h.cards = append(h.cards, c)
	h.recompute()
	return nil
}

// Stand ends the hand, no more cards can be drawn.
func (h *Hand) Stand() {
	h.finished = true
}

// Score is the best total: one ace counts 11 when that doesn't bust.
func (h *Hand) Score() int {
	return h.total
}

// Soft is true when one ace is currently counted as 11.
func (h *Hand) Soft() bool {
	return h.soft
}

// Finished is true once no more cards can be drawn (total of 21 or more, or after Stand).
func (h *Hand) Finished() bool {
	return h.finished
}

// Busted is true when the total is over 21.
func (h *Hand) Busted() bool {
	return h.total > Blackjack
}

// Cards returns a copy of the cards in draw order.
func (h *Hand) Cards() []cards.Card {
	return slices.Clone(h.cards)
}

// Len is the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}
