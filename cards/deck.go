package cards

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// DeckSize is the number of cards in a full (single) deck.
	DeckSize = NumSuits * NumRanks
	// RefillThreshold is the remaining count at or below which the deck
	// must be refilled and reshuffled before a new round.
	RefillThreshold = DeckSize / 3
)

var (
	// ErrEmptyDeck is returned when drawing with no card left.
	ErrEmptyDeck = errors.New("draw from empty deck")
	// ErrDuplicateCard is returned when stacking the same card twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Deck is an ordered, mutable set of unique cards. The top of the deck
// is the end of the slice. It owns its random generator so decks built from
// the same seed shuffle the same way.
type Deck struct {
	cards    []Card
	rng      *rand.Rand
	shuffles int
}

// NewDeck returns an empty deck (so NeedsShuffle is true) using the given seed.
func NewDeck(seed uint64) *Deck {
	return &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rand.New(rand.NewPCG(0, seed)), //nolint:gosec // not crypto, card game.
	}
}

// NewStackedDeck returns a full deck whose next draws are exactly top, in
// order, with the rest of the cards shuffled underneath.
func NewStackedDeck(seed uint64, top ...Card) (*Deck, error) {
	d := NewDeck(seed)
	stacked := make(map[Card]bool, len(top))
	for _, c := range top {
		if stacked[c] {
			return nil, fmt.Errorf("%w %s", ErrDuplicateCard, c)
		}
		if _, err := NewCard(c.rank, c.suit); err != nil {
			return nil, err
		}
		stacked[c] = true
	}
	d.fill(func(c Card) bool { return !stacked[c] })
	d.shuffle()
	for i := len(top) - 1; i >= 0; i-- {
		d.cards = append(d.cards, top[i])
	}
	return d, nil
}

func (d *Deck) fill(keep func(Card) bool) {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := Card{rank: rank, suit: suit}
			if keep == nil || keep(c) {
				d.cards = append(d.cards, c)
			}
		}
	}
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// RefillAndShuffle discards what is left, regenerates the 52 cards and
// shuffles them.
func (d *Deck) RefillAndShuffle() {
	d.fill(nil)
	d.shuffle()
	d.shuffles++
}

// NeedsShuffle is true when the remaining count is at or below RefillThreshold.
func (d *Deck) NeedsShuffle() bool {
	return len(d.cards) <= RefillThreshold
}

// DrawOne removes and returns the top card.
func (d *Deck) DrawOne() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Shuffles returns how many times RefillAndShuffle was called.
func (d *Deck) Shuffles() int {
	return d.shuffles
}

// Contains is true if the card is still in the deck.
func (d *Deck) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}
