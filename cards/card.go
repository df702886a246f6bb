// Package cards has the playing card and single 52-card deck used by the game.
package cards

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned for a rank outside 2..Ace.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned for a suit other than the 4 standard ones.
	ErrInvalidSuit = errors.New("invalid suit")
)

// Suit is cosmetic only, it never changes a card's value.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank is 2 to 10 then the pictures then Ace (the highest value).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in a suit.
const NumRanks = 13

var rankSymbols = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) String() string {
	if !r.valid() {
		return "?"
	}
	return rankSymbols[r-Two]
}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank returns the rank for one of the 13 symbols 2..10, J, Q, K, A
// ("T" is also accepted for ten).
func ParseRank(symbol string) (Rank, error) {
	if symbol == "T" {
		return Ten, nil
	}
	for i, s := range rankSymbols {
		if s == symbol {
			return Two + Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidRank, symbol)
}

// Card is an immutable playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard returns the card or ErrInvalidRank/ErrInvalidSuit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() {
		return Card{}, fmt.Errorf("%w %d", ErrInvalidRank, int(rank))
	}
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w %d", ErrInvalidSuit, int(suit))
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is NewCard for known good constants, it panics on error.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Value is the base blackjack value: 2-9 face value, 10 and pictures 10,
// Ace 1. Counting one ace as 11 is done by the hand.
func (c Card) Value() int {
	switch {
	case c.rank == Ace:
		return 1
	case c.rank >= Ten:
		return 10
	default:
		return int(c.rank)
	}
}

// IsAce is true for the one rank that can count 1 or 11.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

func (c Card) IsRed() bool {
	return c.suit.IsRed()
}

// String returns rank and suit glyph, e.g. "10♥".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}
