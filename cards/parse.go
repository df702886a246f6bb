package cards

import (
	"fmt"
	"strings"
)

var suitLetters = map[string]Suit{
	"s": Spades, "♠": Spades,
	"h": Hearts, "♥": Hearts, "❤": Hearts,
	"d": Diamonds, "♦": Diamonds,
	"c": Clubs, "♣": Clubs,
}

// Parse parses a single card like "A♠", "10h" or "Kd". The suit is either
// its glyph or its letter (case insensitive).
func Parse(s string) (Card, error) {
	for suffix, suit := range suitLetters {
		if len(s) <= len(suffix) {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(s), suffix) {
			continue
		}
		rank, err := ParseRank(strings.ToUpper(s[:len(s)-len(suffix)]))
		if err != nil {
			return Card{}, err
		}
		return NewCard(rank, suit)
	}
	return Card{}, fmt.Errorf("%w in %q", ErrInvalidSuit, s)
}

// ParseCards parses space separated cards, e.g. "A♠ 10h Kd".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	res := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

// MustParseCards is ParseCards for tests, it panics on error.
func MustParseCards(s string) []Card {
	res, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return res
}
