// Package game has the blackjack rules: hand scoring, the player actions,
// the dealer's house policy and the round controller that sequences them.
package game

import (
	"fmt"

	"fortio.org/blackjack/cards"
	"fortio.org/log"
	"github.com/loov/hrtime"
)

// Game is the round controller: it owns the deck and loops over rounds.
type Game struct {
	Deck *cards.Deck
	UI   UI
	// Rounds to play, 0 means until the UI returns an error (interrupt, EOF).
	Rounds int
	// Tally, if set, records each round's result.
	Tally *Tally
}

// New returns a game using a fresh deck from seed.
func New(ui UI, seed uint64) *Game {
	return &Game{
		Deck:  cards.NewDeck(seed),
		UI:    ui,
		Tally: NewTally(),
	}
}

// PlayRound plays one full round: setup, player turn, dealer turn, resolve
// and final display.
func (g *Game) PlayRound() (Outcome, error) {
	start := hrtime.Now()
	if g.Deck.NeedsShuffle() {
		log.LogVf("Refilling deck, %d cards left", g.Deck.Remaining())
		g.UI.Notice(fmt.Sprintf("Shuffling cards... (Deck size: %d)", g.Deck.Remaining()))
		g.Deck.RefillAndShuffle()
	}
	r, err := Deal(g.Deck)
	if err != nil {
		return Undecided, err
	}
	if err = r.PlayerTurn(g.UI); err != nil {
		return Undecided, err
	}
	if err = r.DealerTurn(); err != nil {
		return Undecided, err
	}
	outcome := r.Outcome()
	if err = g.UI.Show(r.View()); err != nil {
		return outcome, err
	}
	log.S(log.Verbose, "Round done",
		log.Any("outcome", outcome.String()),
		log.Any("player", r.Player.Score()),
		log.Any("dealer", r.Dealer.Score()),
		log.Any("cards", r.CardsDrawn()))
	if g.Tally != nil {
		g.Tally.Record(r, outcome, hrtime.Since(start))
	}
	return outcome, nil
}

// Run plays rounds until Rounds are done (if non 0) or an error occurs.
func (g *Game) Run() error {
	for i := 0; g.Rounds == 0 || i < g.Rounds; i++ {
		if _, err := g.PlayRound(); err != nil {
			return err
		}
	}
	return nil
}
