package game

import (
	"errors"
	"fmt"

	"fortio.org/blackjack/cards"
	"fortio.org/log"
)

// View is what the UI gets to display. The dealer hand must only have its
// first card shown until Reveal is true.
type View struct {
	Player    Scorer
	Dealer    Scorer
	Reveal    bool
	Outcome   Outcome
	Doubled   bool
	Remaining int
}

// UI is the external collaborator: rendering and reading decisions.
type UI interface {
	// Show displays the table.
	Show(v View) error
	// Notice displays a one line message (e.g. reshuffle).
	Notice(msg string)
	// NextAction reads one decision. A returned error wrapping ErrInvalidInput
	// is recoverable and leads to a re-prompt, any other error ends the game.
	NextAction() (Action, error)
	// Reject reports a recoverable problem with the last input (invalid key,
	// split not implemented...) and pauses briefly.
	Reject(err error)
}

// Round is one deal, played to completion then discarded.
type Round struct {
	Player *Player
	Dealer *Dealer
	deck   Drawer
	drawn  int
}

// countingDrawer counts draws for the tally.
type countingDrawer struct {
	r *Round
}

func (c countingDrawer) DrawOne() (cards.Card, error) {
	card, err := c.r.deck.DrawOne()
	if err == nil {
		c.r.drawn++
	}
	return card, err
}

func (r *Round) drawer() Drawer {
	return countingDrawer{r}
}

func (r *Round) dealTwo() (Hand, error) {
	d := r.drawer()
	first, err := d.DrawOne()
	if err != nil {
		return Hand{}, err
	}
	second, err := d.DrawOne()
	if err != nil {
		return Hand{}, err
	}
	return NewHand(first, second), nil
}

// Deal starts a round: two cards to the player then two to the dealer.
func Deal(d Drawer) (*Round, error) {
	r := &Round{deck: d}
	ph, err := r.dealTwo()
	if err != nil {
		return nil, fmt.Errorf("dealing player: %w", err)
	}
	dh, err := r.dealTwo()
	if err != nil {
		return nil, fmt.Errorf("dealing dealer: %w", err)
	}
	r.Player = NewPlayer(ph)
	r.Dealer = NewDealer(dh)
	return r, nil
}

// CardsDrawn is the number of cards taken from the deck during this round.
func (r *Round) CardsDrawn() int {
	return r.drawn
}

// View returns the current table for display.
func (r *Round) View() View {
	v := View{
		Player:  r.Player,
		Dealer:  r.Dealer,
		Reveal:  r.Player.Finished(),
		Doubled: r.Player.Doubled(),
	}
	if rem, ok := r.deck.(interface{ Remaining() int }); ok {
		v.Remaining = rem.Remaining()
	}
	if r.Player.Finished() && r.Dealer.Finished() {
		v.Outcome = Resolve(r.Player, r.Dealer)
	}
	return v
}

// PlayerTurn runs display, read, dispatch until the player's hand is finished.
// Recoverable input problems are reported and re-prompted without changing
// the hand.
func (r *Round) PlayerTurn(ui UI) error {
	for !r.Player.Finished() {
		if err := ui.Show(r.View()); err != nil {
			return err
		}
		a, err := ui.NextAction()
		if errors.Is(err, ErrInvalidInput) {
			ui.Reject(err)
			continue
		}
		if err != nil {
			return err
		}
		log.LogVf("Player action %s", a)
		err = r.Player.Do(a, r.drawer())
		if errors.Is(err, ErrNotImplemented) {
			ui.Reject(err)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DealerTurn plays the house policy against the player's final score.
func (r *Round) DealerTurn() error {
	_, err := r.Dealer.Play(r.Player.Score(), r.drawer())
	return err
}

// Outcome resolves the round, only meaningful once both turns are done.
func (r *Round) Outcome() Outcome {
	return Resolve(r.Player, r.Dealer)
}
