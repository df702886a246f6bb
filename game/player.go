package game

import (
	"errors"
	"fmt"

	"fortio.org/log"
)

var (
	// ErrInvalidInput is a recoverable bad decision, the player is asked again.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotImplemented is returned for split.
	ErrNotImplemented = errors.New("not implemented")
	// ErrHandFinished is returned when acting on a hand that can't draw anymore.
	ErrHandFinished = errors.New("hand already finished")
)

// Action is one player decision.
type Action int

const (
	Hit Action = iota
	Stand
	DoubleDown
	Split
)

// Actions lists all actions in prompt order.
var Actions = []Action{Hit, Stand, DoubleDown, Split}

// Key is the (case sensitive) input character for the action.
func (a Action) Key() byte {
	switch a {
	case Hit:
		return 'h'
	case Stand:
		return 's'
	case DoubleDown:
		return 'd'
	case Split:
		return 'p'
	default:
		return '?'
	}
}

func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case DoubleDown:
		return "double down"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction maps an input key to its action.
func ParseAction(key byte) (Action, error) {
	for _, a := range Actions {
		if a.Key() == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInput, key)
}

// Player is the interactive side of the table.
type Player struct {
	Hand
	doubled bool
}

func NewPlayer(h Hand) *Player {
	return &Player{Hand: h}
}

// Doubled is true if the player doubled down this round.
func (p *Player) Doubled() bool {
	return p.doubled
}

// Do applies one action to the hand.
// Split is part of the action set but isn't implemented: it returns
// ErrNotImplemented and leaves the hand as is (the turn continues).
func (p *Player) Do(a Action, d Drawer) error {
	if p.Finished() {
		return ErrHandFinished
	}
	switch a {
	case Hit:
		return p.Hit(d)
	case Stand:
		p.Stand()
		return nil
	case DoubleDown:
		// Exactly one card then the hand is over, whatever the score.
		if err := p.Hit(d); err != nil {
			return err
		}
		p.doubled = true
		p.Stand()
		return nil
	case Split:
		log.LogVf("Split requested, not implemented")
		return fmt.Errorf("split: %w", ErrNotImplemented)
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidInput, int(a))
	}
}
