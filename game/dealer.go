package game

import "fortio.org/log"

// DealerStand is the total at which the dealer stops drawing.
const DealerStand = 17

// Dealer plays the fixed house policy, no decisions involved.
type Dealer struct {
	Hand
}

func NewDealer(h Hand) *Dealer {
	return &Dealer{Hand: h}
}

// Play draws while the total is below DealerStand then stands.
// If the player already busted the dealer stands right away without drawing.
// Returns the number of cards drawn.
func (dl *Dealer) Play(playerScore int, d Drawer) (int, error) {
	if playerScore > Blackjack {
		log.LogVf("Player busted with %d, dealer stands on %d", playerScore, dl.Score())
		dl.Stand()
		return 0, nil
	}
	drawn := 0
	for !dl.Finished() {
		if dl.Score() >= DealerStand {
			dl.Stand()
			break
		}
		if err := dl.Hit(d); err != nil {
			return drawn, err
		}
		drawn++
	}
	log.LogVf("Dealer drew %d, total %d", drawn, dl.Score())
	return drawn, nil
}
