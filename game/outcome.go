package game

// Outcome of a round.
type Outcome int

const (
	Undecided Outcome = iota
	PlayerWon
	DealerWon
	PlayerWonDealerBust
	DealerWonPlayerBust
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerWon:
		return "Player won!"
	case DealerWon:
		return "Dealer won!"
	case PlayerWonDealerBust:
		return "Player won! Dealer is over 21."
	case DealerWonPlayerBust:
		return "Dealer won! Player is over 21."
	case Draw:
		return "Draw!"
	case Undecided:
		fallthrough
	default:
		return ""
	}
}

// PlayerWins is true for both player winning outcomes.
func (o Outcome) PlayerWins() bool {
	return o == PlayerWon || o == PlayerWonDealerBust
}

// DealerWins is true for both dealer winning outcomes.
func (o Outcome) DealerWins() bool {
	return o == DealerWon || o == DealerWonPlayerBust
}

// Resolve compares the final totals. A player bust is checked first so it
// loses even if the dealer busted too.
func Resolve(player, dealer Scorer) Outcome {
	p, d := player.Score(), dealer.Score()
	switch {
	case p > Blackjack:
		return DealerWonPlayerBust
	case d > Blackjack:
		return PlayerWonDealerBust
	case p > d:
		return PlayerWon
	case d > p:
		return DealerWon
	default:
		return Draw
	}
}
