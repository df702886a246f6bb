package game

import (
	"fmt"
	"strconv"
	"time"

	"fortio.org/fortio/stats"
)

// Tally counts a session's outcomes. It is only kept in memory.
type Tally struct {
	Rounds      int
	PlayerWins  int
	DealerWins  int
	Draws       int
	PlayerBusts int
	DealerBusts int
	DoubleDowns int
	// CardsPerRound is the number of cards drawn each round.
	CardsPerRound stats.Counter
	// RoundTime is the round duration in seconds, including waiting on input.
	RoundTime *stats.Histogram
}

func NewTally() *Tally {
	return &Tally{
		RoundTime: stats.NewHistogram(0, 0.1),
	}
}

// Record adds one finished round.
func (t *Tally) Record(r *Round, o Outcome, d time.Duration) {
	t.Rounds++
	switch {
	case o.PlayerWins():
		t.PlayerWins++
	case o.DealerWins():
		t.DealerWins++
	case o == Draw:
		t.Draws++
	}
	if r.Player.Busted() {
		t.PlayerBusts++
	}
	if r.Dealer.Busted() {
		t.DealerBusts++
	}
	if r.Player.Doubled() {
		t.DoubleDowns++
	}
	t.CardsPerRound.Record(float64(r.CardsDrawn()))
	t.RoundTime.Record(d.Seconds())
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// Rows returns the tally as a table, header first.
func (t *Tally) Rows() [][]string {
	rows := [][]string{
		{"", "Count", "%"},
		{"Rounds", strconv.Itoa(t.Rounds), ""},
		{"Player won", strconv.Itoa(t.PlayerWins), percent(t.PlayerWins, t.Rounds)},
		{"Dealer won", strconv.Itoa(t.DealerWins), percent(t.DealerWins, t.Rounds)},
		{"Draw", strconv.Itoa(t.Draws), percent(t.Draws, t.Rounds)},
		{"Player bust", strconv.Itoa(t.PlayerBusts), percent(t.PlayerBusts, t.Rounds)},
		{"Dealer bust", strconv.Itoa(t.DealerBusts), percent(t.DealerBusts, t.Rounds)},
		{"Double down", strconv.Itoa(t.DoubleDowns), percent(t.DoubleDowns, t.Rounds)},
	}
	if t.CardsPerRound.Count > 0 {
		rows = append(rows, []string{"Cards/round", fmt.Sprintf("%.1f", t.CardsPerRound.Avg()), ""})
	}
	if t.Rounds > 0 {
		h := t.RoundTime.Export().CalcPercentiles([]float64{50})
		if len(h.Percentiles) > 0 {
			rows = append(rows, []string{"Median round", fmt.Sprintf("%.1fs", h.Percentiles[0].Value), ""})
		}
	}
	return rows
}
