package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fortio.org/blackjack/cards"
	"fortio.org/blackjack/game"
	"fortio.org/log"
	"github.com/coder/quartz"
)

const (
	Prompt       = "Choose your next action\n(h)it, (s)tand, (d)ouble down, s(p)lit: "
	InvalidInput = "Incorrect input! Try again."
	NoSplit      = "Split is not implemented yet."
	HiddenCard   = "X"
	// DefaultPause is how long the invalid input message stays up.
	DefaultPause = time.Second
	// MaxReadFailures is how many read errors in a row are re-prompted
	// before giving up on the input.
	MaxReadFailures = 3
)

// Console implements game.UI on a Terminal.
type Console struct {
	T     *Terminal
	Out   io.Writer
	Color bool
	Clear bool
	Pause time.Duration
	Clock quartz.Clock

	failures int // consecutive read errors.
}

// New returns a console with colors, screen clearing (in raw mode) and the
// default pause.
func New(t *Terminal) *Console {
	return &Console{
		T:     t,
		Out:   t.Out,
		Color: true,
		Clear: t.Raw(),
		Pause: DefaultPause,
		Clock: quartz.NewReal(),
	}
}

// SetColor turns colors on or off. When off, escape codes are stripped from
// everything written including the ones coming from cards or the table.
func (c *Console) SetColor(on bool) {
	c.Color = on
	if on {
		c.Out = c.T.Out
		return
	}
	c.Out = &NoColorWriter{Out: c.T.Out}
}

func (c *Console) write(s string) {
	if _, err := io.WriteString(c.Out, s); err != nil {
		log.Errf("Error writing to terminal: %v", err)
	}
}

func (c *Console) colored(color, s string) string {
	if !c.Color {
		return s
	}
	return color + s + Reset
}

func (c *Console) card(card cards.Card) string {
	if card.IsRed() {
		return c.colored(BrightRed, card.String())
	}
	return card.String()
}

// Hand returns the lines showing a hand: title (with total unless hidden)
// then one card per line. Hidden shows only the first card then X.
func (c *Console) Hand(title string, h game.Scorer, hidden bool) []string {
	hc := h.Cards()
	if hidden {
		lines := []string{title + " hand:"}
		if len(hc) > 0 {
			lines = append(lines, c.card(hc[0]))
		}
		return append(lines, c.colored(DarkGray, HiddenCard))
	}
	lines := make([]string, 0, len(hc)+1)
	lines = append(lines, fmt.Sprintf("%s hand (%d):", title, h.Score()))
	for _, card := range hc {
		lines = append(lines, c.card(card))
	}
	return lines
}

func (c *Console) outcome(o game.Outcome) string {
	switch {
	case o.PlayerWins():
		return c.colored(BrightGreen, o.String())
	case o.DealerWins():
		return c.colored(BrightRed, o.String())
	default:
		return c.colored(BrightYellow, o.String())
	}
}

// Show displays the dealer then the player hand, and the outcome once decided.
func (c *Console) Show(v game.View) error {
	var sb strings.Builder
	if c.Clear {
		sb.WriteString(ClearScreen)
	}
	for _, l := range c.Hand("Dealer", v.Dealer, !v.Reveal) {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	for _, l := range c.Hand("Player", v.Player, false) {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if v.Doubled {
		sb.WriteString(c.colored(Cyan, "Doubled down."))
		sb.WriteByte('\n')
	}
	if v.Outcome != game.Undecided {
		sb.WriteString(c.outcome(v.Outcome))
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(c.Out, sb.String())
	return err
}

// Notice shows a one line message in a rounded box, the reshuffle one typically.
func (c *Console) Notice(msg string) {
	lines, _ := CreateTableLines([]Alignment{Left}, 1, [][]string{{c.colored(Yellow, msg)}}, BorderOuter)
	c.write(strings.Join(lines, "\n") + "\n")
}

// NextAction prompts and reads one action. A key outside the action set,
// a line that isn't one character or a read error return an error wrapping
// game.ErrInvalidInput. End of input, interrupts and the MaxReadFailures-th
// read error in a row are returned as is.
func (c *Console) NextAction() (game.Action, error) {
	c.write(Prompt)
	k, err := c.T.ReadKey()
	if c.T.Raw() && err == nil {
		echo := ""
		if k >= ' ' && k < 0x7f {
			echo = string(rune(k))
		}
		c.write(echo + "\n")
	}
	switch {
	case err == nil:
		c.failures = 0
	case errors.Is(err, ErrNotOneKey):
		c.failures = 0
		return 0, fmt.Errorf("%w: %w", game.ErrInvalidInput, err)
	case errors.Is(err, io.EOF), errors.Is(err, ErrUserInterrupt):
		return 0, err
	default:
		c.failures++
		if c.failures >= MaxReadFailures {
			return 0, fmt.Errorf("giving up after %d read errors in a row: %w", c.failures, err)
		}
		log.Warnf("Read error %d/%d: %v", c.failures, MaxReadFailures, err)
		return 0, fmt.Errorf("%w: %w", game.ErrInvalidInput, err)
	}
	return game.ParseAction(k)
}

// Reject reports the problem and pauses for the configured time.
func (c *Console) Reject(err error) {
	log.LogVf("Rejected input: %v", err)
	msg := InvalidInput
	if errors.Is(err, game.ErrNotImplemented) {
		msg = NoSplit
	}
	c.write(c.colored(Red, msg) + "\n")
	c.pause()
}

func (c *Console) pause() {
	if c.Pause <= 0 {
		return
	}
	t := c.Clock.NewTimer(c.Pause, "console", "pause")
	<-t.C
}

// Summary shows the session tally as a centered table.
func (c *Console) Summary(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	w := c.T.Width()
	lines, width := summaryTable(rows, w)
	var sb strings.Builder
	sb.WriteString(Centered(c.colored(Bold, "Session summary"), w))
	sb.WriteByte('\n')
	for _, l := range lines {
		sb.WriteString(Centered(l, max(w, width)))
		sb.WriteByte('\n')
	}
	c.write(sb.String())
}

// Lighter borders are used when the boxed table doesn't fit the screen.
var summaryStyles = []BorderStyle{BorderOuterColumns, BorderColumns, BorderNone}

func summaryTable(rows [][]string, screenWidth int) ([]string, int) {
	var lines []string
	width := 0
	for _, style := range summaryStyles {
		lines, width = CreateTableLines([]Alignment{Left, Right, Right}, 1, rows, style)
		if width <= screenWidth {
			break
		}
	}
	return lines, width
}
