// Package cli is the blackjack command line: flags, terminal setup and the
// rounds loop.
package cli

import (
	"errors"
	"flag"
	"io"
	"time"

	"fortio.org/blackjack/cards"
	"fortio.org/blackjack/console"
	"fortio.org/blackjack/game"
	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/safecast"
)

// Config is what the flags set, Run plays with it.
type Config struct {
	Seed    uint64
	Rounds  int
	Pause   time.Duration
	NoClear bool
	NoColor bool
	Line    bool
	Stack   string
	Summary bool
	// Term to use, opened on stdin/stdout when nil.
	Term *console.Terminal
}

func Main() int {
	seed := flag.Uint64("seed", 0, "Random number generator `seed`, default (0) is time based")
	rounds := flag.Int("rounds", 0, "Number of `rounds` to play, 0 is until Ctrl-C, Ctrl-D or end of input")
	pause := flag.Duration("pause", console.DefaultPause, "How long the incorrect input message stays before re-prompting")
	noClear := flag.Bool("no-clear", false, "Don't clear the screen before each display")
	noColor := flag.Bool("no-color", false, "Don't use colors for the cards and results")
	line := flag.Bool("line", false, "Line mode: press enter after each action, even on a terminal")
	stack := flag.String("stack", "", "Space separated `cards` dealt first, e.g \"As 10h 9d Kc\" (player, player, dealer, dealer, ...)")
	summary := flag.Bool("summary", true, "Show the session summary when done")
	cli.Main()
	if *rounds < 0 {
		return log.FErrf("Invalid number of rounds (%d) must be 0 (unlimited) or more", *rounds)
	}
	if *pause < 0 {
		return log.FErrf("Invalid pause (%v) must be positive or 0", *pause)
	}
	cfg := &Config{
		Seed:    *seed,
		Rounds:  *rounds,
		Pause:   *pause,
		NoClear: *noClear,
		NoColor: *noColor,
		Line:    *line,
		Stack:   *stack,
		Summary: *summary,
	}
	return cfg.Run()
}

func (cfg *Config) deck(seed uint64) (*cards.Deck, error) {
	if cfg.Stack == "" {
		return cards.NewDeck(seed), nil
	}
	top, err := cards.ParseCards(cfg.Stack)
	if err != nil {
		return nil, err
	}
	log.LogVf("Stacking %d cards on top of the deck: %v", len(top), top)
	return cards.NewStackedDeck(seed, top...)
}

// Run plays the configured rounds and returns the exit code.
// Running out of input or Ctrl-C/Ctrl-D is a normal exit.
func (cfg *Config) Run() int {
	seed := cfg.Seed
	if seed == 0 {
		seed = safecast.MustConvert[uint64](time.Now().UnixNano())
	}
	log.Infof("Blackjack seed %d (use -seed %d to replay the same deck)", seed, seed)
	deck, err := cfg.deck(seed)
	if err != nil {
		return log.FErrf("Invalid -stack %q: %v", cfg.Stack, err)
	}
	t := cfg.Term
	if t == nil {
		t, err = console.Open(cfg.Line)
		if err != nil {
			return log.FErrf("Error opening terminal: %v", err)
		}
		defer t.Close()
	}
	t.LoggerSetup()
	c := console.New(t)
	c.SetColor(!cfg.NoColor)
	c.Clear = c.Clear && !cfg.NoClear
	c.Pause = cfg.Pause
	g := game.New(c, seed)
	g.Deck = deck
	g.Rounds = cfg.Rounds
	err = g.Run()
	if cfg.Summary && g.Tally.Rounds > 0 {
		c.Summary(g.Tally.Rows())
	}
	switch {
	case err == nil:
		log.Infof("Played %d rounds", g.Tally.Rounds)
	case errors.Is(err, console.ErrUserInterrupt), errors.Is(err, io.EOF):
		log.Infof("Stopping after %d rounds: %v", g.Tally.Rounds, err)
	default:
		return log.FErrf("Error playing round %d: %v", g.Tally.Rounds+1, err)
	}
	return 0
}
