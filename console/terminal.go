// Package console is the terminal side of the blackjack game: keystroke or
// line input, rendering of the table and the logger setup to go with it.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/term"
)

// DefaultWidth is used when the output isn't a terminal.
const DefaultWidth = 80

// ErrNotOneKey is returned in line mode when the line isn't exactly one character.
var ErrNotOneKey = errors.New("expected exactly one character")

// Terminal reads one decision at a time: a single keystroke in raw mode or
// a single character line otherwise.
type Terminal struct {
	In       io.Reader
	Out      io.Writer
	fd       int
	fdOut    int
	oldState *term.State
	lines    *bufio.Reader
	buf      [16]byte
}

// Open opens stdin/stdout, do `defer t.Close()` to restore the terminal to
// its original state upon exit. Raw (keystroke) mode is used when stdin is a
// terminal unless lineMode is requested.
func Open(lineMode bool) (*Terminal, error) {
	t := &Terminal{
		In:    os.Stdin,
		Out:   os.Stdout,
		fd:    safecast.MustConvert[int](os.Stdin.Fd()),
		fdOut: safecast.MustConvert[int](os.Stdout.Fd()),
	}
	if err := setupPlatform(); err != nil {
		log.Warnf("Console setup: %v", err)
	}
	if lineMode || !term.IsTerminal(t.fd) {
		log.LogVf("Using line mode input")
		t.lines = bufio.NewReader(t.In)
		return t, nil
	}
	var err error
	t.oldState, err = term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	t.Out = &CRLFWriter{Out: os.Stdout}
	return t, nil
}

// NewLineTerminal returns a line mode terminal on arbitrary streams (pipes, tests).
func NewLineTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		In:    in,
		Out:   out,
		fd:    -1,
		fdOut: -1,
		lines: bufio.NewReader(in),
	}
}

// Raw is true when reading single keystrokes.
func (t *Terminal) Raw() bool {
	return t.oldState != nil
}

// Setups fortio logger to write to the terminal as needed (\r\n in raw mode).
func (t *Terminal) LoggerSetup() {
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	if t.Raw() {
		log.SetOutput(&CRLFWriter{Out: os.Stderr})
	}
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

// Width returns the terminal width, DefaultWidth when unknown.
func (t *Terminal) Width() int {
	if t.fdOut < 0 || !term.IsTerminal(t.fdOut) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(t.fdOut)
	if err != nil || w <= 0 {
		log.Debugf("GetSize failed (%v), using %d", err, DefaultWidth)
		return DefaultWidth
	}
	return w
}

// Close restores the terminal if it was put in raw mode.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.oldState)
	t.oldState = nil
	t.Out = os.Stdout
	log.SetOutput(os.Stderr)
	return err
}

// ReadKey returns the next decision character.
// Raw mode: Ctrl-C or Ctrl-D return ErrUserInterrupt, extra bytes of the
// same read (escape sequences, pastes) are discarded.
// Line mode: leading/trailing spaces are ignored, anything but exactly one
// character is ErrNotOneKey. io.EOF is returned at the end of the input.
func (t *Terminal) ReadKey() (byte, error) {
	if t.lines != nil {
		return t.readLineKey()
	}
	for {
		n, err := t.In.Read(t.buf[:])
		if err != nil {
			return 0, NewErrInterruptedWithErr("reading keystroke", err)
		}
		if n == 0 {
			continue
		}
		if interruptIndex(t.buf[:n]) >= 0 {
			log.Infof("Ctrl-C/Ctrl-D found in input")
			return 0, ErrUserInterrupt
		}
		if n > 1 {
			log.Debugf("Discarding %d extra bytes %q", n-1, t.buf[1:n])
		}
		return t.buf[0], nil
	}
}

func (t *Terminal) readLineKey() (byte, error) {
	line, err := t.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return 0, io.EOF
	}
	line = strings.TrimSpace(line)
	if len(line) != 1 {
		return 0, fmt.Errorf("%w, got %q", ErrNotOneKey, line)
	}
	return line[0], nil
}
