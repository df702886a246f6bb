// nocolor strips the Ansi sequences (colors, screen clears...) from a
// recorded blackjack session, e.g. `blackjack | tee game.log` then
// `nocolor < game.log`, leaving the plain hands and results.
package main

import (
	"errors"
	"io"
	"os"

	"fortio.org/blackjack/console"
	"fortio.org/cli"
	"fortio.org/log"
)

func main() {
	os.Exit(Main())
}

// Filter copies in to out without the Ansi sequences and without \r (from
// raw mode transcripts). Returns the number of bytes read and written.
// A sequence cut by a read is held until the next one completes it.
func Filter(in io.Reader, out io.Writer) (totalR, totalW int64, err error) {
	var buf [1024]byte
	var pending []byte
	for {
		rn, rerr := in.Read(buf[:])
		if rn > 0 {
			totalR += int64(rn)
			pending = append(pending, buf[:rn]...)
			cut := console.UnterminatedAnsi(pending)
			filtered := dropCR(console.AnsiClean(pending[:cut]))
			pending = pending[cut:]
			wn, werr := out.Write(filtered)
			totalW += int64(wn)
			if werr != nil {
				return totalR, totalW, werr
			}
		}
		if errors.Is(rerr, io.EOF) {
			// Unterminated sequence at the very end is dropped.
			return totalR, totalW, nil
		}
		if rerr != nil {
			return totalR, totalW, rerr
		}
	}
}

func dropCR(b []byte) []byte {
	res := b[:0]
	for _, c := range b {
		if c != '\r' {
			res = append(res, c)
		}
	}
	return res
}

func Main() int {
	cli.ServerMode = true // trick to avoid color mode.
	log.Config.ConsoleColor = false
	log.Config.JSON = false
	log.SetColorMode()
	cli.ArgsHelp = "\nReads a blackjack session from stdin, writes it to stdout without the Ansi codes\n"
	cli.Main()
	r, w, err := Filter(os.Stdin, os.Stdout)
	if err != nil {
		return log.FErrf("Error filtering: %v", err)
	}
	log.LogVf("Filtered %d bytes (Total bytes read: %d, written: %d)", r-w, r, w)
	return 0
}
