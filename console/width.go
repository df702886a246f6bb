package console

import (
	"strings"

	"github.com/rivo/uniseg"
)

// AnsiClean removes ANSI escape sequences (CSI and 2 byte ones) from buf.
// Unterminated sequences at the end are dropped too.
func AnsiClean(buf []byte) []byte {
	res := make([]byte, 0, len(buf))
	n := len(buf)
	for i := 0; i < n; i++ {
		c := buf[i]
		if c != 0x1b {
			res = append(res, c)
			continue
		}
		i++
		if i >= n {
			break
		}
		if buf[i] != '[' {
			continue // ESC + one byte.
		}
		// CSI: parameters and intermediates until the final byte in @..~
		for i++; i < n; i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				break
			}
		}
	}
	return res
}

// UnterminatedAnsi returns where an escape sequence left incomplete at the end
// of buf starts, len(buf) when there is none.
func UnterminatedAnsi(buf []byte) int {
	n := len(buf)
	for i := 0; i < n; i++ {
		if buf[i] != 0x1b {
			continue
		}
		start := i
		i++
		if i >= n {
			return start
		}
		if buf[i] != '[' {
			continue
		}
		for i++; i < n; i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				break
			}
		}
		if i >= n {
			return start
		}
	}
	return n
}

// ScreenWidth is the number of terminal columns s uses once escape
// sequences are removed.
func ScreenWidth(s string) int {
	if strings.IndexByte(s, 0x1b) >= 0 {
		s = string(AnsiClean([]byte(s)))
	}
	return uniseg.StringWidth(s)
}

// Centered pads s on the left so it's centered in width columns.
func Centered(s string, width int) string {
	pad := (width - ScreenWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
