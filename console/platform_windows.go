//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const codePageUTF8 = 65001

var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
)

// setupPlatform switches the console to UTF-8 output, for the suit glyphs,
// and turns on VT processing so the ANSI codes are interpreted.
func setupPlatform() error {
	r, _, err := procSetConsoleOutputCP.Call(uintptr(codePageUTF8))
	if r == 0 {
		return err
	}
	h := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err // not a console, redirected output.
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
