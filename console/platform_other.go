//go:build !windows

package console

// setupPlatform is a no-op, unix terminals are UTF-8 and ANSI already.
func setupPlatform() error {
	return nil
}
