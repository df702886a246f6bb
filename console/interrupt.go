package console

const (
	CtrlC = 3 // Control-C is ascii 3 (C is 3rd letter of the alphabet)
	CtrlD = 4 // End of transmission, raw mode equivalent of EOF.
)

// ErrUserInterrupt is returned when Ctrl-C or Ctrl-D is typed in raw mode.
var ErrUserInterrupt = NewErrInterrupted("terminal interrupted by user")

type InterruptedError struct {
	DetailedReason string
	OriginalError  error
}

func (e InterruptedError) Unwrap() error {
	return e.OriginalError
}

func (e InterruptedError) Error() string {
	if e.OriginalError != nil {
		return "terminal interrupted: " + e.DetailedReason + ": " + e.OriginalError.Error()
	}
	return "terminal interrupted: " + e.DetailedReason
}

func NewErrInterrupted(reason string) InterruptedError {
	return InterruptedError{DetailedReason: reason}
}

func NewErrInterruptedWithErr(reason string, err error) InterruptedError {
	return InterruptedError{DetailedReason: reason, OriginalError: err}
}

// interruptIndex returns the position of the first Ctrl-C or Ctrl-D in buf, or -1.
func interruptIndex(buf []byte) int {
	for i, c := range buf {
		if c == CtrlC || c == CtrlD {
			return i
		}
	}
	return -1
}
