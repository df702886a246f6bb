package console

import (
	"bytes"
	"io"
)

// CRLFWriter adds the \r raw mode terminals need before each \n.
type CRLFWriter struct {
	// Out is the underlying writer to write to.
	Out io.Writer
}

func (w *CRLFWriter) Write(buf []byte) (n int, err error) {
	return CRLFWrite(w.Out, buf)
}

// CRLFWrite writes buf to out with every \n turned into \r\n.
// The returned count is in terms of buf (so \r aren't counted).
func CRLFWrite(out io.Writer, buf []byte) (n int, err error) {
	// Somewhat copied from x/term's writeWithCRLF
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, '\n')
		todo := len(buf)
		if i >= 0 {
			todo = i
		}
		var nn int
		nn, err = out.Write(buf[:todo])
		n += nn
		if err != nil {
			return n, err
		}
		buf = buf[todo:]
		if i >= 0 {
			if _, err = out.Write([]byte{'\r', '\n'}); err != nil {
				return n, err
			}
			n++
			buf = buf[1:]
		}
	}
	// Auto flush
	if flusher, ok := out.(FlushWriter); ok {
		err = flusher.Flush()
	}
	return n, err
}

type FlushWriter interface {
	io.Writer
	Flush() error
}

// NoColorWriter strips ANSI escape sequences before writing to Out.
// Writes are expected to hold whole sequences, which is how Console uses it.
type NoColorWriter struct {
	Out io.Writer
}

func (w *NoColorWriter) Write(buf []byte) (int, error) {
	_, err := w.Out.Write(AnsiClean(buf))
	if err != nil {
		return 0, err
	}
	return len(buf), nil
}
