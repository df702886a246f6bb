package console

import (
	"bytes"
	"testing"
)

func TestCRLFWrite(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\n", "\r\n"},
		{"a\nb", "a\r\nb"},
		{"a\n\nb\n", "a\r\n\r\nb\r\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := &CRLFWriter{Out: &buf}
		n, err := w.Write([]byte(tt.in))
		if err != nil {
			t.Errorf("unexpected error %v", err)
		}
		if n != len(tt.in) {
			t.Errorf("for %q expected n %d got %d", tt.in, len(tt.in), n)
		}
		if buf.String() != tt.out {
			t.Errorf("for %q expected %q got %q", tt.in, tt.out, buf.String())
		}
	}
}

func TestNoColorWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &NoColorWriter{Out: &buf}
	in := Red + "10♥" + Reset + " " + ClearScreen + "K♣"
	n, err := w.Write([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n != len(in) {
		t.Errorf("expected n %d got %d", len(in), n)
	}
	if buf.String() != "10♥ K♣" {
		t.Errorf("got %q", buf.String())
	}
}
