package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"fortio.org/blackjack/console"
)

func TestFilter(t *testing.T) {
	in := console.ClearScreen + "Dealer hand (19):\r\n" + console.BrightRed + "9♦" + console.Reset + "\r\n" +
		console.BrightGreen + "Player won!" + console.Reset + "\r\n"
	var out bytes.Buffer
	r, w, err := Filter(strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	expected := "Dealer hand (19):\n9♦\nPlayer won!\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
	if r != int64(len(in)) || w != int64(len(expected)) {
		t.Errorf("unexpected counts read %d written %d", r, w)
	}
}

func TestFilterSequenceAcrossReads(t *testing.T) {
	prefix := strings.Repeat("a", 1022)
	tests := []struct {
		name string
		in   func(string) io.Reader
	}{
		{"buffer boundary", func(s string) io.Reader { return strings.NewReader(s) }},
		{"one byte reads", func(s string) io.Reader { return iotest.OneByteReader(strings.NewReader(s)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := prefix + console.ClearScreen + "Dealer" + console.BrightRed + "9♦" + console.Reset + "\r\n\x1b["
			var out bytes.Buffer
			r, _, err := Filter(tt.in(in), &out)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			expected := prefix + "Dealer9♦\n"
			if out.String() != expected {
				t.Errorf("expected %q, got %q", expected[1000:], out.String()[min(1000, out.Len()):])
			}
			if r != int64(len(in)) {
				t.Errorf("read %d, expected %d", r, len(in))
			}
		})
	}
}
