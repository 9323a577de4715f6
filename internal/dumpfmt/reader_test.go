package dumpfmt

import (
	"io"
	"strings"
	"testing"
)

func TestReaderNext(t *testing.T) {
	r := NewReader(strings.NewReader("one\ntwo\nthree"))

	for _, want := range []string{"one\n", "two\n", "three"} {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Errorf("Next = %q, want %q", got, want)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next at end = %v, want io.EOF", err)
	}
}

func TestReaderPushback(t *testing.T) {
	r := NewReader(strings.NewReader("one\ntwo\n"))

	line, _ := r.Next()
	if line != "one\n" {
		t.Fatalf("Next = %q", line)
	}
	r.Pushback()
	line, _ = r.Next()
	if line != "one\n" {
		t.Errorf("Next after Pushback = %q, want %q", line, "one\n")
	}
	line, _ = r.Next()
	if line != "two\n" {
		t.Errorf("Next = %q, want %q", line, "two\n")
	}
}

func TestReaderDoublePushbackPanics(t *testing.T) {
	r := NewReader(strings.NewReader("one\n"))
	r.Next()
	r.Pushback()

	defer func() {
		if recover() == nil {
			t.Error("second Pushback did not panic")
		}
	}()
	r.Pushback()
}

func TestReaderPushbackBeforeReadPanics(t *testing.T) {
	r := NewReader(strings.NewReader("one\n"))

	defer func() {
		if recover() == nil {
			t.Error("Pushback before first read did not panic")
		}
	}()
	r.Pushback()
}
