package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestReaderConsoleScansLines(t *testing.T) {
	var out strings.Builder
	console := NewReaderConsole(strings.NewReader("one\ntwo\n"), &out)

	line, err := console.ReadLine("> ")
	if err != nil || line != "one" {
		t.Fatalf("expected first line, got %q err=%v", line, err)
	}
	line, err = console.ReadLine("> ")
	if err != nil || line != "two" {
		t.Fatalf("expected second line, got %q err=%v", line, err)
	}
	if !strings.HasPrefix(out.String(), "> ") {
		t.Fatalf("expected prefix written before reading, got %q", out.String())
	}
}

func TestReaderConsoleEndOfInput(t *testing.T) {
	console := NewReaderConsole(strings.NewReader(""), new(strings.Builder))
	if _, err := console.ReadLine("> "); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}
}

func TestConsoleWriteLineAppendsNewline(t *testing.T) {
	var out strings.Builder
	console := NewReaderConsole(strings.NewReader(""), &out)
	console.WriteLine("hello")
	if out.String() != "hello\n" {
		t.Fatalf("expected newline-terminated write, got %q", out.String())
	}
}

func TestConsoleClearScreenWritesANSISequence(t *testing.T) {
	var out strings.Builder
	console := NewReaderConsole(strings.NewReader(""), &out)
	console.ClearScreen()
	if out.String() != clearSequence {
		t.Fatalf("expected clear sequence, got %q", out.String())
	}
}
