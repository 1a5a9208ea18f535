package prompt

import (
	"errors"
	"testing"
)

func TestScriptServesLinesInOrder(t *testing.T) {
	script := NewScript("first", "second")

	line, err := script.ReadLine("> ")
	if err != nil || line != "first" {
		t.Fatalf("expected first line, got %q err=%v", line, err)
	}
	line, err = script.ReadLine(">> ")
	if err != nil || line != "second" {
		t.Fatalf("expected second line, got %q err=%v", line, err)
	}

	prompts := script.Prompts()
	if len(prompts) != 2 || prompts[0] != "> " || prompts[1] != ">> " {
		t.Fatalf("expected recorded prompts, got %v", prompts)
	}
}

func TestScriptExhaustionReportsEndOfInput(t *testing.T) {
	script := NewScript()
	if _, err := script.ReadLine("> "); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}
}

func TestScriptRecordsWrites(t *testing.T) {
	script := NewScript()
	script.WriteLine("hello")
	script.WriteLine("world")

	output := script.Output()
	if len(output) != 2 || output[0] != "hello" || output[1] != "world" {
		t.Fatalf("unexpected output: %v", output)
	}

	// The returned slice is a copy.
	output[0] = "mutated"
	if script.Output()[0] != "hello" {
		t.Fatalf("expected recorded output unaffected by caller mutation")
	}
}

func TestScriptClearScreenDropsOutput(t *testing.T) {
	script := NewScript()
	script.WriteLine("before")
	script.ClearScreen()
	script.WriteLine("after")

	if script.Cleared() != 1 {
		t.Fatalf("expected one clear, got %d", script.Cleared())
	}
	output := script.Output()
	if len(output) != 1 || output[0] != "after" {
		t.Fatalf("expected only post-clear output, got %v", output)
	}
}
