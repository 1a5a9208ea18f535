package shell

import (
	"strings"
	"testing"

	"github.com/pronix/okaara/prompt"
)

func TestUnknownTriggerSuggestsNearestMatch(t *testing.T) {
	script := prompt.NewScript("qui")
	sh := New(Config{Prompt: script})
	sh.AddScreen(mustScreen(t, "main"), false)

	if err := sh.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := strings.Join(script.Output(), "\n")
	if !strings.Contains(output, `did you mean "quit"?`) {
		t.Fatalf("expected quit suggestion, output:\n%s", output)
	}
}

func TestUnknownTriggerWithoutNearMissHasNoSuggestion(t *testing.T) {
	script := prompt.NewScript("zzz")
	sh := New(Config{Prompt: script})
	sh.AddScreen(mustScreen(t, "main"), false)

	if err := sh.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := strings.Join(script.Output(), "\n")
	if !strings.Contains(output, "Invalid menu item") {
		t.Fatalf("expected invalid item message, output:\n%s", output)
	}
	if strings.Contains(output, "did you mean") {
		t.Fatalf("expected no suggestion for %q, output:\n%s", "zzz", output)
	}
}

func TestSuggestionsIncludeScreenTriggers(t *testing.T) {
	script := prompt.NewScript("stat")
	sh := New(Config{Prompt: script})
	screen := mustScreen(t, "main")
	screen.AddMenuItem(mustItem(t, []string{"status"}, "show status", Noop))
	sh.AddScreen(screen, false)

	if err := sh.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := strings.Join(script.Output(), "\n")
	if !strings.Contains(output, `did you mean "status"?`) {
		t.Fatalf("expected status suggestion, output:\n%s", output)
	}
}
