// Command okaara-demo is a small embedding of the menu shell: two screens,
// a handful of commands, and the built-in shell menu. It exists to exercise
// the library end to end from a real terminal.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pronix/okaara/logging"
	"github.com/pronix/okaara/logging/events"
	"github.com/pronix/okaara/prompt"
	"github.com/pronix/okaara/shell"
	"github.com/pronix/okaara/theme"
)

func main() {
	cfg := MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupPayload(cfg))

	sh, console, err := buildShell(cfg)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	console.WriteLine("okaara demo shell; type \"?\" for the menu")
	sh.RenderMenu(true)
	if err := sh.Start(); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildShell(cfg Config) (*shell.Shell, *prompt.Console, error) {
	console := prompt.NewConsole()

	var styles *theme.Styles
	if cfg.Color {
		styles = theme.Default()
	}

	sh := shell.New(shell.Config{
		Prompt:            console,
		AutoRenderMenu:    cfg.AutoRender,
		ShortTriggersOnly: cfg.ShortTriggers,
		Styles:            styles,
	})

	mainScreen, err := shell.NewScreen("main")
	if err != nil {
		return nil, nil, err
	}
	notesScreen, err := shell.NewScreen("notes")
	if err != nil {
		return nil, nil, err
	}

	var notes []string

	greet, err := shell.NewMenuItem([]string{"g", "greet"}, "greet the given name", func(args []string, _ map[string]string) error {
		name := "stranger"
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		console.WriteLine("hello, " + name)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	toNotes, err := shell.NewMenuItem([]string{"n", "notes"}, "switch to the notes screen", func([]string, map[string]string) error {
		sh.Transition("notes")
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	for _, item := range []*shell.MenuItem{greet, toNotes} {
		if err := mainScreen.AddMenuItem(item); err != nil {
			return nil, nil, err
		}
	}

	addNote, err := shell.NewMenuItem([]string{"a", "add"}, "add a note", func(args []string, _ map[string]string) error {
		if len(args) == 0 {
			console.WriteLine("usage: add <text>")
			return nil
		}
		notes = append(notes, strings.Join(args, " "))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	listNotes, err := shell.NewMenuItem([]string{"l", "list"}, "list all notes", func([]string, map[string]string) error {
		if len(notes) == 0 {
			console.WriteLine("(no notes)")
			return nil
		}
		for i, note := range notes {
			console.WriteLine(fmt.Sprintf("%d. %s", i+1, note))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	for _, item := range []*shell.MenuItem{addNote, listNotes} {
		if err := notesScreen.AddMenuItem(item); err != nil {
			return nil, nil, err
		}
	}

	if err := sh.AddScreen(mainScreen, true); err != nil {
		return nil, nil, err
	}
	if err := sh.AddScreen(notesScreen, false); err != nil {
		return nil, nil, err
	}
	return sh, console, nil
}

// startupPayload bundles runtime context for trace logging.
func startupPayload(cfg Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
