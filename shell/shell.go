// Package shell implements an interactive text menu shell: a read-dispatch
// loop over named screens of menu items, with shell-global items resolved
// ahead of screen-local ones and home/previous navigation between screens.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pronix/okaara/logging"
	"github.com/pronix/okaara/logging/events"
	"github.com/pronix/okaara/prompt"
	"github.com/pronix/okaara/theme"
)

// ErrStopRequested signals an orderly shutdown of the run loop. Handlers
// return it (directly or wrapped) to stop the shell; it is recognised only
// at the loop boundary and never reported as a failure.
var ErrStopRequested = errors.New("stop requested")

// DefaultPromptPrefix is the prompt template used when none is configured.
// The $s placeholder is replaced with the current screen's id.
const DefaultPromptPrefix = "($s) => "

// Executor dispatches a resolved menu item. A custom executor wraps each
// invocation with pre/post behaviour and calls item.Invoke to reach the
// handler.
type Executor func(item *MenuItem, args []string, opts map[string]string) error

// Config carries the knobs for building a shell. The zero value is usable:
// console prompt, no auto-render, long trigger aliases included, default
// prompt prefix, plain rendering, direct execution.
type Config struct {
	// Prompt is the console collaborator; nil selects prompt.NewConsole().
	Prompt prompt.Service

	// AutoRenderMenu re-renders the menu after every successful dispatch.
	AutoRenderMenu bool

	// ShortTriggersOnly drops the long aliases (home, quit, exit, help,
	// clear) of the built-in shell commands, leaving only the
	// single-character triggers.
	ShortTriggersOnly bool

	// PromptPrefix is the prompt template; $s is replaced with the current
	// screen id. Empty selects DefaultPromptPrefix.
	PromptPrefix string

	// Styles colours rendered menus; nil renders plain text.
	Styles *theme.Styles

	// Executor wraps menu item invocation; nil calls handlers directly.
	Executor Executor
}

// Shell orchestrates a set of screens, a shell-global menu, and the
// read-dispatch-execute loop. At any time exactly one screen is current;
// its items and the global items make up the commands available to the
// user. A Shell is driven by a single goroutine.
type Shell struct {
	prompt         prompt.Service
	autoRenderMenu bool
	promptPrefix   string
	styles         *theme.Styles
	executor       Executor

	screens  map[string]*Screen
	current  *Screen
	previous *Screen
	home     *Screen

	// global items share the Screen lookup/dedupe/display rules.
	global *Screen
}

// New builds a shell with the five built-in global commands registered:
// go-home, go-previous, show-help, clear-screen, and stop. At least one
// screen must be added before Start is called.
func New(cfg Config) *Shell {
	s := &Shell{
		prompt:         cfg.Prompt,
		autoRenderMenu: cfg.AutoRenderMenu,
		promptPrefix:   cfg.PromptPrefix,
		styles:         cfg.Styles,
		executor:       cfg.Executor,
		screens:        make(map[string]*Screen),
		global:         newScreen("shell"),
	}
	if s.prompt == nil {
		s.prompt = prompt.NewConsole()
	}
	if s.promptPrefix == "" {
		s.promptPrefix = DefaultPromptPrefix
	}
	if s.executor == nil {
		s.executor = func(item *MenuItem, args []string, opts map[string]string) error {
			return item.Invoke(args, opts)
		}
	}

	homeTriggers := []string{"^"}
	previousTriggers := []string{"<"}
	helpTriggers := []string{"?"}
	clearTriggers := []string{"/"}
	quitTriggers := []string{"q"}
	if !cfg.ShortTriggersOnly {
		homeTriggers = append(homeTriggers, "home")
		quitTriggers = append(quitTriggers, "quit", "exit")
		helpTriggers = append(helpTriggers, "help")
		clearTriggers = append(clearTriggers, "clear")
	}

	s.registerBuiltin(homeTriggers, "move to the home screen", func([]string, map[string]string) error {
		s.Home()
		return nil
	})
	s.registerBuiltin(previousTriggers, "move to the previous screen", func([]string, map[string]string) error {
		s.Previous()
		return nil
	})
	s.registerBuiltin(helpTriggers, "display help", func([]string, map[string]string) error {
		s.RenderMenu(true)
		return nil
	})
	s.registerBuiltin(clearTriggers, "clears the screen", func([]string, map[string]string) error {
		s.clearScreen()
		return nil
	})
	s.registerBuiltin(quitTriggers, "exit", func([]string, map[string]string) error {
		return ErrStopRequested
	})

	return s
}

func (s *Shell) registerBuiltin(triggers []string, description string, handler Handler) {
	item := &MenuItem{triggers: triggers, description: description, handler: handler}
	s.global.AddMenuItem(item)
}

// AddScreen registers a screen, replacing any previous screen with the same
// id. The first screen ever added becomes the current screen; it also
// becomes the home screen unless a later call overrides that with isHome.
func (s *Shell) AddScreen(screen *Screen, isHome bool) error {
	if screen == nil {
		return fmt.Errorf("%w: screen must not be nil", ErrInvalidArgument)
	}
	s.screens[screen.ID()] = screen
	if s.current == nil {
		s.current = screen
	}
	if isHome || s.home == nil {
		s.home = screen
	}
	return nil
}

// AddMenuItem registers an item available from every screen. Global items
// are resolved before the current screen's items.
func (s *Shell) AddMenuItem(item *MenuItem) error {
	return s.global.AddMenuItem(item)
}

// CurrentScreen returns the active screen, or nil before any screen is
// added.
func (s *Shell) CurrentScreen() *Screen {
	return s.current
}

// PreviousScreen returns the screen that was current before the most recent
// transition, or nil when no transition has occurred.
func (s *Shell) PreviousScreen() *Screen {
	return s.previous
}

// HomeScreen returns the designated home screen, or nil before any screen
// is added.
func (s *Shell) HomeScreen() *Screen {
	return s.home
}

// Start runs the read-dispatch-execute loop until end of input, an
// interrupt, or a handler returning ErrStopRequested. Any other handler
// error propagates to the caller unchanged; the shell itself stays
// inspectable after the loop ends.
func (s *Shell) Start() error {
	for {
		line, err := s.prompt.ReadLine(s.renderedPrefix())
		if err != nil {
			if errors.Is(err, prompt.ErrEndOfInput) || errors.Is(err, prompt.ErrInterrupted) {
				s.prompt.WriteLine("")
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		trigger, commandArgs := fields[0], fields[1:]

		item := s.global.Lookup(trigger)
		if item == nil && s.current != nil {
			item = s.current.Lookup(trigger)
		}
		if item == nil {
			events.Shell.UnknownTrigger(s.currentID(), trigger)
			s.prompt.WriteLine(s.invalidItemMessage(trigger))
			continue
		}

		events.Shell.Dispatch(s.currentID(), trigger, len(commandArgs))
		err = s.executor(item, item.invocationArgs(commandArgs), item.invocationOpts())
		if err != nil {
			if errors.Is(err, ErrStopRequested) {
				events.Shell.Stop(s.currentID())
				return nil
			}
			return err
		}

		if s.autoRenderMenu {
			s.RenderMenu(true)
		}
	}
}

// Transition moves the shell to the identified screen. An empty or unknown
// id is logged and corrected to the home screen; losing navigational state
// on a bad id would be worse than defaulting. Exactly one level of history
// is kept: previous always reflects the screen that was current immediately
// before this call.
func (s *Shell) Transition(screenID string) {
	target, ok := s.screens[screenID]
	if !ok {
		logging.Errorf("attempt to transition to non-existent screen [%s]", screenID)
		target = s.home
	}
	if target == nil {
		return
	}
	events.Shell.Transition(s.currentID(), target.ID())
	s.previous = s.current
	s.current = target
}

// Previous moves to the screen that was current before the last transition,
// or home when there is none.
func (s *Shell) Previous() {
	if s.previous == nil {
		s.Home()
		return
	}
	s.Transition(s.previous.ID())
}

// Home moves to the home screen.
func (s *Shell) Home() {
	if s.home == nil {
		return
	}
	s.Transition(s.home.ID())
}

func (s *Shell) clearScreen() {
	if clearer, ok := s.prompt.(prompt.ScreenClearer); ok {
		clearer.ClearScreen()
	}
}

// renderedPrefix substitutes the current screen id into the prompt
// template, falling back to the home id when no screen is current yet.
func (s *Shell) renderedPrefix() string {
	id := ""
	switch {
	case s.current != nil:
		id = s.current.ID()
	case s.home != nil:
		id = s.home.ID()
	}
	return strings.ReplaceAll(s.promptPrefix, "$s", id)
}

func (s *Shell) currentID() string {
	if s.current == nil {
		return ""
	}
	return s.current.ID()
}
