package shell

import (
	"github.com/mattn/go-runewidth"

	"github.com/pronix/okaara/logging/events"
)

const (
	menuIndent         = "   "
	descriptionIndent  = "       "
	triggerColumnWidth = 4
)

// RenderMenu writes the current screen's menu to the prompt service: a
// blank separator, the screen items in display order, then (when requested
// and any exist) a separator and the shell-global items in registration
// order, then a trailing blank line.
func (s *Shell) RenderMenu(displayShellMenu bool) {
	s.prompt.WriteLine("")

	var items []*MenuItem
	if s.current != nil {
		items = s.current.OrderedItems()
	}
	for _, item := range items {
		s.renderMenuItem(item)
	}

	if displayShellMenu {
		if shellItems := s.global.OrderedItems(); len(shellItems) > 0 {
			s.prompt.WriteLine("")
			for _, item := range shellItems {
				s.renderMenuItem(item)
			}
		}
	}

	s.prompt.WriteLine("")
	events.Shell.Render(s.currentID(), len(items))
}

// renderMenuItem writes one menu entry. Triggers narrower than the trigger
// column share a line with the description; wider triggers take their own
// line with the description indented below, so the column never overflows.
// Padding is computed on the unstyled text, which keeps the layout stable
// when a theme is active.
func (s *Shell) renderMenuItem(item *MenuItem) {
	trigger := item.primaryTrigger()
	description := item.Description()
	if runewidth.StringWidth(trigger) < triggerColumnWidth {
		padded := runewidth.FillRight(trigger, triggerColumnWidth)
		s.prompt.WriteLine(menuIndent + s.styles.RenderTrigger(padded) + s.styles.RenderDescription(description))
		return
	}
	s.prompt.WriteLine(menuIndent + s.styles.RenderTrigger(trigger))
	s.prompt.WriteLine(descriptionIndent + s.styles.RenderDescription(description))
}
