package shell

import "fmt"

// Screen is one named section of a shell: an ordered collection of menu
// items keyed by trigger for lookup and by insertion order for display.
type Screen struct {
	id       string
	triggers map[string]*MenuItem
	ordered  []*MenuItem
}

// NewScreen builds an empty screen with the given identity.
func NewScreen(id string) (*Screen, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: screen id must be non-empty", ErrInvalidArgument)
	}
	return newScreen(id), nil
}

func newScreen(id string) *Screen {
	return &Screen{id: id, triggers: make(map[string]*MenuItem)}
}

// ID returns the screen's identity, stable for the shell's lifetime.
func (s *Screen) ID() string {
	return s.id
}

// AddMenuItem registers item under each of its triggers. A trigger that is
// already taken is silently overwritten by the new item. The display order
// gains the item only if no trigger-equal item is already listed, so
// re-registering an item never produces a duplicate visual entry.
func (s *Screen) AddMenuItem(item *MenuItem) error {
	if item == nil {
		return fmt.Errorf("%w: menu item must not be nil", ErrInvalidArgument)
	}
	for _, trigger := range item.triggers {
		s.triggers[trigger] = item
	}
	for _, existing := range s.ordered {
		if existing.equalTriggers(item) {
			return nil
		}
	}
	s.ordered = append(s.ordered, item)
	return nil
}

// Lookup resolves a trigger to its item, or nil when the trigger is not
// registered on this screen.
func (s *Screen) Lookup(trigger string) *MenuItem {
	return s.triggers[trigger]
}

// OrderedItems returns the display order as a snapshot; mutating the screen
// afterwards does not alter an already-returned slice.
func (s *Screen) OrderedItems() []*MenuItem {
	return append([]*MenuItem(nil), s.ordered...)
}
