package shell

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every registration or construction error
// caused by a missing required argument.
var ErrInvalidArgument = errors.New("invalid argument")

// Handler is the callable bound to a menu item. args holds the item's bound
// arguments followed by whatever extra tokens the user typed after the
// trigger; opts holds the item's bound options unchanged.
type Handler func(args []string, opts map[string]string) error

// Noop is a handler that does nothing. It lets a menu be prototyped before
// the real handlers exist.
func Noop(args []string, opts map[string]string) error {
	return nil
}

// MenuItem binds one or more trigger strings to a description and a handler
// with pre-bound arguments. Items are immutable once constructed and are
// owned by whichever Screen or Shell registered them.
type MenuItem struct {
	triggers    []string
	description string
	handler     Handler
	boundArgs   []string
	boundOpts   map[string]string
}

// NewMenuItem builds an item. All triggers are interchangeable aliases for
// the same handler. boundArgs are prepended to any tokens the user supplies
// after the trigger.
func NewMenuItem(triggers []string, description string, handler Handler, boundArgs ...string) (*MenuItem, error) {
	return NewMenuItemWithOptions(triggers, description, handler, boundArgs, nil)
}

// NewMenuItemWithOptions additionally binds named options that will be
// passed to the handler on every invocation.
func NewMenuItemWithOptions(triggers []string, description string, handler Handler, boundArgs []string, boundOpts map[string]string) (*MenuItem, error) {
	if len(triggers) == 0 {
		return nil, fmt.Errorf("%w: menu item requires at least one trigger", ErrInvalidArgument)
	}
	for _, trigger := range triggers {
		if trigger == "" {
			return nil, fmt.Errorf("%w: menu item triggers must be non-empty", ErrInvalidArgument)
		}
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: menu item handler must not be nil", ErrInvalidArgument)
	}
	item := &MenuItem{
		triggers:    append([]string(nil), triggers...),
		description: description,
		handler:     handler,
		boundArgs:   append([]string(nil), boundArgs...),
	}
	if len(boundOpts) > 0 {
		item.boundOpts = make(map[string]string, len(boundOpts))
		for k, v := range boundOpts {
			item.boundOpts[k] = v
		}
	}
	return item, nil
}

// Triggers returns a copy of the item's trigger aliases.
func (i *MenuItem) Triggers() []string {
	return append([]string(nil), i.triggers...)
}

// Description returns the display string.
func (i *MenuItem) Description() string {
	return i.description
}

// Invoke calls the underlying handler. Custom executors use it to reach the
// handler after running their own pre/post hooks.
func (i *MenuItem) Invoke(args []string, opts map[string]string) error {
	return i.handler(args, opts)
}

// primaryTrigger is the alias shown in rendered menus.
func (i *MenuItem) primaryTrigger() string {
	return i.triggers[0]
}

// equalTriggers reports whether both items carry the same trigger sequence.
// Item equality is defined by triggers alone so the display list can dedupe
// re-registrations that only change description or handler.
func (i *MenuItem) equalTriggers(other *MenuItem) bool {
	if other == nil || len(i.triggers) != len(other.triggers) {
		return false
	}
	for n, trigger := range i.triggers {
		if other.triggers[n] != trigger {
			return false
		}
	}
	return true
}

// invocationArgs builds the final positional arguments: bound args first,
// then the user-supplied tokens.
func (i *MenuItem) invocationArgs(commandArgs []string) []string {
	args := make([]string, 0, len(i.boundArgs)+len(commandArgs))
	args = append(args, i.boundArgs...)
	return append(args, commandArgs...)
}

// invocationOpts copies the bound options so a handler cannot mutate the
// item through them.
func (i *MenuItem) invocationOpts() map[string]string {
	if len(i.boundOpts) == 0 {
		return nil
	}
	opts := make(map[string]string, len(i.boundOpts))
	for k, v := range i.boundOpts {
		opts[k] = v
	}
	return opts
}
