// Package prompt defines the line-oriented console boundary used by the
// shell: one blocking read, one fire-and-forget write. Implementations
// translate their own end-of-input and interrupt conditions into the
// sentinel errors below so the shell can unwind its loop without caring
// which backend produced them.
package prompt

import "errors"

var (
	// ErrEndOfInput reports that the input source is exhausted (Ctrl-D on a
	// terminal, end of a script, a closed reader).
	ErrEndOfInput = errors.New("prompt: end of input")

	// ErrInterrupted reports that the user interrupted the pending read
	// (Ctrl-C on a terminal).
	ErrInterrupted = errors.New("prompt: interrupted")
)

// Service is the prompt collaborator injected into a shell.
type Service interface {
	// ReadLine blocks for a single line of input, displaying prefix while
	// waiting. It returns ErrEndOfInput or ErrInterrupted instead of a line
	// when the read is cut short.
	ReadLine(prefix string) (string, error)

	// WriteLine emits one line of output. The shell never consults a result.
	WriteLine(text string)
}

// ScreenClearer is an optional capability a Service may provide. The shell's
// built-in clear command probes for it and does nothing when absent.
type ScreenClearer interface {
	ClearScreen()
}
