package prompt

// Script replays a fixed sequence of input lines and records everything the
// shell writes. Once the lines run out every read reports ErrEndOfInput,
// which a shell treats the same as a user closing the terminal. It drives
// the shell programmatically in tests and canned demos.
type Script struct {
	lines   []string
	next    int
	output  []string
	prompts []string
	cleared int
}

// NewScript builds a scripted prompt that will serve the given lines in
// order.
func NewScript(lines ...string) *Script {
	return &Script{lines: append([]string(nil), lines...)}
}

// ReadLine serves the next scripted line, recording the prefix the shell
// displayed for it.
func (s *Script) ReadLine(prefix string) (string, error) {
	s.prompts = append(s.prompts, prefix)
	if s.next >= len(s.lines) {
		return "", ErrEndOfInput
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// WriteLine records text.
func (s *Script) WriteLine(text string) {
	s.output = append(s.output, text)
}

// ClearScreen records that a clear was requested and drops the captured
// output, mirroring what a real terminal clear leaves behind.
func (s *Script) ClearScreen() {
	s.cleared++
	s.output = nil
}

// Output returns a copy of everything written so far.
func (s *Script) Output() []string {
	return append([]string(nil), s.output...)
}

// Prompts returns a copy of the prefixes shown for each read, in order.
func (s *Script) Prompts() []string {
	return append([]string(nil), s.prompts...)
}

// Cleared reports how many times the screen was cleared.
func (s *Script) Cleared() int {
	return s.cleared
}
