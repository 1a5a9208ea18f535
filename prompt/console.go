package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	naoprompt "github.com/nao1215/prompt"
	"golang.org/x/term"
)

const clearSequence = "\x1b[2J\x1b[H"

// Console reads from standard input and writes to standard output. When
// stdin is a terminal each read goes through an interactive line editor
// (history-free, single line); otherwise lines are consumed from a buffered
// scanner so piped input and heredocs behave.
type Console struct {
	out     io.Writer
	scanner *bufio.Scanner
	isTTY   bool
}

// NewConsole builds a console prompt bound to the process's standard
// streams.
func NewConsole() *Console {
	return &Console{
		out:     os.Stdout,
		scanner: bufio.NewScanner(os.Stdin),
		isTTY:   term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewReaderConsole builds a console that scans lines from r and writes to w.
// It never enters interactive editing, which makes it usable against pipes
// and in tests.
func NewReaderConsole(r io.Reader, w io.Writer) *Console {
	return &Console{out: w, scanner: bufio.NewScanner(r)}
}

// ReadLine blocks for one line of input.
func (c *Console) ReadLine(prefix string) (string, error) {
	if c.isTTY {
		return c.readInteractive(prefix)
	}
	return c.readScanned(prefix)
}

func (c *Console) readInteractive(prefix string) (string, error) {
	p, err := naoprompt.New(prefix)
	if err != nil {
		// Terminal setup failed; degrade to plain scanning for this and
		// all subsequent reads.
		c.isTTY = false
		return c.readScanned(prefix)
	}
	defer p.Close()

	line, err := p.Run()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, naoprompt.ErrInterrupted):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrEndOfInput
	default:
		return "", err
	}
}

func (c *Console) readScanned(prefix string) (string, error) {
	fmt.Fprint(c.out, prefix)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrEndOfInput
	}
	return c.scanner.Text(), nil
}

// WriteLine emits text followed by a newline.
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// ClearScreen wipes the terminal and homes the cursor.
func (c *Console) ClearScreen() {
	fmt.Fprint(c.out, clearSequence)
}
