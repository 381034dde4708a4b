// Package confirm asks the user before existing files are overwritten.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Prompter asks yes/no questions. On a terminal it uses pterm's
// interactive confirm; otherwise it reads an answer line from its input.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a prompter on stdin and stdout
func New() *Prompter {
	return &Prompter{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: IsTerminal(os.Stdin) && IsTerminal(os.Stdout),
	}
}

// NewWithIO creates a line based prompter on the given streams
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfirmOverwrite asks whether path may be overwritten. The default
// answer is no.
func (p *Prompter) ConfirmOverwrite(path string) (bool, error) {
	return p.Confirm(fmt.Sprintf("File %s already exists. Overwrite it?", path))
}

// Confirm asks a yes/no question
func (p *Prompter) Confirm(question string) (bool, error) {
	if p.interactive {
		return pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show(question)
	}

	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
