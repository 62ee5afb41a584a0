// Package prompt reads operator answers from the controlling terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrAborted is returned when the operator cancels a prompt.
var ErrAborted = errors.New("prompt aborted by user")

// Prompter asks the operator for a single value.
type Prompter interface {
	// Ask blocks until a line is read. It returns io.EOF when input is exhausted.
	Ask(question string, secret bool) (string, error)
	// Confirm asks a yes/no question. With def true only "n"/"N" declines.
	Confirm(question string, def bool) (bool, error)
}

// New returns a Terminal prompter when in is an interactive terminal and a Line
// prompter over in/out otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &Terminal{}
	}
	return NewLine(in, out)
}

// Line reads answers one line at a time. Prompts are written to out verbatim.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

func NewLine(in io.Reader, out io.Writer) *Line {
	if out == nil {
		out = io.Discard
	}
	return &Line{r: bufio.NewReader(in), w: out}
}

func (l *Line) Ask(question string, _ bool) (string, error) {
	fmt.Fprint(l.w, question)

	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (l *Line) Confirm(question string, def bool) (bool, error) {
	answer, err := l.Ask(question, false)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return false, err
	}
	return parseConfirm(answer, def), nil
}

// Terminal renders prompts as huh forms.
type Terminal struct{}

func (t *Terminal) Ask(question string, secret bool) (string, error) {
	var value string

	input := huh.NewInput().
		Title(strings.TrimSpace(question)).
		Value(&value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	if err := input.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(value), nil
}

func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	confirmed := def

	err := huh.NewConfirm().
		Title(confirmTitle(question)).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// confirmTitle drops the trailing "[Y/n]:" hint; the form renders its own buttons.
func confirmTitle(question string) string {
	title := strings.TrimSpace(question)
	title = strings.TrimSpace(strings.TrimSuffix(title, ":"))
	if strings.HasSuffix(title, "]") {
		if i := strings.LastIndex(title, "["); i >= 0 {
			title = strings.TrimSpace(title[:i])
		}
	}
	return title
}

func parseConfirm(answer string, def bool) bool {
	if answer == "" {
		return def
	}
	if def {
		return answer != "n" && answer != "N"
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
