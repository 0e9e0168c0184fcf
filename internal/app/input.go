package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ErrNoInput is returned when input ends before a label was read.
var ErrNoInput = errors.New("app: input ended before a location was entered")

// Prompter asks the user for one location label.
type Prompter interface {
	// Ask shows label and returns the entered text. suggestions may be
	// offered for completion; they never restrict the answer.
	Ask(label string, suggestions []string) (string, error)
}

// NewPrompter returns an interactive prompter with completion when in is a
// terminal, and a plain line reader otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return terminalPrompter{}
	}

	return &linePrompter{r: bufio.NewReader(in), w: out}
}

// linePrompter reads one line per question. Only the line terminator is
// stripped: labels are matched exactly.
type linePrompter struct {
	r *bufio.Reader
	w io.Writer
}

func (p *linePrompter) Ask(label string, _ []string) (string, error) {
	if _, err := fmt.Fprint(p.w, label); err != nil {
		return "", errors.Wrap(err, "app: write prompt")
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", errors.Wrap(err, "app: read location")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// terminalPrompter uses go-prompt with label completion.
type terminalPrompter struct{}

func (terminalPrompter) Ask(label string, suggestions []string) (string, error) {
	return prompt.Input(label, completer(suggestions),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionDescriptionTextColor(prompt.Yellow),
		prompt.OptionScrollbarBGColor(prompt.Black),
	), nil
}

// completer suggests labels that start with the text typed so far.
func completer(labels []string) prompt.Completer {
	s := make([]prompt.Suggest, len(labels))
	for i, l := range labels {
		s[i] = prompt.Suggest{Text: l}
	}

	return func(d prompt.Document) []prompt.Suggest {
		typed := d.TextBeforeCursor()
		if typed == "" {
			return []prompt.Suggest{}
		}
		return prompt.FilterHasPrefix(s, typed, true)
	}
}
