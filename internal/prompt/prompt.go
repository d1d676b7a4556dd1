// Package prompt gathers command arguments interactively. Commands use it
// only to fill in values the user did not pass as flags; once gathered, the
// same non-interactive code path runs, so business logic is never duplicated
// between flag-driven and interactive invocations.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// New returns a Prompter over the given streams. Commands pass the
// cobra command's stdin and stderr so stdout stays clean for output.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), writer: w}
}

// Ask prints a label and returns the trimmed answer. An empty answer
// returns def; the default is shown in the label when non-empty.
func (p *Prompter) Ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.writer, "%s: ", label)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskRequired asks until the answer is non-empty, giving up after a few
// blank responses.
func (p *Prompter) AskRequired(label string) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		answer, err := p.Ask(label, "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.writer, "A value is required.")
	}
	return "", fmt.Errorf("no value provided for %s", label)
}

// Confirm asks a yes/no question. Only an explicit y/yes answers true.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label+" [y/N]", "n")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select presents a numbered list and returns the selected index.
func (p *Prompter) Select(label string, items []string) (int, error) {
	fmt.Fprintf(p.writer, "\n%s\n", label)
	for i, item := range items {
		fmt.Fprintf(p.writer, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.writer, "Enter number [1-%d]: ", len(items))

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(items))
	}
	return num - 1, nil
}
