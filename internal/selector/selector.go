// Package selector picks one discovered command from a list by index, by
// name, or by the closest label.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agnivade/levenshtein"

	"github.com/seanodell/vscode-terminal-menu/pkg/types"
)

// ErrNoMatch is returned when nothing resembles the query.
var ErrNoMatch = errors.New("no matching command")

// AmbiguousError lists the commands that match a query equally well.
type AmbiguousError struct {
	Query      string
	Candidates []types.MenuCommand
}

func (e *AmbiguousError) Error() string {
	labels := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		labels[i] = strconv.Quote(c.Label)
	}
	return fmt.Sprintf("%q is ambiguous: %s", e.Query, strings.Join(labels, ", "))
}

// ByIndex returns the item at a 1-based position.
func ByIndex(items []types.MenuCommand, n int) (types.MenuCommand, error) {
	if n < 1 || n > len(items) {
		return types.MenuCommand{}, fmt.Errorf("index %d out of range 1-%d", n, len(items))
	}
	return items[n-1], nil
}

// Match resolves query against items, trying in turn: exact label, exact
// command, the name after the "tool: " label prefix, a label prefix, and
// finally the smallest edit distance.
func Match(items []types.MenuCommand, query string) (types.MenuCommand, error) {
	i, err := MatchIndex(items, query)
	if err != nil {
		return types.MenuCommand{}, err
	}
	return items[i], nil
}

// MatchIndex is Match returning the 0-based position of the chosen item.
func MatchIndex(items []types.MenuCommand, query string) (int, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, ErrNoMatch
	}

	steps := []func(types.MenuCommand) bool{
		func(c types.MenuCommand) bool { return strings.ToLower(c.Label) == q },
		func(c types.MenuCommand) bool { return strings.ToLower(c.Command) == q },
		func(c types.MenuCommand) bool { return strings.ToLower(shortName(c.Label)) == q },
		func(c types.MenuCommand) bool { return strings.HasPrefix(strings.ToLower(c.Label), q) },
	}
	for i, step := range steps {
		found := filter(items, step)
		switch {
		case len(found) == 1:
			return found[0], nil
		case len(found) > 1 && i < 2:
			// The same label or command may come from several files.
			return found[0], nil
		case len(found) > 1:
			return -1, ambiguous(items, query, found)
		}
	}

	return nearest(items, query, q)
}

func nearest(items []types.MenuCommand, query, q string) (int, error) {
	limit := len(q) / 3
	if limit < 2 {
		limit = 2
	}

	best := -1
	var found []int
	for i, c := range items {
		d := levenshtein.ComputeDistance(q, strings.ToLower(shortName(c.Label)))
		if full := levenshtein.ComputeDistance(q, strings.ToLower(c.Label)); full < d {
			d = full
		}
		if d > limit {
			continue
		}
		switch {
		case best < 0 || d < best:
			best = d
			found = []int{i}
		case d == best:
			found = append(found, i)
		}
	}

	switch len(found) {
	case 0:
		return -1, fmt.Errorf("%w: %q", ErrNoMatch, query)
	case 1:
		return found[0], nil
	default:
		return -1, ambiguous(items, query, found)
	}
}

func ambiguous(items []types.MenuCommand, query string, idx []int) *AmbiguousError {
	e := &AmbiguousError{Query: query}
	for _, i := range idx {
		e.Candidates = append(e.Candidates, items[i])
	}
	return e
}

// shortName strips a "tool: " prefix such as "make: " from a label.
func shortName(label string) string {
	if i := strings.Index(label, ": "); i > 0 {
		return label[i+2:]
	}
	return label
}

// filter returns the positions of the items kept.
func filter(items []types.MenuCommand, keep func(types.MenuCommand) bool) []int {
	var out []int
	for i, c := range items {
		if keep(c) {
			out = append(out, i)
		}
	}
	return out
}

// Prompt prints a numbered menu to w and reads the choice from r. The answer
// may be a number or anything Match accepts.
func Prompt(r io.Reader, w io.Writer, items []types.MenuCommand) (types.MenuCommand, error) {
	i, err := PromptIndex(r, w, items)
	if err != nil {
		return types.MenuCommand{}, err
	}
	return items[i], nil
}

// PromptIndex is Prompt returning the 0-based position of the chosen item.
// Each row shows the label, the command line and where it came from.
func PromptIndex(r io.Reader, w io.Writer, items []types.MenuCommand) (int, error) {
	if len(items) == 0 {
		return -1, ErrNoMatch
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range items {
		if desc := c.Description(); desc != "" {
			fmt.Fprintf(tw, "%3d) %s\t%s\t(%s)\n", i+1, c.Label, c.Command, desc)
		} else {
			fmt.Fprintf(tw, "%3d) %s\t%s\n", i+1, c.Label, c.Command)
		}
	}
	if err := tw.Flush(); err != nil {
		return -1, err
	}
	fmt.Fprint(w, "Select a terminal command to run: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return -1, fmt.Errorf("read selection: %w", err)
	}
	answer := strings.TrimSpace(line)

	if n, convErr := strconv.Atoi(answer); convErr == nil {
		if _, err := ByIndex(items, n); err != nil {
			return -1, err
		}
		return n - 1, nil
	}
	return MatchIndex(items, answer)
}
