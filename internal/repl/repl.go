// Package repl is the interactive calcbox prompt: one tool run per line,
// written as a slug followed by key=value arguments.
//
//	calc> bmi weight=70 height=175
//	22.86 (normal)
//	calc> text-case mode=title text="the quick brown fox"
//	The Quick Brown Fox
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/peterh/liner"

	"calcbox/internal/domain"
)

const prompt = "calc> "

// Session evaluates REPL lines against the calculator and catalog services.
type Session struct {
	Calculator domain.CalculatorService
	Catalog    domain.CatalogService
	History    domain.HistoryStore // optional; enables :history
	Out        io.Writer
}

// Start runs the prompt until exit, Ctrl+D or ctx cancellation. Line history
// is kept in historyFile when it is not empty.
func Start(ctx context.Context, s *Session, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Fprintln(s.Out, "calcbox: type a tool slug followed by key=value arguments")
	fmt.Fprintln(s.Out, "Type ':help' for commands, 'exit' or Ctrl+D to quit")

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(s.Out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.Out)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if s.Eval(ctx, input) {
			return nil
		}
	}
	return ctx.Err()
}

// Eval handles one line and reports whether the session should end.
func (s *Session) Eval(ctx context.Context, input string) (quit bool) {
	trimmed := strings.TrimSpace(input)
	switch {
	case trimmed == "":
		return false
	case trimmed == "exit" || trimmed == "quit":
		return true
	case strings.HasPrefix(trimmed, ":"):
		s.command(ctx, trimmed)
		return false
	}

	slug, args, err := parseLine(trimmed)
	if err != nil {
		fmt.Fprintf(s.Out, "error: %v\n", err)
		return false
	}
	out, err := s.Calculator.RunTool(ctx, slug, args)
	if err != nil {
		fmt.Fprintf(s.Out, "error: %v\n", err)
		return false
	}
	if out.Error != nil {
		fmt.Fprintf(s.Out, "%s: %s\n", out.Error.Kind, out.Error.Message)
		return false
	}
	fmt.Fprintln(s.Out, out.Display)
	return false
}

func (s *Session) command(ctx context.Context, cmd string) {
	name, rest, _ := strings.Cut(cmd, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case ":help", ":h", ":?":
		fmt.Fprintln(s.Out, "Commands:")
		fmt.Fprintln(s.Out, "  <tool> key=value ...   Run a tool (quote values with spaces)")
		fmt.Fprintln(s.Out, "  :tools [search]        List runnable tools")
		fmt.Fprintln(s.Out, "  :params <tool>         Show a tool's parameters")
		fmt.Fprintln(s.Out, "  :history               Show recent runs")
		fmt.Fprintln(s.Out, "  exit, quit             Exit the REPL")

	case ":tools":
		tools, _, err := s.Catalog.FilterTools(rest, domain.CategoryAll)
		if err != nil {
			fmt.Fprintf(s.Out, "error: %v\n", err)
			return
		}
		for _, t := range tools {
			if !t.Available() {
				continue
			}
			fmt.Fprintf(s.Out, "  %-24s %s\n", t.Slug, t.Name)
		}

	case ":params":
		params, err := s.Calculator.ToolParams(rest)
		if err != nil {
			fmt.Fprintf(s.Out, "error: %v\n", err)
			return
		}
		for _, p := range params {
			req := ""
			if p.Required {
				req = " (required)"
			} else if p.Default != "" {
				req = fmt.Sprintf(" (default %s)", p.Default)
			}
			fmt.Fprintf(s.Out, "  %-10s %s%s\n", p.Name, p.Description, req)
		}

	case ":history":
		if s.History == nil {
			fmt.Fprintln(s.Out, "history is disabled")
			return
		}
		entries, err := s.History.RecentHistory(ctx, 0)
		if err != nil {
			fmt.Fprintf(s.Out, "error: %v\n", err)
			return
		}
		for _, e := range entries {
			result := e.Display
			if e.ErrorKind != "" {
				result = e.ErrorKind + ": " + e.Message
			}
			fmt.Fprintf(s.Out, "  %s %-22s %s\n", e.CreatedAt.Format("15:04:05"), e.Tool, result)
		}

	default:
		fmt.Fprintf(s.Out, "Unknown command: %s (type :help for commands)\n", name)
	}
}

// parseLine splits "slug k=v k2='v 2'" into the slug and its arguments.
func parseLine(line string) (string, map[string]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, errors.New("empty input")
	}
	args := make(map[string]string, len(words)-1)
	for _, w := range words[1:] {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return "", nil, fmt.Errorf("expected key=value, got %q", w)
		}
		args[k] = v
	}
	return words[0], args, nil
}

// complete offers tool slugs for the first word and parameter names after it.
func (s *Session) complete(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	words := strings.Fields(line)
	if len(words) == 1 && !strings.HasSuffix(line, " ") {
		var out []string
		for _, slug := range s.Calculator.ToolSlugs() {
			if strings.HasPrefix(slug, words[0]) {
				out = append(out, slug)
			}
		}
		sort.Strings(out)
		return out
	}

	params, err := s.Calculator.ToolParams(words[0])
	if err != nil {
		return nil
	}
	head, last := line, ""
	if !strings.HasSuffix(line, " ") {
		last = words[len(words)-1]
		head = strings.TrimSuffix(line, last)
	}
	if strings.Contains(last, "=") {
		return nil
	}
	var out []string
	for _, p := range params {
		if strings.HasPrefix(p.Name, last) {
			out = append(out, head+p.Name+"=")
		}
	}
	return out
}
