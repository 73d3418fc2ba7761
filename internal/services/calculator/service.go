package calculator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"calcbox/internal/calc/calcerr"
	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
)

var (
	// ErrComingSoon is returned for catalog tools that are not available yet.
	ErrComingSoon = errors.New("tool is coming soon")
	// ErrNotRunnable is returned for catalog tools with no calculator behind them.
	ErrNotRunnable = errors.New("tool has no calculator")
)

// Options configures a Service. Zero values are usable.
type Options struct {
	// History, when set, records every run.
	History domain.HistoryStore
	// Locale selects number grouping and month names in display strings.
	Locale string
	// Now is the clock used for "today" defaults and countdowns.
	Now func() time.Time
	// Logger receives history write failures.
	Logger *log.Logger
}

// Service runs catalog tools over string arguments.
type Service struct {
	source  *toolcatalog.Source
	tools   map[string]tool
	history domain.HistoryStore
	locale  string
	now     func() time.Time
	logger  *log.Logger
}

var _ domain.CalculatorService = (*Service)(nil)

// New returns a calculator service over the catalog held by src.
func New(src *toolcatalog.Source, opts Options) *Service {
	s := &Service{
		source:  src,
		tools:   registry(),
		history: opts.History,
		locale:  opts.Locale,
		now:     opts.Now,
		logger:  opts.Logger,
	}
	if s.locale == "" {
		s.locale = "en"
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// RunTool validates args against the tool's parameters, runs it and records
// the outcome. Calculation failures are reported inside the Outcome; the
// returned error is for unknown or unavailable tools.
func (s *Service) RunTool(ctx context.Context, slug string, raw map[string]string) (domain.Outcome, error) {
	t, err := s.resolve(slug)
	if err != nil {
		return domain.Outcome{}, err
	}

	a, err := bind(t.params, raw)
	var (
		value   any
		display string
	)
	if err == nil {
		value, display, err = t.run(env{locale: s.locale, now: s.now()}, a)
	}

	out := domain.Outcome{Tool: slug}
	if err != nil {
		kind := calcerr.KindOf(err)
		if kind == 0 {
			return domain.Outcome{}, fmt.Errorf("%s: %w", slug, err)
		}
		out.Error = &domain.OutcomeError{Kind: kind.String(), Message: err.Error()}
	} else {
		out.Value, out.Display = value, display
	}

	s.record(ctx, slug, raw, out)
	return out, nil
}

// ToolParams lists the parameters of a runnable tool.
func (s *Service) ToolParams(slug string) ([]domain.Param, error) {
	t, err := s.resolve(slug)
	if err != nil {
		return nil, err
	}
	return slices.Clone(t.params), nil
}

// ToolSlugs lists the runnable tools in catalog order.
func (s *Service) ToolSlugs() []string {
	var out []string
	for _, d := range s.source.Current().Tools() {
		if _, ok := s.tools[d.Slug]; ok && d.Available() {
			out = append(out, d.Slug)
		}
	}
	return out
}

func (s *Service) resolve(slug string) (tool, error) {
	d, ok := s.source.Current().Lookup(slug)
	if !ok {
		return tool{}, fmt.Errorf("%w: %q", toolcatalog.ErrUnknownTool, slug)
	}
	if !d.Available() {
		return tool{}, fmt.Errorf("%s: %w", d.Name, ErrComingSoon)
	}
	t, ok := s.tools[slug]
	if !ok {
		return tool{}, fmt.Errorf("%s: %w", d.Name, ErrNotRunnable)
	}
	return t, nil
}

// bind applies defaults and rejects parameters the tool does not declare.
func bind(params []domain.Param, raw map[string]string) (args, error) {
	a := make(args, len(params))
	for k, v := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if !slices.ContainsFunc(params, func(p domain.Param) bool { return p.Name == k }) {
			return a, calcerr.OutOfDomain("unknown parameter %q", k)
		}
		a[k] = v
	}
	for _, p := range params {
		if strings.TrimSpace(a[p.Name]) == "" && p.Default != "" {
			a[p.Name] = p.Default
		}
	}
	return a, nil
}

func (s *Service) record(ctx context.Context, slug string, raw map[string]string, out domain.Outcome) {
	if s.history == nil {
		return
	}
	entry := domain.HistoryEntry{Tool: slug, Args: raw, Display: out.Display}
	if out.Error != nil {
		entry.ErrorKind, entry.Message = out.Error.Kind, out.Error.Message
	}
	if _, err := s.history.AppendHistory(ctx, entry); err != nil {
		s.logger.Printf("history: %v", err)
	}
}
