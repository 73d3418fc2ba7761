package repl

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	toolcatalog "calcbox/internal/catalog"
	catalogsvc "calcbox/internal/services/catalog"
	"calcbox/internal/services/calculator"
	"calcbox/internal/store"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	src, err := toolcatalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return &Session{
		Calculator: calculator.New(src, calculator.Options{
			Now: func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) },
		}),
		Catalog: catalogsvc.New(src, &store.MemoryPreferences{}),
		Out:     &out,
	}, &out
}

func TestParseLine(t *testing.T) {
	slug, args, err := parseLine(`text-case mode=title text="the quick fox"`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"mode": "title", "text": "the quick fox"}
	if slug != "text-case" || !reflect.DeepEqual(args, want) {
		t.Fatalf("slug %q args %v", slug, args)
	}

	if _, _, err := parseLine("bmi 70"); err == nil {
		t.Fatal("expected key=value error")
	}
}

func TestEval(t *testing.T) {
	s, out := newSession(t)
	ctx := context.Background()

	tests := []struct {
		in   string
		want string
	}{
		{"bmi weight=70 height=175", "22.86 (normal)"},
		{"bmi weight=70", "missing:"},
		{"currency-converter", "coming soon"},
		{"nope", "unknown tool"},
		{":params bmi", "weight"},
		{":tools prime", "prime-checker"},
		{":history", "history is disabled"},
		{":bogus", "Unknown command"},
	}
	for _, tt := range tests {
		out.Reset()
		if s.Eval(ctx, tt.in) {
			t.Fatalf("%q ended the session", tt.in)
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("%q: got %q, want %q", tt.in, out.String(), tt.want)
		}
	}

	if !s.Eval(ctx, " exit ") || !s.Eval(ctx, "quit") {
		t.Fatal("exit/quit should end the session")
	}
}

func TestComplete(t *testing.T) {
	s, _ := newSession(t)

	got := s.complete("prime-")
	want := []string{"prime-checker", "prime-generator"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("slugs: %v", got)
	}

	got = s.complete("bmi w")
	if !reflect.DeepEqual(got, []string{"bmi weight="}) {
		t.Fatalf("params: %v", got)
	}

	got = s.complete("bmi ")
	if len(got) != 2 {
		t.Fatalf("all params: %v", got)
	}

	if got := s.complete("bmi weight=7"); got != nil {
		t.Fatalf("value completion: %v", got)
	}
}
