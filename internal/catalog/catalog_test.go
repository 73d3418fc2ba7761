package catalog_test

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"calcbox/internal/catalog"
	"calcbox/internal/domain"
)

func sample() []domain.ToolDescriptor {
	return []domain.ToolDescriptor{
		{ID: 1, Name: "Length Converter", Slug: "length", Description: "Metres and feet", Category: domain.CategoryConverters, Status: domain.StatusAvailable},
		{ID: 2, Name: "Age Calculator", Slug: "age", Description: "Exact age", Category: domain.CategoryDateTime, Status: domain.StatusAvailable},
		{ID: 3, Name: "Currency", Slug: "currency", Description: "Exchange rates converter", Category: domain.CategoryConverters, Status: domain.StatusComingSoon},
		{ID: 4, Name: "BMI", Slug: "bmi", Description: "Body mass index", Category: domain.CategoryHealth, Status: domain.StatusAvailable},
	}
}

func slugs(ts []domain.ToolDescriptor) string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.Slug
	}
	return strings.Join(s, ",")
}

func TestFilter_AllWithEmptySearchReturnsEverythingInOrder(t *testing.T) {
	tools := sample()
	got := catalog.Filter(tools, "", domain.CategoryAll)
	if slugs(got) != slugs(tools) {
		t.Fatalf("got %s", slugs(got))
	}
}

func TestFilter_CategoryIsExact(t *testing.T) {
	got := catalog.Filter(sample(), "", domain.CategoryConverters)
	if slugs(got) != "length,currency" {
		t.Fatalf("got %s", slugs(got))
	}
	for _, tool := range got {
		if tool.Category != domain.CategoryConverters {
			t.Fatalf("category leak: %+v", tool)
		}
	}
	if got := catalog.Filter(sample(), "", "converters"); len(got) != 0 {
		t.Fatalf("case-folded category should not match: %s", slugs(got))
	}
}

func TestFilter_SearchNameAndDescription(t *testing.T) {
	if got := catalog.Filter(sample(), "CONVERTER", domain.CategoryAll); slugs(got) != "length,currency" {
		t.Fatalf("got %s", slugs(got))
	}
	if got := catalog.Filter(sample(), "mass", domain.CategoryAll); slugs(got) != "bmi" {
		t.Fatalf("got %s", slugs(got))
	}
	if got := catalog.Filter(sample(), "converter", domain.CategoryHealth); len(got) != 0 {
		t.Fatalf("search AND category: %s", slugs(got))
	}
}

func TestDefault(t *testing.T) {
	c := catalog.Default()
	if c.Len() < 30 {
		t.Fatalf("embedded catalog has %d tools", c.Len())
	}
	seen := map[domain.Category]bool{}
	for _, tool := range c.Tools() {
		seen[tool.Category] = true
	}
	for _, cat := range catalog.Categories() {
		if !seen[cat] {
			t.Errorf("no tools in category %q", cat)
		}
	}
	if _, ok := c.Lookup("bmi"); !ok {
		t.Fatal("bmi missing")
	}
}

func TestMetaForEveryCategory(t *testing.T) {
	for _, cat := range catalog.Categories() {
		m, err := catalog.MetaFor(cat)
		if err != nil || m.Icon == "" || m.Color == "" {
			t.Errorf("%q: %+v, %v", cat, m, err)
		}
	}
	if _, err := catalog.MetaFor(domain.CategoryAll); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("All should have no meta: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := map[string]func([]domain.ToolDescriptor){
		"duplicate id":   func(ts []domain.ToolDescriptor) { ts[1].ID = 1 },
		"duplicate slug": func(ts []domain.ToolDescriptor) { ts[1].Slug = "length" },
		"bad slug":       func(ts []domain.ToolDescriptor) { ts[0].Slug = "Length Converter" },
		"bad category":   func(ts []domain.ToolDescriptor) { ts[0].Category = "Misc" },
		"all category":   func(ts []domain.ToolDescriptor) { ts[0].Category = domain.CategoryAll },
		"bad status":     func(ts []domain.ToolDescriptor) { ts[0].Status = "beta" },
		"empty name":     func(ts []domain.ToolDescriptor) { ts[0].Name = " " },
	}
	for name, mutate := range cases {
		ts := sample()
		mutate(ts)
		if _, err := catalog.New(ts); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRoute(t *testing.T) {
	c, err := catalog.New(sample())
	if err != nil {
		t.Fatal(err)
	}
	if r, err := c.Route("age calculator"); err != nil || r != "/tools/age" {
		t.Fatalf("by name: %q, %v", r, err)
	}
	if r, err := c.Route("bmi"); err != nil || r != "/tools/bmi" {
		t.Fatalf("by slug: %q, %v", r, err)
	}
	if _, err := c.Route("nope"); !errors.Is(err, catalog.ErrUnknownTool) {
		t.Fatalf("unknown: %v", err)
	}
}

func TestETag(t *testing.T) {
	a, _ := catalog.New(sample())
	b, _ := catalog.New(sample())
	if a.ETag() == "" || a.ETag() != b.ETag() {
		t.Fatalf("etags %q %q", a.ETag(), b.ETag())
	}
	ts := sample()
	ts[0].Description = "changed"
	c, _ := catalog.New(ts)
	if c.ETag() == a.ETag() {
		t.Fatal("etag should change with contents")
	}
}

const oneTool = `tools:
  - id: 1
    name: BMI
    slug: bmi
    category: Health
    status: available
    description: Body mass index
`

const twoTools = oneTool + `  - id: 2
    name: BMR
    slug: bmr
    category: Health
    status: available
    description: Basal metabolic rate
`

func TestSource_ReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(oneTool), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := catalog.NewSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("tools: [{id: 0}]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := src.Reload(); err == nil {
		t.Fatal("invalid catalog should fail to reload")
	}
	if src.Current().Len() != 1 {
		t.Fatalf("len = %d", src.Current().Len())
	}
}

func TestSource_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(oneTool), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := catalog.NewSource(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := src.Watch(ctx, log.New(io.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(twoTools), 0o600); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for src.Current().Len() != 2 {
		if time.Now().After(deadline) {
			t.Fatal("catalog was not reloaded")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestSource_Embedded(t *testing.T) {
	src, err := catalog.NewSource("")
	if err != nil {
		t.Fatal(err)
	}
	if src.Current().ETag() != catalog.Default().ETag() {
		t.Fatal("embedded source should serve the default catalog")
	}
	if err := src.Reload(); err != nil {
		t.Fatal(err)
	}
}
