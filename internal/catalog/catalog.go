// Package catalog holds the static tool catalog: loading and validating it,
// filtering it, and mapping tool names to routes.
package catalog

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"calcbox/internal/domain"
	domaintypes "calcbox/internal/domain/types"
)

//go:embed catalog.yaml
var embedded []byte

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnknownCategory = errors.New("unknown category")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Catalog is an immutable, validated list of tools.
type Catalog struct {
	tools  []domain.ToolDescriptor
	bySlug map[string]int
	etag   string
}

type file struct {
	Tools []domain.ToolDescriptor `yaml:"tools"`
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Errorf("embedded catalog: %w", err))
	}
	return c
}

// LoadFile reads and validates a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Tools)
}

// New validates tools and builds a catalog preserving their order.
func New(tools []domain.ToolDescriptor) (*Catalog, error) {
	c := &Catalog{
		tools:  make([]domain.ToolDescriptor, len(tools)),
		bySlug: make(map[string]int, len(tools)),
	}
	copy(c.tools, tools)

	ids := make(map[int]bool, len(tools))
	for i, t := range c.tools {
		switch {
		case t.ID <= 0:
			return nil, fmt.Errorf("tool %q: id must be positive", t.Name)
		case ids[t.ID]:
			return nil, fmt.Errorf("tool %q: duplicate id %d", t.Name, t.ID)
		case strings.TrimSpace(t.Name) == "":
			return nil, fmt.Errorf("tool %d: name is required", t.ID)
		case !slugPattern.MatchString(t.Slug):
			return nil, fmt.Errorf("tool %q: invalid slug %q", t.Name, t.Slug)
		case !t.Status.Valid():
			return nil, fmt.Errorf("tool %q: invalid status %q", t.Name, t.Status)
		}
		if _, dup := c.bySlug[t.Slug]; dup {
			return nil, fmt.Errorf("tool %q: duplicate slug %q", t.Name, t.Slug)
		}
		if _, err := MetaFor(t.Category); err != nil {
			return nil, fmt.Errorf("tool %q: %w", t.Name, err)
		}
		ids[t.ID] = true
		c.bySlug[t.Slug] = i
	}

	data, err := json.Marshal(c.tools)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(data)
	c.etag = `"` + hex.EncodeToString(sum[:16]) + `"`
	return c, nil
}

// Tools returns a copy of every tool in catalog order.
func (c *Catalog) Tools() []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, len(c.tools))
	copy(out, c.tools)
	return out
}

// Len returns the number of tools.
func (c *Catalog) Len() int { return len(c.tools) }

// Lookup finds a tool by slug.
func (c *Catalog) Lookup(slug string) (domain.ToolDescriptor, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.ToolDescriptor{}, false
	}
	return c.tools[i], true
}

// Filter applies Filter to the whole catalog.
func (c *Catalog) Filter(search string, category domain.Category) []domain.ToolDescriptor {
	return Filter(c.tools, search, category)
}

// Route maps a tool name or slug to its page path.
func (c *Catalog) Route(name string) (string, error) {
	name = strings.TrimSpace(name)
	if i, ok := c.bySlug[name]; ok {
		return "/tools/" + c.tools[i].Slug, nil
	}
	for _, t := range c.tools {
		if strings.EqualFold(t.Name, name) {
			return "/tools/" + t.Slug, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// ETag is a strong validator for the catalog contents.
func (c *Catalog) ETag() string { return c.etag }

// Categories lists the assignable categories in display order.
func Categories() []domain.Category {
	out := make([]domain.Category, len(domaintypes.Categories))
	copy(out, domaintypes.Categories)
	return out
}
