package catalog

import (
	"fmt"

	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	domaintypes "calcbox/internal/domain/types"
)

// Service filters the tool catalog and remembers the selected category.
type Service struct {
	source *toolcatalog.Source
	prefs  domain.PreferenceStore
}

var _ domain.CatalogService = (*Service)(nil)

// New returns a catalog service. prefs may be nil, in which case the
// selection is not remembered.
func New(src *toolcatalog.Source, prefs domain.PreferenceStore) *Service {
	return &Service{source: src, prefs: prefs}
}

// FilterTools returns the tools matching search within category.
//
// An empty category means "whatever was selected last" (All if nothing was).
// A non-empty category is validated and saved as the new selection.
func (s *Service) FilterTools(search string, category domain.Category) (
	[]domain.ToolDescriptor,
	domain.Category,
	error,
) {
	if category == "" {
		selected, err := s.selected()
		if err != nil {
			return nil, "", err
		}
		category = selected
	} else {
		resolved, ok := domaintypes.ParseCategory(string(category))
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", toolcatalog.ErrUnknownCategory, category)
		}
		category = resolved
		if err := s.remember(category); err != nil {
			return nil, "", err
		}
	}
	return s.source.Current().Filter(search, category), category, nil
}

// Tool returns a single tool by slug.
func (s *Service) Tool(slug string) (domain.ToolDescriptor, error) {
	t, ok := s.source.Current().Lookup(slug)
	if !ok {
		return domain.ToolDescriptor{}, fmt.Errorf("%w: %q", toolcatalog.ErrUnknownTool, slug)
	}
	return t, nil
}

// Categories lists the assignable categories in display order.
func (s *Service) Categories() []domain.Category { return toolcatalog.Categories() }

func (s *Service) selected() (domain.Category, error) {
	if s.prefs == nil {
		return domain.CategoryAll, nil
	}
	p, err := s.prefs.LoadPreferences()
	if err != nil {
		return "", fmt.Errorf("load preferences: %w", err)
	}
	// A stale or hand-edited value falls back to All.
	if c, ok := domaintypes.ParseCategory(string(p.Category)); ok {
		return c, nil
	}
	return domain.CategoryAll, nil
}

func (s *Service) remember(c domain.Category) error {
	if s.prefs == nil {
		return nil
	}
	p, err := s.prefs.LoadPreferences()
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	if p.Category == c {
		return nil
	}
	p.Category = c
	if err := s.prefs.SavePreferences(p); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
