package catalog

import (
	"strings"

	"calcbox/internal/domain"
)

// Filter returns the tools whose name or description contains search
// (case-insensitive) and whose category equals category, unless category is
// domain.CategoryAll. Catalog order is preserved. An empty search matches
// every tool.
func Filter(tools []domain.ToolDescriptor, search string, category domain.Category) []domain.ToolDescriptor {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.ToolDescriptor, 0, len(tools))
	for _, t := range tools {
		if category != domain.CategoryAll && t.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}
