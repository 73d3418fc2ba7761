package interfaces

import (
	"context"

	domaintypes "calcbox/internal/domain/types"
)

// CatalogService searches and filters the tool catalog.
type CatalogService interface {
	// FilterTools filters by search term and category. An empty category
	// means the last selection; the category actually applied is returned.
	FilterTools(search string, category domaintypes.Category) (
		[]domaintypes.ToolDescriptor,
		domaintypes.Category,
		error,
	)
	Tool(slug string) (domaintypes.ToolDescriptor, error)
	Categories() []domaintypes.Category
}

// CalculatorService runs catalog tools over string arguments.
type CalculatorService interface {
	// RunTool returns an Outcome for every calculation, failed ones included.
	// The error is reserved for unknown or unavailable tools.
	RunTool(ctx context.Context, slug string, args map[string]string) (domaintypes.Outcome, error)
	ToolParams(slug string) ([]domaintypes.Param, error)
	ToolSlugs() []string
}
