package interfaces

import (
	"context"

	domaintypes "calcbox/internal/domain/types"
)

// CatalogClient talks to a remote catalog server.
type CatalogClient interface {
	ListTools(ctx context.Context, search string, category domaintypes.Category) ([]domaintypes.ToolDescriptor, error)
	RunTool(ctx context.Context, slug string, args map[string]string) (domaintypes.Outcome, error)
}
