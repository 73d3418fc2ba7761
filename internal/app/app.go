package app

import (
	"context"

	"calcbox/internal/domain"
)

// App is the facade the CLI commands work against.
type App struct {
	Catalog     domain.CatalogService
	Calculator  domain.CalculatorService
	History     domain.HistoryStore
	Preferences domain.PreferenceStore
	Remote      domain.CatalogClient
}

func New(
	catalog domain.CatalogService,
	calc domain.CalculatorService,
	history domain.HistoryStore,
	prefs domain.PreferenceStore,
	rc domain.CatalogClient,
) *App {
	return &App{
		Catalog:     catalog,
		Calculator:  calc,
		History:     history,
		Preferences: prefs,
		Remote:      rc,
	}
}

// ListTools filters the local catalog, or the remote one when remote is set.
// Remote listings never touch the saved category.
func (a *App) ListTools(ctx context.Context, search string, category domain.Category, remote bool) (
	[]domain.ToolDescriptor,
	domain.Category,
	error,
) {
	if !remote {
		return a.Catalog.FilterTools(search, category)
	}
	if a.Remote == nil {
		return nil, "", ErrNoRemote
	}
	if category == "" {
		category = domain.CategoryAll
	}
	tools, err := a.Remote.ListTools(ctx, search, category)
	return tools, category, err
}

// RunTool runs a tool locally, or on the remote server when remote is set.
func (a *App) RunTool(ctx context.Context, slug string, args map[string]string, remote bool) (domain.Outcome, error) {
	if !remote {
		return a.Calculator.RunTool(ctx, slug, args)
	}
	if a.Remote == nil {
		return domain.Outcome{}, ErrNoRemote
	}
	return a.Remote.RunTool(ctx, slug, args)
}
