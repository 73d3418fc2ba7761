package interfaces

import (
	"context"

	domaintypes "calcbox/internal/domain/types"
)

// PreferenceStore persists the user's preferences between runs.
type PreferenceStore interface {
	LoadPreferences() (domaintypes.Preferences, error)
	SavePreferences(prefs domaintypes.Preferences) error
}

// HistoryStore records tool runs.
type HistoryStore interface {
	// AppendHistory stores entry, assigning ID and CreatedAt when unset.
	AppendHistory(ctx context.Context, entry domaintypes.HistoryEntry) (domaintypes.HistoryEntry, error)
	// RecentHistory returns up to limit entries, newest first.
	RecentHistory(ctx context.Context, limit int) ([]domaintypes.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}
