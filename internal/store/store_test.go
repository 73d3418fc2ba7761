package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"calcbox/internal/domain"
	"calcbox/internal/store"
)

func TestPreferences_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var prefs domain.PreferenceStore = store.NewPreferenceFileStore(home)

	got, err := prefs.LoadPreferences()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != (domain.Preferences{}) {
		t.Fatalf("expected zero preferences, got %+v", got)
	}

	want := domain.Preferences{Category: domain.CategoryHealth, Locale: "de"}
	if err := prefs.SavePreferences(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = store.NewPreferenceFileStore(home).LoadPreferences()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPreferences_AtomicWriteLeavesNoTempFiles(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	s := store.NewPreferenceFileStore(home)
	for i := 0; i < 3; i++ {
		if err := s.SavePreferences(domain.Preferences{Locale: "en"}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "preferences.json" {
		t.Fatalf("unexpected files: %v", entries)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestPreferences_CorruptFile(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "preferences.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.NewPreferenceFileStore(home).LoadPreferences(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHistory_AppendRecentClear(t *testing.T) {
	ctx := context.Background()
	db, err := store.OpenHistoryDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var hist domain.HistoryStore = db
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, tool := range []string{"bmi", "roman-numerals", "factorial"} {
		e, err := hist.AppendHistory(ctx, domain.HistoryEntry{
			Tool:      tool,
			Args:      map[string]string{"n": "5"},
			Display:   "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %s: %v", tool, err)
		}
		if e.ID == "" {
			t.Fatal("id should be assigned")
		}
	}

	got, err := hist.RecentHistory(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].Tool != "factorial" || got[1].Tool != "roman-numerals" {
		t.Fatalf("recent order: %+v", got)
	}
	if got[0].Args["n"] != "5" || !got[0].CreatedAt.Equal(base.Add(2*time.Minute)) {
		t.Fatalf("round trip: %+v", got[0])
	}

	if err := hist.ClearHistory(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := hist.RecentHistory(ctx, 0); len(got) != 0 {
		t.Fatalf("after clear: %+v", got)
	}
}

func TestHistory_RecordsErrors(t *testing.T) {
	ctx := context.Background()
	db, err := store.OpenHistoryDB(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.AppendHistory(ctx, domain.HistoryEntry{
		Tool: "roman-numerals", ErrorKind: "out_of_domain", Message: "4000 is outside 1..3999",
	}); err != nil {
		t.Fatal(err)
	}
	got, _ := db.RecentHistory(ctx, 5)
	if len(got) != 1 || got[0].ErrorKind != "out_of_domain" || got[0].Args == nil {
		t.Fatalf("got %+v", got)
	}
}
