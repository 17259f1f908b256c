package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionRecord{
		{GameID: "pushlife", LevelID: "tutorial", Player: "ann", Steps: 10, Pushes: 3, Duration: 1500 * time.Millisecond},
		{GameID: "pushlife", LevelID: "tutorial", Player: "bob", Steps: 4, Pushes: 7, Generations: 12},
		{GameID: "pushlife_legacy", LevelID: "walls", Player: "ann", Steps: 1},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("pushlife", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	// Same timestamp resolution: the higher ID comes first.
	if got[0].Player != "bob" || got[0].Generations != 12 {
		t.Errorf("newest session = %+v, expected bob's", got[0])
	}
	if got[1].Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v, expected 1.5s", got[1].Duration)
	}
	if got[1].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 sessions across variants, got %d", len(all))
	}

	limited, _ := store.RecentSessions("", 1)
	if len(limited) != 1 {
		t.Errorf("limit not applied, got %d", len(limited))
	}
}

func TestStoreBestPushesAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestPushes("pushlife")
	if err != nil {
		t.Fatalf("BestPushes() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty store best = %d, expected 0", best)
	}

	store.SaveSession(SessionRecord{GameID: "pushlife", Steps: 5, Pushes: 2, Generations: 4})
	store.SaveSession(SessionRecord{GameID: "pushlife", Steps: 7, Pushes: 9, Generations: 0})

	best, _ = store.BestPushes("pushlife")
	if best != 9 {
		t.Errorf("best = %d, expected 9", best)
	}

	stats, err := store.Stats("pushlife")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.TotalSteps != 12 || stats.AvgGenerated != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("nothing")
	if err != nil {
		t.Fatalf("Stats(nothing) failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unknown variant %+v", empty)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(SessionRecord{GameID: "pushlife"})
	store.SaveSession(SessionRecord{GameID: "pushlife_legacy"})

	if err := store.ClearSessions("pushlife"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	all, _ := store.RecentSessions("", 10)
	if len(all) != 1 || all[0].GameID != "pushlife_legacy" {
		t.Errorf("unexpected sessions after clear: %+v", all)
	}
}
