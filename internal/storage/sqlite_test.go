package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun("won", 6, 142.5)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	if _, err := store.SaveRun("lost", 3, 60.0); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if _, err := store.SaveRun("won", 6, 120.0); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Highest tier first, faster first within a tier.
	if entries[0].Tier != 6 || entries[0].Duration != 120.0 {
		t.Errorf("expected tier 6 / 120.0s first, got tier %d / %.1fs", entries[0].Tier, entries[0].Duration)
	}
	if entries[1].Tier != 6 || entries[1].Duration != 142.5 {
		t.Errorf("expected tier 6 / 142.5s second, got tier %d / %.1fs", entries[1].Tier, entries[1].Duration)
	}
	if entries[2].Tier != 3 {
		t.Errorf("expected tier 3 last, got %d", entries[2].Tier)
	}
	if entries[2].Outcome != "lost" {
		t.Errorf("expected outcome lost, got %q", entries[2].Outcome)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be populated")
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun("lost", i%6+1, float64(30+i)); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	entries, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(entries))
	}

	// Non-positive limit falls back to the default of 10.
	entries, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("expected 10 entries with default limit, got %d", len(entries))
	}
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun failed: %v", err)
	}
	if found {
		t.Error("expected no best run in empty store")
	}

	if _, err := store.SaveRun("timeout", 0, 20.0); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if _, err := store.SaveRun("won", 6, 200.0); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	best, found, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun failed: %v", err)
	}
	if !found {
		t.Fatal("expected a best run")
	}
	if best.Tier != 6 || best.Outcome != "won" {
		t.Errorf("expected tier 6 won, got tier %d %q", best.Tier, best.Outcome)
	}
}

func TestCountByOutcome(t *testing.T) {
	store := openTestStore(t)

	for _, outcome := range []string{"won", "lost", "lost", "timeout"} {
		if _, err := store.SaveRun(outcome, 1, 10.0); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	count, err := store.CountByOutcome("lost")
	if err != nil {
		t.Fatalf("CountByOutcome failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 lost runs, got %d", count)
	}

	count, err = store.CountByOutcome("won")
	if err != nil {
		t.Fatalf("CountByOutcome failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 won run, got %d", count)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("won", 2, 55.0); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty history after clear, got %d entries", len(entries))
	}
}
