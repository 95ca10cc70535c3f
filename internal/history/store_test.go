package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStore_OpenInitializesSchemaAndSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	first := Run{
		RunID:         "run-1",
		ProjectKey:    "mod-a",
		Timestamp:     base,
		Root:          "/mods/a",
		DefinedCount:  12,
		UsedCount:     9,
		OrphanedCount: 3,
		FilesScanned:  40,
	}
	replacement := Run{
		RunID:         "run-1",
		ProjectKey:    "mod-a",
		Timestamp:     base,
		Root:          "/mods/a",
		DefinedCount:  15,
		UsedCount:     11,
		OrphanedCount: 4,
		FilesScanned:  44,
	}
	second := Run{
		RunID:          "run-2",
		ProjectKey:     "mod-a",
		Timestamp:      base.Add(2 * time.Hour),
		Root:           "/mods/a",
		DefinedCount:   15,
		UsedCount:      12,
		OrphanedCount:  3,
		MissingCount:   1,
		DuplicateCount: 2,
		FilesScanned:   44,
	}

	if err := store.SaveRun(first); err != nil {
		t.Fatalf("save first run: %v", err)
	}
	if err := store.SaveRun(replacement); err != nil {
		t.Fatalf("save replacement run: %v", err)
	}
	if err := store.SaveRun(second); err != nil {
		t.Fatalf("save second run: %v", err)
	}

	got, err := store.LoadRuns("mod-a", base.Add(1*time.Hour))
	if err != nil {
		t.Fatalf("load runs: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 run after since filter, got %d", len(got))
	}
	if got[0].MissingCount != 1 || got[0].DuplicateCount != 2 {
		t.Fatalf("expected counts to roundtrip, got %+v", got[0])
	}

	// The duplicate run_id must have upserted, not inserted.
	all, err := store.LoadRuns("mod-a", time.Time{})
	if err != nil {
		t.Fatalf("load all runs: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(all))
	}
	if all[0].DefinedCount != 15 {
		t.Fatalf("expected upserted defined_count=15, got %d", all[0].DefinedCount)
	}
}

func TestStore_GeneratesRunID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.SaveRun(Run{DefinedCount: 1}); err != nil {
		t.Fatalf("save run: %v", err)
	}

	runs, err := store.LoadRuns("default", time.Time{})
	if err != nil {
		t.Fatalf("load runs: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID == "" {
		t.Fatalf("expected generated run id, got %+v", runs)
	}
}

func TestStore_OpenRejectsDirectoryPath(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Fatal("expected open error for directory path")
	}
}

func TestStore_OpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected open error for empty path")
	}
}
