package journal_test

import (
	"context"
	"testing"
	"time"

	"sortd/internal/journal"
	"sortd/internal/organize"
	"sortd/internal/testsupport"
)

func mustOpen(t *testing.T) *journal.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordRunAssignsID(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	rec, err := store.RecordRun(ctx, journal.Record{
		SourceDir: "/tmp/in",
		DestDir:   "/tmp/out",
		Summary:   organize.Summary{Scanned: 4, Ignored: 2, Moved: 2},
	})
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected run ID to be assigned")
	}
	if rec.StartedAt.IsZero() || rec.FinishedAt.IsZero() {
		t.Fatal("expected timestamps to be defaulted")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.RecordRun(ctx, journal.Record{
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
			SourceDir:  "/src",
			DestDir:    "/dst",
			Summary:    organize.Summary{Scanned: i},
		})
		if err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Summary.Scanned != 2 || runs[1].Summary.Scanned != 1 {
		t.Fatalf("unexpected order: %+v", runs)
	}
}

func TestRoundTripPreservesCounters(t *testing.T) {
	store := mustOpen(t)
	ctx := context.Background()

	want := organize.Summary{
		DryRun:     true,
		Scanned:    10,
		Ignored:    3,
		Considered: 7,
		Moved:      5,
		Duplicates: 1,
		Errors:     1,
	}
	if _, err := store.RecordRun(ctx, journal.Record{SourceDir: "/a", DestDir: "/b", Summary: want}); err != nil {
		t.Fatal(err)
	}

	runs, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0].Summary
	if got != want {
		t.Fatalf("summary mismatch: got %+v, want %+v", got, want)
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := journal.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordRun(ctx, journal.Record{SourceDir: "/a", DestDir: "/b"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := journal.Open(cfg)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run, got %d", len(runs))
	}
}
