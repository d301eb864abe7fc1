package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"printwatch/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.OpenPath(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	for i, body := range []string{"first", "second", "third"} {
		err := store.Record(ctx, history.Entry{
			ReceivedAt: base.Add(time.Duration(i) * time.Minute),
			Sender:     "print_finished_when",
			Title:      "Print Finished",
			Body:       body,
		})
		if err != nil {
			t.Fatalf("record %q: %v", body, err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Body != "third" || entries[1].Body != "second" {
		t.Errorf("unexpected order: %q, %q", entries[0].Body, entries[1].Body)
	}
	if entries[0].ID == "" {
		t.Error("entry should get a generated id")
	}
	if !entries[0].ReceivedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("received_at = %v", entries[0].ReceivedAt)
	}
}

func TestRecordStampsMissingFields(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	if err := store.Record(ctx, history.Entry{Sender: "x", Title: "t", Body: "b"}); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ReceivedAt.Before(before) {
		t.Errorf("received_at not stamped: %v", entries[0].ReceivedAt)
	}
}

func TestPruneRemovesOldEntries(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	old := history.Entry{ReceivedAt: time.Now().UTC().Add(-48 * time.Hour), Sender: "x", Title: "t", Body: "old"}
	fresh := history.Entry{Sender: "x", Title: "t", Body: "fresh"}
	for _, entry := range []history.Entry{old, fresh} {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	if err := store.Prune(ctx, 24*time.Hour); err != nil {
		t.Fatalf("prune: %v", err)
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Body != "fresh" {
		t.Fatalf("unexpected entries after prune: %+v", entries)
	}
}

func TestPruneDisabledKeepsEverything(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	entry := history.Entry{ReceivedAt: time.Now().UTC().Add(-1000 * time.Hour), Sender: "x", Title: "t", Body: "ancient"}
	if err := store.Record(ctx, entry); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Prune(ctx, 0); err != nil {
		t.Fatalf("prune: %v", err)
	}
	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries pruned despite disabled retention: %+v", entries)
	}
}
