package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "messages.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestCreateAndListRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateMessage(ctx, "  spaced content  ", "insight")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if created.ID < 1 {
		t.Errorf("expected generated id >= 1, got %d", created.ID)
	}
	if created.Timestamp.IsZero() {
		t.Error("expected store-assigned timestamp")
	}

	messages, err := s.ListMessages(ctx, 10)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	got := messages[0]
	if got.ID != created.ID || got.Type != "insight" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Content != "  spaced content  " {
		t.Errorf("content must be stored verbatim, got %q", got.Content)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []int64
	for _, content := range []string{"first", "second", "third"} {
		m, err := s.CreateMessage(ctx, content, "observation")
		if err != nil {
			t.Fatalf("CreateMessage(%s): %v", content, err)
		}
		ids = append(ids, m.ID)
	}

	messages, err := s.ListMessages(ctx, 10)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	// Inserted within the same instant or not, id descending is the
	// deterministic order: most recent insert first.
	for i, want := range []int64{ids[2], ids[1], ids[0]} {
		if messages[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, messages[i].ID)
		}
	}

	limited, err := s.ListMessages(ctx, 1)
	if err != nil {
		t.Fatalf("ListMessages limit=1: %v", err)
	}
	if len(limited) != 1 || limited[0].Content != "third" {
		t.Errorf("limit=1 should return only the newest message, got %+v", limited)
	}
}

func TestIDsStrictlyIncreaseAcrossDeletes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateMessage(ctx, "one", "insight")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	second, err := s.CreateMessage(ctx, "two", "insight")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids must increase: %d then %d", first.ID, second.ID)
	}

	// Deleting the newest row must not free its id for reuse.
	if _, err := s.DeleteMessage(ctx, second.ID); err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	third, err := s.CreateMessage(ctx, "three", "insight")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if third.ID <= second.ID {
		t.Errorf("id %d reused after deleting %d", third.ID, second.ID)
	}
}

func TestDeleteReportsWhetherRowExisted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateMessage(ctx, "to delete", "decision")
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}

	deleted, err := s.DeleteMessage(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteMessage: %v", err)
	}
	if !deleted {
		t.Error("expected delete of existing row to report true")
	}

	deleted, err = s.DeleteMessage(ctx, created.ID)
	if err != nil {
		t.Fatalf("repeat DeleteMessage: %v", err)
	}
	if deleted {
		t.Error("expected repeat delete to report false")
	}

	deleted, err = s.DeleteMessage(ctx, 999999)
	if err != nil {
		t.Fatalf("DeleteMessage(999999): %v", err)
	}
	if deleted {
		t.Error("expected delete of unknown id to report false")
	}
}

func TestClearReturnsExactCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := s.CreateMessage(ctx, "bulk", "observation"); err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
	}

	count, err := s.ClearMessages(ctx)
	if err != nil {
		t.Fatalf("ClearMessages: %v", err)
	}
	if count != 4 {
		t.Errorf("expected deleted count 4, got %d", count)
	}

	messages, err := s.ListMessages(ctx, 10)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty table after clear, got %d rows", len(messages))
	}

	count, err = s.ClearMessages(ctx)
	if err != nil {
		t.Fatalf("ClearMessages on empty table: %v", err)
	}
	if count != 0 {
		t.Errorf("expected clear of empty table to report 0, got %d", count)
	}
}
