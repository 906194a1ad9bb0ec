package history

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("vote", 3, "0xaaa"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record("close", 3, "0xbbb"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record("set-delegate", -1, "0xccc"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	subs, err := store.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("got %d submissions, want 3", len(subs))
	}

	// Newest first
	if subs[0].Command != "set-delegate" || subs[2].Command != "vote" {
		t.Errorf("unexpected order: %q ... %q", subs[0].Command, subs[2].Command)
	}

	// Delegation commands carry no poll id
	if subs[0].PollID.Valid {
		t.Error("set-delegate should have NULL poll_id")
	}
	if !subs[2].PollID.Valid || subs[2].PollID.Int64 != 3 {
		t.Errorf("vote poll_id = %+v, want 3", subs[2].PollID)
	}
}

func TestListLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Record("vote", int64(i), "0x0"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	subs, err := store.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 2 {
		t.Errorf("got %d submissions, want 2", len(subs))
	}
}

func TestListEmpty(t *testing.T) {
	store := openTestStore(t)

	subs, err := store.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("got %d submissions, want 0", len(subs))
	}
}
