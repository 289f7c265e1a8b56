package repo

import (
	"context"
	"testing"

	"github.com/minecode21-boop/social-applinxx2cs/internal/domain"
)

func TestAppendMessage_AssignsID(t *testing.T) {
	db := newTestDB(t, &domain.ChatMessage{})

	m, err := AppendMessage(context.Background(), db, "alice", "bob", "hello", 1700000000000)
	if err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if m.ID == 0 {
		t.Fatal("id not assigned")
	}
	if m.Sender != "alice" || m.Receiver != "bob" || m.Body != "hello" || m.Timestamp != 1700000000000 {
		t.Fatalf("unexpected fields: %+v", m)
	}
}

func TestListConversation_MergesDirectionsInOrder(t *testing.T) {
	db := newTestDB(t, &domain.ChatMessage{})
	ctx := context.Background()

	// Interleaved directions with distinct timestamps, plus an unrelated pair.
	seed := []struct {
		sender, receiver, body string
		ts                     int64
	}{
		{"alice", "bob", "m1", 1000},
		{"bob", "alice", "m2", 2000},
		{"alice", "bob", "m3", 3000},
		{"alice", "carol", "other", 1500},
	}
	for _, s := range seed {
		if _, err := AppendMessage(ctx, db, s.sender, s.receiver, s.body, s.ts); err != nil {
			t.Fatalf("seed %q: %v", s.body, err)
		}
	}

	msgs, err := ListConversation(ctx, db, "alice", "bob")
	if err != nil {
		t.Fatalf("ListConversation: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if msgs[i].Body != want {
			t.Fatalf("msgs[%d] = %q, want %q", i, msgs[i].Body, want)
		}
	}

	// Same thread regardless of argument order.
	rev, err := ListConversation(ctx, db, "bob", "alice")
	if err != nil {
		t.Fatalf("ListConversation reversed: %v", err)
	}
	if len(rev) != 3 || rev[0].Body != "m1" || rev[2].Body != "m3" {
		t.Fatalf("reversed thread mismatch: %+v", rev)
	}
}

func TestListConversation_TieBrokenByInsertionOrder(t *testing.T) {
	db := newTestDB(t, &domain.ChatMessage{})
	ctx := context.Background()

	for _, body := range []string{"first", "second", "third"} {
		if _, err := AppendMessage(ctx, db, "alice", "bob", body, 5000); err != nil {
			t.Fatalf("seed %q: %v", body, err)
		}
	}

	msgs, err := ListConversation(ctx, db, "alice", "bob")
	if err != nil {
		t.Fatalf("ListConversation: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Body != want {
			t.Fatalf("msgs[%d] = %q, want %q", i, msgs[i].Body, want)
		}
	}
}

func TestListConversation_Empty(t *testing.T) {
	db := newTestDB(t, &domain.ChatMessage{})
	msgs, err := ListConversation(context.Background(), db, "alice", "bob")
	if err != nil {
		t.Fatalf("ListConversation: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("got %d messages, want 0", len(msgs))
	}
}
