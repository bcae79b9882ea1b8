package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"topochat/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSQLiteStoreSessionAndMessages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	now := time.Now().UTC()
	session := &domain.Session{
		SessionID: "s1",
		Title:     "First chat",
		UserID:    "u1",
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  json.RawMessage(`{"tier":"pro"}`),
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	gotSession, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if gotSession == nil || gotSession.Title != "First chat" || gotSession.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", gotSession)
	}
	if gotSession.Topology != nil {
		t.Fatalf("expected no topology snapshot yet, got %+v", gotSession.Topology)
	}

	msg := &domain.Message{
		MessageID:      "m1",
		SessionID:      "s1",
		Role:           domain.RoleUser,
		Content:        "hello",
		TopologyImpact: domain.TopologyImpactClosure,
		CreatedAt:      now,
	}
	if err := store.CreateMessage(ctx, msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	messages, err := store.GetMessages(ctx, "s1", 10, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleUser || messages[0].TopologyImpact != domain.TopologyImpactClosure {
		t.Fatalf("unexpected message: %+v", messages[0])
	}

	count, err := store.CountMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("CountMessages failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 message, got %d", count)
	}
}

func TestSQLiteStoreGetSessionMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	session, err := store.GetSession(ctx, "nope")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil for missing session, got %+v", session)
	}
}

func TestSQLiteStoreTopologySnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	now := time.Now().UTC()
	session := &domain.Session{SessionID: "s1", Title: "t", CreatedAt: now, UpdatedAt: now}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	pattern := &domain.TopologyPattern{
		Pattern:      "s3={[()()()],[((()))]}",
		Order:        3,
		Threads:      3,
		Complexity:   domain.ComplexityComplex,
		PrimeFactors: []string{"p1p1", "p2", "p3"},
		Structure: domain.PatternStructure{
			Procedural:    []string{"()", "()", "()"},
			Perspectival:  []string{"()", "()"},
			Participatory: "s3",
		},
		NestingDepth: 2,
	}
	if err := store.UpdateSessionTopology(ctx, "s1", pattern); err != nil {
		t.Fatalf("UpdateSessionTopology failed: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Topology == nil || got.Topology.Pattern != pattern.Pattern {
		t.Fatalf("unexpected topology snapshot: %+v", got.Topology)
	}
	if got.Topology.Order != 3 || len(got.Topology.PrimeFactors) != 3 {
		t.Fatalf("snapshot lost fields: %+v", got.Topology)
	}
	if !got.UpdatedAt.After(now.Add(-time.Second)) {
		t.Fatalf("updated_at not bumped: %v", got.UpdatedAt)
	}
}

func TestSQLiteStoreListSessions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	base := time.Now().UTC()
	for i, id := range []string{"s1", "s2"} {
		ts := base.Add(time.Duration(i) * time.Second)
		session := &domain.Session{SessionID: id, Title: id, CreatedAt: ts, UpdatedAt: ts}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].SessionID != "s2" {
		t.Fatalf("expected most recently updated first, got %s", sessions[0].SessionID)
	}
}

func TestSQLiteStoreMessageOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	now := time.Now().UTC()
	session := &domain.Session{SessionID: "s1", Title: "t", CreatedAt: now, UpdatedAt: now}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		msg := &domain.Message{
			MessageID: "m" + string(rune('1'+i)),
			SessionID: "s1",
			Role:      domain.RoleUser,
			Content:   "hello",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := store.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}

	messages, err := store.GetMessages(ctx, "s1", 2, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 2 || messages[0].MessageID != "m1" || messages[1].MessageID != "m2" {
		t.Fatalf("unexpected messages: %+v", messages)
	}

	// Limit 0 returns the full history.
	all, err := store.GetMessages(ctx, "s1", 0, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected full history, got %d", len(all))
	}
}
