package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"topochat/internal/adapter/llm"
	"topochat/internal/config"
	"topochat/internal/domain"
	"topochat/internal/policy"
	store "topochat/internal/repository"
	"topochat/internal/topology"
)

func newTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	db, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	cfg := &config.Config{LLMModel: "gpt-4o-mini"}
	return New(db, llm.NewMockClient(), cfg, engine), db
}

func TestPostMessageRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	session, err := svc.CreateSession(ctx, &domain.CreateSessionRequest{Title: "chat"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	resp, err := svc.PostMessage(ctx, session.SessionID, &domain.PostMessageRequest{Content: "Hello"})
	if err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	if resp.UserMessage.Role != domain.RoleUser || resp.UserMessage.Content != "Hello" {
		t.Fatalf("unexpected user message: %+v", resp.UserMessage)
	}
	if resp.AssistantMessage.Role != domain.RoleAssistant || resp.AssistantMessage.Content == "" {
		t.Fatalf("unexpected assistant message: %+v", resp.AssistantMessage)
	}

	// Exactly one exchange stored.
	messages, err := db.GetMessages(ctx, session.SessionID, 0, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	// Snapshot on the session matches a fresh classification.
	stored, err := db.GetSession(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if stored.Topology == nil {
		t.Fatal("expected topology snapshot on session")
	}
	fresh := topology.Classify(messages)
	if stored.Topology.Pattern != fresh.Pattern || stored.Topology.Order != fresh.Order {
		t.Fatalf("snapshot disagrees with fresh classification: %+v vs %+v", stored.Topology, fresh)
	}
	if resp.Topology.Pattern != fresh.Pattern {
		t.Fatalf("response topology disagrees: %q vs %q", resp.Topology.Pattern, fresh.Pattern)
	}
}

func TestPostMessageBlockedByPolicy(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)

	session, err := svc.CreateSession(ctx, &domain.CreateSessionRequest{Title: "chat"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	_, err = svc.PostMessage(ctx, session.SessionID, &domain.PostMessageRequest{Content: ""})
	if !errors.Is(err, ErrMessageBlocked) {
		t.Fatalf("expected ErrMessageBlocked, got %v", err)
	}

	_, err = svc.PostMessage(ctx, session.SessionID, &domain.PostMessageRequest{Content: strings.Repeat("a", 40000)})
	if !errors.Is(err, ErrMessageBlocked) {
		t.Fatalf("expected ErrMessageBlocked for oversized content, got %v", err)
	}

	// Nothing persisted.
	messages, err := db.GetMessages(ctx, session.SessionID, 0, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(messages))
	}
}

func TestPostMessageUnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.PostMessage(ctx, "missing", &domain.PostMessageRequest{Content: "hi"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetTopologyRecomputes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, &domain.CreateSessionRequest{Title: "chat"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// Empty history classifies as the fixed empty topology.
	pattern, err := svc.GetTopology(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetTopology failed: %v", err)
	}
	if pattern.Pattern != "s0={}" || pattern.Complexity != domain.ComplexityEmpty {
		t.Fatalf("unexpected empty topology: %+v", pattern)
	}

	// The mock assistant echoes the user content, so keep it free of
	// branching keywords to make the expected metrics exact.
	for i := 0; i < 3; i++ {
		if _, err := svc.PostMessage(ctx, session.SessionID, &domain.PostMessageRequest{Content: "Tell me more."}); err != nil {
			t.Fatalf("PostMessage failed: %v", err)
		}
	}

	pattern, err = svc.GetTopology(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("GetTopology failed: %v", err)
	}
	// 6 messages, no branching points: order 2, one thread, depth 1.
	if pattern.Pattern != "s2={[()],[(())]}" {
		t.Fatalf("unexpected pattern: %q", pattern.Pattern)
	}
}

func TestExportService(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	session, err := svc.CreateSession(ctx, &domain.CreateSessionRequest{Title: "audit me"})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if _, err := svc.PostMessage(ctx, session.SessionID, &domain.PostMessageRequest{Content: "Hello"}); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	doc, err := svc.Export(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if doc.SessionID != session.SessionID || doc.Title != "audit me" {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	if doc.Metadata.ParticipantCount != 2 || doc.Metadata.AIModel != "gpt-4o-mini" || doc.Metadata.TotalMessages != 2 {
		t.Fatalf("unexpected metadata: %+v", doc.Metadata)
	}
	if doc.Topology.Pattern != "s1={[()]}" {
		t.Fatalf("unexpected pattern: %q", doc.Topology.Pattern)
	}
}
