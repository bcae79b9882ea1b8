package v1

import (
	"context"
	"testing"

	"topochat/internal/adapter/llm"
	"topochat/internal/config"
	"topochat/internal/policy"
	store "topochat/internal/repository"
	"topochat/internal/service"
)

// newTestHandler builds a handler over an in-memory store with the mock
// LLM client and the default intake policy.
func newTestHandler(t *testing.T) (*Handler, store.Store) {
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
	svc := service.New(db, llm.NewMockClient(), cfg, engine)
	return NewHandler(svc), db
}
