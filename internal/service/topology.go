package service

import (
	"context"
	"fmt"

	"topochat/internal/domain"
	"topochat/internal/topology"
)

// GetTopology classifies the session's current message history.
// Always a fresh recomputation over the full history; the snapshot on the
// session row is a cache for listings, never the source of truth here.
func (s *Service) GetTopology(ctx context.Context, sessionID string) (*domain.TopologyPattern, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	history, err := s.store.GetMessages(ctx, sessionID, 0, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	pattern := topology.Classify(history)
	return &pattern, nil
}
