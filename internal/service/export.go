package service

import (
	"context"
	"fmt"

	"topochat/internal/export"
	"topochat/internal/topology"
)

// Export builds the canonical export document for a session.
func (s *Service) Export(ctx context.Context, sessionID string) (*export.Document, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.store.GetMessages(ctx, sessionID, 0, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	pattern := topology.Classify(messages)
	return export.Build(session, messages, pattern, s.config.LLMModel), nil
}
