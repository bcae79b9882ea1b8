package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"topochat/internal/domain"
)

// CreateSession creates a new conversation session.
func (s *Service) CreateSession(ctx context.Context, req *domain.CreateSessionRequest) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		SessionID: uuid.NewString(),
		Title:     req.Title,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  req.Metadata,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ListSessions retrieves all sessions.
func (s *Service) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
