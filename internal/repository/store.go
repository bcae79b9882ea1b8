// Package store defines the storage interface and its SQLite implementation.
package store

import (
	"context"

	"topochat/internal/domain"
)

// Store defines the interface for data persistence.
type Store interface {
	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	UpdateSessionTopology(ctx context.Context, sessionID string, topology *domain.TopologyPattern) error

	// Message operations
	CreateMessage(ctx context.Context, message *domain.Message) error
	GetMessages(ctx context.Context, sessionID string, limit int, before string) ([]domain.Message, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)

	// Lifecycle
	Close() error
}
