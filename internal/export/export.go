// Package export assembles a session, its messages and its topology into
// a canonical document for download and audit, and renders that document
// in the supported output formats.
package export

import (
	"encoding/json"
	"time"

	"topochat/internal/domain"
)

// Document is the canonical export shape. Field names are snake_case by
// contract regardless of internal naming; external consumers parse this.
type Document struct {
	SessionID string                 `json:"session_id" yaml:"session_id"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Title     string                 `json:"title" yaml:"title"`
	Topology  domain.TopologyPattern `json:"topology" yaml:"topology"`
	Messages  []ExportMessage        `json:"messages" yaml:"messages"`
	Metadata  Metadata               `json:"metadata" yaml:"metadata"`
}

// ExportMessage is the per-message projection in the export document.
// Content is carried in full; truncation is a presentation concern left
// to preview consumers.
type ExportMessage struct {
	ID             string          `json:"id" yaml:"id"`
	Role           domain.Role     `json:"role" yaml:"role"`
	Content        string          `json:"content" yaml:"content"`
	TopologyImpact string          `json:"topology_impact" yaml:"topology_impact"`
	Timestamp      time.Time       `json:"timestamp" yaml:"timestamp"`
	Metadata       json.RawMessage `json:"metadata,omitempty" yaml:"-"`
}

// Metadata carries the fixed session facts appended to every export.
type Metadata struct {
	ParticipantCount int       `json:"participant_count" yaml:"participant_count"`
	AIModel          string    `json:"ai_model" yaml:"ai_model"`
	TotalMessages    int       `json:"total_messages" yaml:"total_messages"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"updated_at"`
}

// participantCount is fixed: every session is one user and one assistant.
const participantCount = 2

// Build assembles the export document. Pure apart from stamping the
// generation time; model identifies the assistant backend and is injected
// by the caller rather than baked in here.
func Build(session *domain.Session, messages []domain.Message, topology domain.TopologyPattern, model string) *Document {
	exported := make([]ExportMessage, len(messages))
	for i, msg := range messages {
		exported[i] = ExportMessage{
			ID:             msg.MessageID,
			Role:           msg.Role,
			Content:        msg.Content,
			TopologyImpact: msg.TopologyImpact,
			Timestamp:      msg.CreatedAt,
			Metadata:       msg.Metadata,
		}
	}

	return &Document{
		SessionID: session.SessionID,
		Timestamp: time.Now().UTC(),
		Title:     session.Title,
		Topology:  topology,
		Messages:  exported,
		Metadata: Metadata{
			ParticipantCount: participantCount,
			AIModel:          model,
			TotalMessages:    len(messages),
			CreatedAt:        session.CreatedAt,
			UpdatedAt:        session.UpdatedAt,
		},
	}
}
