// Package domain defines the core domain models for topochat.
package domain

import (
	"encoding/json"
	"time"
)

// Session represents a conversation session.
type Session struct {
	SessionID string           `json:"session_id"`
	Title     string           `json:"title"`
	UserID    string           `json:"user_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Topology  *TopologyPattern `json:"topology,omitempty"`
	Metadata  json.RawMessage  `json:"metadata,omitempty"`
}

// Message represents a single message in a session.
type Message struct {
	MessageID      string          `json:"message_id"`
	SessionID      string          `json:"session_id"`
	Role           Role            `json:"role"`
	Content        string          `json:"content"`
	TopologyImpact string          `json:"topology_impact,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
}

// TopologyPattern is the structural classification of a conversation.
// Pattern is always derivable from Order, Threads and NestingDepth alone;
// the other fields are reported alongside for consumers.
type TopologyPattern struct {
	Pattern      string           `json:"pattern" yaml:"pattern"`
	Order        int              `json:"order" yaml:"order"`
	Threads      int              `json:"threads" yaml:"threads"`
	Complexity   Complexity       `json:"complexity" yaml:"complexity"`
	PrimeFactors []string         `json:"prime_factors" yaml:"prime_factors"`
	Structure    PatternStructure `json:"structure" yaml:"structure"`
	NestingDepth int              `json:"nesting_depth" yaml:"nesting_depth"`
}

// PatternStructure breaks the pattern down into its three segments.
type PatternStructure struct {
	Procedural    []string `json:"procedural" yaml:"procedural"`
	Perspectival  []string `json:"perspectival" yaml:"perspectival"`
	Participatory string   `json:"participatory" yaml:"participatory"`
}

// ThreadAnalysis is the intermediate staging structure between signal
// extraction and pattern rendering. Never persisted.
type ThreadAnalysis struct {
	Order           int `json:"order"`
	Threads         int `json:"threads"`
	NestingDepth    int `json:"nesting_depth"`
	BranchingPoints int `json:"branching_points"`
	ClosureAttempts int `json:"closure_attempts"`
}
