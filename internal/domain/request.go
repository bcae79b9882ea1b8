package domain

import "encoding/json"

// CreateSessionRequest represents the request to create a session.
type CreateSessionRequest struct {
	Title    string          `json:"title"`
	UserID   string          `json:"user_id,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// PostMessageRequest represents a user message posted to a session.
type PostMessageRequest struct {
	Content        string `json:"content"`
	TopologyImpact string `json:"topology_impact,omitempty"`
}

// PostMessageResponse carries the stored exchange and the topology
// recomputed over the full history after the exchange.
type PostMessageResponse struct {
	UserMessage      Message         `json:"user_message"`
	AssistantMessage Message         `json:"assistant_message"`
	Topology         TopologyPattern `json:"topology"`
}

// ListSessionsResponse represents the response for listing sessions.
type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

// GetMessagesResponse represents the response for listing messages.
type GetMessagesResponse struct {
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"`
}
