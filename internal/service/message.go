package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"topochat/internal/adapter/llm"
	"topochat/internal/domain"
	"topochat/internal/policy"
	"topochat/internal/topology"
)

// PostMessage stores a user message, obtains the assistant reply,
// reclassifies the full history and snapshots the topology on the session.
func (s *Service) PostMessage(ctx context.Context, sessionID string, req *domain.PostMessageRequest) (*domain.PostMessageResponse, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	decision, err := s.policyEngine.Evaluate(ctx, policy.MessageInput{
		Role:          string(domain.RoleUser),
		Content:       req.Content,
		ContentLength: len(req.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate intake policy: %w", err)
	}
	if decision != policy.DecisionAllow {
		return nil, ErrMessageBlocked
	}

	userMsg := &domain.Message{
		MessageID:      uuid.NewString(),
		SessionID:      session.SessionID,
		Role:           domain.RoleUser,
		Content:        req.Content,
		TopologyImpact: req.TopologyImpact,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	history, err := s.store.GetMessages(ctx, session.SessionID, 0, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	reply, err := s.completeReply(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain assistant reply: %w", err)
	}

	assistantMsg := &domain.Message{
		MessageID: uuid.NewString(),
		SessionID: session.SessionID,
		Role:      domain.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to store assistant message: %w", err)
	}

	history = append(history, *assistantMsg)
	pattern := topology.Classify(history)
	if err := s.store.UpdateSessionTopology(ctx, session.SessionID, &pattern); err != nil {
		return nil, fmt.Errorf("failed to snapshot topology: %w", err)
	}

	return &domain.PostMessageResponse{
		UserMessage:      *userMsg,
		AssistantMessage: *assistantMsg,
		Topology:         pattern,
	}, nil
}

// completeReply asks the LLM backend for the next assistant turn given the
// conversation so far.
func (s *Service) completeReply(ctx context.Context, history []domain.Message) (string, error) {
	chatMessages := make([]llm.ChatMessage, len(history))
	for i, msg := range history {
		chatMessages[i] = llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model:    s.config.LLMModel,
		Messages: chatMessages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return "", fmt.Errorf("llm backend returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GetMessages retrieves messages for a session.
func (s *Service) GetMessages(ctx context.Context, sessionID string, limit int, before string) ([]domain.Message, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	messages, err := s.store.GetMessages(ctx, sessionID, limit, before)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}
