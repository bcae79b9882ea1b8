// Package service orchestrates sessions, messages, topology
// classification and exports.
package service

import (
	"errors"

	"topochat/internal/adapter/llm"
	"topochat/internal/config"
	"topochat/internal/policy"
	store "topochat/internal/repository"
)

// ErrSessionNotFound is returned when the referenced session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// ErrMessageBlocked is returned when the intake policy rejects a message.
var ErrMessageBlocked = errors.New("message blocked by intake policy")

type Service struct {
	store        store.Store
	llmClient    llm.LLMClient
	config       *config.Config
	policyEngine *policy.Engine
}

func New(store store.Store, llmClient llm.LLMClient, cfg *config.Config, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        store,
		llmClient:    llmClient,
		config:       cfg,
		policyEngine: policyEngine,
	}
}
