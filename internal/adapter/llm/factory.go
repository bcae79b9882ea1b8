package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvTopochatMode is the environment variable name for mode selection.
	EnvTopochatMode = "TOPOCHAT_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewLLMClient creates an LLM client based on the TOPOCHAT_MODE environment
// variable. If TOPOCHAT_MODE=MOCK, returns a MockClient; otherwise returns
// a real Client.
func NewLLMClient(baseURL, apiKey string, timeout time.Duration) LLMClient {
	if os.Getenv(EnvTopochatMode) == ModeMock {
		log.Println("TOPOCHAT_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, timeout)
}
