// Package policy gates message intake before anything touches storage or
// the classifier. The classifier itself never validates; role and content
// checks live here at the boundary.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the intake policy.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.intake_policy.decision"),
		rego.Module("intake_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// MessageInput is the policy input for a posted message.
type MessageInput struct {
	Role          string `json:"role"`
	Content       string `json:"content"`
	ContentLength int    `json:"content_length"`
}

// Evaluate checks the intake policy for a message.
// Returns DecisionAllow or DecisionBlock.
func (e *Engine) Evaluate(ctx context.Context, input MessageInput) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default; an empty result means it was not loaded.
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// DefaultPolicy is the default intake policy: only the two chat roles are
// accepted, content must be non-empty, and oversized content is blocked.
const DefaultPolicy = `
package intake_policy

import rego.v1

default decision := "allow"

decision := "block" if {
	input.role != "user"
	input.role != "assistant"
}

decision := "block" if {
	input.content == ""
}

decision := "block" if {
	input.content_length > 32768
}
`
