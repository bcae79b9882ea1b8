package domain

// Role represents the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Complexity represents the coarse classification tier of a conversation.
type Complexity string

const (
	ComplexityEmpty         Complexity = "empty"
	ComplexityMonologue     Complexity = "monologue"
	ComplexityDialogue      Complexity = "dialogue"
	ComplexityComplex       Complexity = "complex_dialogue"
	ComplexityMultiThreaded Complexity = "multi_threaded_discourse"
)

// TopologyImpactClosure is the explicit per-message tag marking a closure
// attempt. Counted by the signal extractor; not otherwise consulted.
const TopologyImpactClosure = "closure_attempt"
