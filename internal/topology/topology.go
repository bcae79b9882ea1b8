// Package topology classifies a conversation's message history into a
// symbolic bracket-notation pattern. The classification is a fixed text
// heuristic: it counts branching and closure signals in the messages,
// folds the counts into small integer metrics, and renders those metrics
// into a canonical pattern string. Every function here is pure and total.
package topology

import (
	"fmt"
	"strings"

	"topochat/internal/domain"
)

// Policy constants for the metric thresholds. These are heuristic values
// carried over unchanged; changing any of them changes every stored
// pattern, so treat them as part of the external contract.
const (
	orderDialogueMessages = 3  // messageCount above this -> order 2
	orderComplexMessages  = 8  // messageCount above this -> order 3
	orderComplexBranches  = 2  // branchingPoints above this -> order 3
	orderMultiMessages    = 15 // messageCount above this -> order 4
	orderMultiBranches    = 4  // branchingPoints above this -> order 4

	maxNestingDepth = 4
)

// Classify maps an ordered message history to its topology pattern.
// It never fails: the empty history yields the fixed empty topology and
// every non-empty history yields a pattern derived from the metrics.
func Classify(messages []domain.Message) domain.TopologyPattern {
	if len(messages) == 0 {
		return emptyTopology()
	}

	count, branching, closure := ExtractSignals(messages)
	analysis := ResolveMetrics(count, branching, closure)

	return domain.TopologyPattern{
		Pattern:      RenderPattern(analysis.Order, analysis.Threads, analysis.NestingDepth),
		Order:        analysis.Order,
		Threads:      analysis.Threads,
		Complexity:   complexityFor(analysis.Order),
		PrimeFactors: primeFactors(analysis.Order, analysis.Threads, analysis.NestingDepth),
		Structure:    structureFor(analysis.Order, analysis.Threads, analysis.NestingDepth),
		NestingDepth: analysis.NestingDepth,
	}
}

// ExtractSignals scans the history once and counts branching and closure
// signals. A single message may count toward both. Checks are
// case-insensitive substring matches except the literal "?".
func ExtractSignals(messages []domain.Message) (messageCount, branchingPoints, closureAttempts int) {
	messageCount = len(messages)
	for _, msg := range messages {
		lower := strings.ToLower(msg.Content)
		if strings.Contains(msg.Content, "?") || strings.Contains(lower, "what") || strings.Contains(lower, "how") {
			branchingPoints++
		}
		if strings.Contains(lower, "conclusion") || strings.Contains(lower, "summary") || msg.TopologyImpact == domain.TopologyImpactClosure {
			closureAttempts++
		}
	}
	return messageCount, branchingPoints, closureAttempts
}

// ResolveMetrics folds the signal counts into the derived metrics.
// closureAttempts is carried on the result but does not influence any
// metric; only messageCount and branchingPoints do.
func ResolveMetrics(messageCount, branchingPoints, closureAttempts int) domain.ThreadAnalysis {
	order := 1
	if messageCount > orderDialogueMessages {
		order = 2
	}
	if messageCount > orderComplexMessages || branchingPoints > orderComplexBranches {
		order = 3
	}
	if messageCount > orderMultiMessages || branchingPoints > orderMultiBranches {
		order = 4
	}

	// ceil(branchingPoints/2)+1, capped by order+1, floor 1.
	threads := (branchingPoints+1)/2 + 1
	if threads > order+1 {
		threads = order + 1
	}
	if threads < 1 {
		threads = 1
	}

	// floor(branchingPoints/2)+1, capped at maxNestingDepth.
	depth := branchingPoints/2 + 1
	if depth > maxNestingDepth {
		depth = maxNestingDepth
	}
	if depth < 1 {
		depth = 1
	}

	return domain.ThreadAnalysis{
		Order:           order,
		Threads:         threads,
		NestingDepth:    depth,
		BranchingPoints: branchingPoints,
		ClosureAttempts: closureAttempts,
	}
}

// RenderPattern builds the canonical pattern string from the metrics.
// Order 1 always renders the fixed monologue pattern; threads and depth
// are still reported but do not appear in the string.
func RenderPattern(order, threads, nestingDepth int) string {
	if order <= 1 {
		return "s1={[()]}"
	}
	procedural := strings.Repeat("()", threads)
	perspectival := nested(nestingDepth)
	return fmt.Sprintf("s%d={[%s],[(%s)]}", order, procedural, perspectival)
}

// nested renders a depth-N parenthesis nest: 1 -> "()", 3 -> "((()))".
// Wrapping is literal character concatenation.
func nested(depth int) string {
	s := "()"
	for i := 1; i < depth; i++ {
		s = "(" + s + ")"
	}
	return s
}

func complexityFor(order int) domain.Complexity {
	switch order {
	case 1:
		return domain.ComplexityMonologue
	case 2:
		return domain.ComplexityDialogue
	case 3:
		return domain.ComplexityComplex
	default:
		return domain.ComplexityMultiThreaded
	}
}

// primeFactors tags the structural properties present in the metrics.
// Check order matters: consumers rely on the insertion order below.
func primeFactors(order, threads, nestingDepth int) []string {
	factors := []string{}
	if threads >= 2 {
		factors = append(factors, "p1p1")
	}
	if order >= 2 {
		factors = append(factors, "p2")
	}
	if order >= 3 {
		factors = append(factors, "p3")
	}
	if nestingDepth > 2 {
		factors = append(factors, "p5")
	}
	if len(factors) == 0 {
		factors = []string{"p1"}
	}
	return factors
}

// structureFor breaks the same metrics down into the three pattern
// segments. Perspectival holds the base pair plus, past depth 1, the
// remaining nest; it never has more than two elements.
func structureFor(order, threads, nestingDepth int) domain.PatternStructure {
	procedural := make([]string, threads)
	for i := range procedural {
		procedural[i] = "()"
	}
	perspectival := []string{"()"}
	if nestingDepth > 1 {
		perspectival = append(perspectival, nested(nestingDepth-1))
	}
	return domain.PatternStructure{
		Procedural:    procedural,
		Perspectival:  perspectival,
		Participatory: fmt.Sprintf("s%d", order),
	}
}

func emptyTopology() domain.TopologyPattern {
	return domain.TopologyPattern{
		Pattern:      "s0={}",
		Order:        0,
		Threads:      0,
		Complexity:   domain.ComplexityEmpty,
		PrimeFactors: []string{},
		Structure: domain.PatternStructure{
			Procedural:    []string{},
			Perspectival:  []string{},
			Participatory: "s0",
		},
		NestingDepth: 0,
	}
}
