package export

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter renders the document as a readable transcript.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(doc *Document, w io.Writer) error {
	title := doc.Title
	if title == "" {
		title = doc.SessionID
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)
	_, _ = fmt.Fprintf(w, "**Session:** %s  \n", doc.SessionID)
	_, _ = fmt.Fprintf(w, "**Pattern:** `%s`  \n", doc.Topology.Pattern)
	_, _ = fmt.Fprintf(w, "**Complexity:** %s  \n", doc.Topology.Complexity)
	_, _ = fmt.Fprintf(w, "**Prime factors:** %s  \n", strings.Join(doc.Topology.PrimeFactors, ", "))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", doc.Metadata.TotalMessages)

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range doc.Messages {
		impact := ""
		if msg.TopologyImpact != "" {
			impact = fmt.Sprintf(" [%s]", msg.TopologyImpact)
		}
		_, _ = fmt.Fprintf(w, "**%s**%s (%s)\n\n%s\n\n", msg.Role, impact, msg.Timestamp.Format("2006-01-02 15:04:05"), escapeMarkdown(msg.Content))
		if i < len(doc.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside code blocks.
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}
