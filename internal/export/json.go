package export

import (
	"encoding/json"
	"io"
)

// JSONExporter writes the canonical document as pretty-printed JSON.
// This is the contract format; the others are projections of it.
type JSONExporter struct{}

func (e *JSONExporter) Export(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
