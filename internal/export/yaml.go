package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the document as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(doc *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
