package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter handles YAML output formatting
type YAMLFormatter struct {
	out io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{out: w}
}

// Format formats data as YAML
func (f *YAMLFormatter) Format(data interface{}) error {
	if l, ok := data.(*List); ok {
		data = l.envelope()
	}

	output, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	_, err = f.out.Write(output)
	return err
}
