package format

import (
	"fmt"
	"io"
	"os"

	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/notify"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data interface{}) error
}

// Formats lists the accepted --output values
var Formats = []string{"table", "json", "json-compact", "yaml", "text", "csv"}

// GetFormatter returns a formatter writing to stdout
func GetFormatter(format string) (Formatter, error) {
	return NewFormatter(format, os.Stdout, config.Get().Format.Colors)
}

// NewFormatter returns a formatter for format writing to w
func NewFormatter(format string, w io.Writer, useColors bool) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w, useColors), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "json-compact":
		return NewJSONFormatter(w, false), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "text":
		return NewTextFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Print formats and prints data using the configured output format
func Print(data interface{}) error {
	formatter, err := GetFormatter(config.GetOutputFormat())
	if err != nil {
		return err
	}
	return formatter.Format(data)
}

// PrintSuccess raises a success toast
func PrintSuccess(message string, args ...interface{}) {
	notify.Default().Success("", fmt.Sprintf(message, args...))
}

// PrintError raises an error toast
func PrintError(message string, args ...interface{}) {
	notify.Default().Error("", fmt.Sprintf(message, args...))
}

// PrintWarning raises a warning toast
func PrintWarning(message string, args ...interface{}) {
	notify.Default().Warning("", fmt.Sprintf(message, args...))
}

// PrintInfo raises an info toast
func PrintInfo(message string, args ...interface{}) {
	notify.Default().Info("", fmt.Sprintf(message, args...))
}
