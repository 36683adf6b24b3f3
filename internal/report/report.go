package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/projstat/internal/projstat"
)

// Format is a report output format.
type Format string

const (
	// FormatHTML renders a standalone HTML page with the data embedded for scripts.
	FormatHTML Format = "html"
	// FormatJSON renders the document as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the document as YAML.
	FormatYAML Format = "yaml"
	// FormatText renders terminal tables.
	FormatText Format = "text"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatYAML, FormatText}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Formats(), format) {
		return "", fmt.Errorf("unknown output format %q: must be one of %v", name, Formats())
	}

	return format, nil
}

// Document is what a report displays: the configuration used for the scan
// and the finalized statistics.
type Document struct {
	Options *projstat.Configuration `json:"options" yaml:"options"`
	Stat    *projstat.ProjectStat   `json:"stat"    yaml:"stat"`
}

// Render writes doc to writer in the given format.
func Render(writer io.Writer, format Format, doc Document) error {
	switch format {
	case FormatHTML:
		return PrintHTML(doc, writer)
	case FormatJSON:
		return PrintJSON(doc, writer)
	case FormatYAML:
		return PrintYAML(doc, writer)
	case FormatText:
		return PrintText(doc, writer)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// PrintJSON outputs the document in JSON format.
func PrintJSON(doc Document, writer io.Writer) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the document in YAML format.
func PrintYAML(doc Document, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}
