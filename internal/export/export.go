// Package export renders theme documents into distributable stylesheet
// and data formats: Qt stylesheets (QSS), web CSS, JSON, and YAML.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatQSS  = "qss"
	FormatCSS  = "css"
	FormatYAML = "yaml"
)

// Formats lists the supported formats in display order.
var Formats = []string{FormatJSON, FormatQSS, FormatCSS, FormatYAML}

// ErrUnsupportedFormat indicates an unknown export format.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Export renders a theme document into the given format.
func Export(doc theme.Document, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return exportJSON(doc)
	case FormatQSS:
		return exportQSS(doc), nil
	case FormatCSS:
		return exportCSS(doc), nil
	case FormatYAML:
		return yaml.Marshal(map[string]any(doc))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// IsSupported reports whether format is a known export format.
func IsSupported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func exportJSON(doc theme.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any(doc)); err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}
	return buf.Bytes(), nil
}

// header emits the comment block shared by the stylesheet formats.
func header(buf *bytes.Buffer, doc theme.Document) {
	name := doc.Name()
	if name == "" {
		name = "Unnamed Theme"
	}
	version := doc.Version()
	if version == "" {
		version = "1.0.0"
	}
	fmt.Fprintf(buf, "/* %s */\n", name)
	fmt.Fprintf(buf, "/* Version: %s */\n", version)
	buf.WriteString("/* Generated by Theme Studio */\n\n")
}

// sizeOr reads a numeric size with a fallback default.
func sizeOr(sizes map[string]any, key string, fallback float64) float64 {
	if v, ok := sizes[key].(float64); ok {
		return v
	}
	return fallback
}

func sortedColorNames(colors map[string]string) []string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
