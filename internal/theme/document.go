// Package theme defines the theme document model shared by all
// Theme Studio commands.
//
// A theme document is an untyped JSON mapping. No schema is enforced at
// this layer: absent or malformed attributes read as missing, never as
// errors. The only hard failure modes are at the file boundary, where
// access errors and parse errors are reported separately.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the load boundary.
var (
	// ErrFileNotFound indicates the theme file does not exist.
	ErrFileNotFound = errors.New("theme: file not found")

	// ErrInvalidJSON indicates the theme file is not valid JSON.
	ErrInvalidJSON = errors.New("theme: invalid JSON")

	// ErrNotAnObject indicates the theme file parsed to a non-object value.
	ErrNotAnObject = errors.New("theme: document is not a JSON object")
)

// Document is a parsed theme document. Keys beyond the ones the
// accessors expose are preserved untouched so that export round-trips
// keep author-defined extensions.
type Document map[string]any

// Name returns the theme name, or "" when absent or not a string.
func (d Document) Name() string {
	s, _ := d["name"].(string)
	return s
}

// Version returns the theme version, or "" when absent or not a string.
func (d Document) Version() string {
	s, _ := d["version"].(string)
	return s
}

// Colors returns the color table, or nil when absent or not a mapping.
// Non-string values are dropped; syntax validation happens elsewhere.
func (d Document) Colors() map[string]string {
	raw, ok := d["colors"].(map[string]any)
	if !ok {
		return nil
	}
	colors := make(map[string]string, len(raw))
	for name, v := range raw {
		if s, ok := v.(string); ok {
			colors[name] = s
		}
	}
	return colors
}

// ColorCount returns the number of entries in the colors table,
// counting entries of any value type. Zero when colors is absent or
// not a mapping.
func (d Document) ColorCount() int {
	raw, ok := d["colors"].(map[string]any)
	if !ok {
		return 0
	}
	return len(raw)
}

// Fonts returns the font table, or nil when absent or not a mapping.
func (d Document) Fonts() map[string]any {
	m, _ := d["fonts"].(map[string]any)
	return m
}

// Sizes returns the size table, or nil when absent or not a mapping.
func (d Document) Sizes() map[string]any {
	m, _ := d["sizes"].(map[string]any)
	return m
}

// Metadata returns the metadata table, or nil when absent or not a mapping.
func (d Document) Metadata() map[string]any {
	m, _ := d["metadata"].(map[string]any)
	return m
}

// Has reports whether a top-level key is literally present, regardless
// of its value.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Load reads a UTF-8 JSON theme document from path.
// A missing or unreadable file wraps ErrFileNotFound; syntactically
// invalid JSON wraps ErrInvalidJSON with the decoder's reason.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return Parse(data)
}

// Parse decodes raw JSON bytes into a Document.
func Parse(data []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, raw)
	}
	return Document(doc), nil
}
