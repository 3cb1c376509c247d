package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseValidDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"name":"Nord","version":"1.2.0","colors":{"background":"#2e3440","text":"#d8dee9"}}`))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if doc.Name() != "Nord" {
		t.Errorf("Name() = %q, want %q", doc.Name(), "Nord")
	}
	if doc.Version() != "1.2.0" {
		t.Errorf("Version() = %q, want %q", doc.Version(), "1.2.0")
	}
	colors := doc.Colors()
	if colors["background"] != "#2e3440" {
		t.Errorf("Colors()[background] = %q, want %q", colors["background"], "#2e3440")
	}
}

func TestParseMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"name": `))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("Parse() error = %v, want ErrInvalidJSON", err)
	}
}

func TestParseNonObject(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`[1, 2, 3]`))
	if !errors.Is(err, ErrNotAnObject) {
		t.Fatalf("Parse() error = %v, want ErrNotAnObject", err)
	}
}

func TestAccessorsTolerateWrongTypes(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"name":42,"colors":"not-a-map","fonts":[],"metadata":null}`))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	if doc.Name() != "" {
		t.Errorf("Name() = %q, want empty for non-string name", doc.Name())
	}
	if doc.Colors() != nil {
		t.Errorf("Colors() = %v, want nil for non-mapping colors", doc.Colors())
	}
	if doc.Fonts() != nil {
		t.Errorf("Fonts() = %v, want nil for non-mapping fonts", doc.Fonts())
	}

	// Presence is independent of value validity.
	for _, key := range []string{"name", "colors", "fonts", "metadata"} {
		if !doc.Has(key) {
			t.Errorf("Has(%q) = false, want true", key)
		}
	}
}

func TestColorsDropsNonStringValues(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"colors":{"background":"#fff","depth":3}}`))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	colors := doc.Colors()
	if len(colors) != 1 {
		t.Fatalf("Colors() has %d entries, want 1", len(colors))
	}
	if _, ok := colors["depth"]; ok {
		t.Error("Colors() kept a non-string value")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"name":"ダーク","colors":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if doc.Name() != "ダーク" {
		t.Errorf("Name() = %q, want %q", doc.Name(), "ダーク")
	}
}
