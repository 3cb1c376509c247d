package validate

import (
	"strings"
	"testing"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

func validDoc() theme.Document {
	return theme.Document{
		"name":    "Nord",
		"version": "1.0.0",
		"colors": map[string]any{
			"background": "#2e3440",
			"text":       "#d8dee9",
		},
		"fonts": map[string]any{
			"default": map[string]any{"family": "Inter", "size": 12.0},
		},
	}
}

func TestStructureValidDocument(t *testing.T) {
	t.Parallel()

	if errs := Structure(validDoc()); len(errs) != 0 {
		t.Errorf("Structure() = %v, want no errors", errs)
	}
}

func TestStructureEmptyDocumentReportsAllRequired(t *testing.T) {
	t.Parallel()

	errs := Structure(theme.Document{})
	if len(errs) != 4 {
		t.Fatalf("Structure({}) returned %d errors, want 4: %v", len(errs), errs)
	}
	for _, field := range []string{"name", "version", "colors", "fonts"} {
		found := false
		for _, e := range errs {
			if strings.Contains(e, field) {
				found = true
			}
		}
		if !found {
			t.Errorf("no error mentions required field %q: %v", field, errs)
		}
	}
}

func TestStructureStableOrder(t *testing.T) {
	t.Parallel()

	first := Structure(theme.Document{})
	for range 20 {
		if got := Structure(theme.Document{}); !equalStrings(got, first) {
			t.Fatalf("Structure() order not stable: %v vs %v", got, first)
		}
	}
}

func TestStructureWrongTypes(t *testing.T) {
	t.Parallel()

	doc := validDoc()
	doc["name"] = 42
	doc["colors"] = "not-a-map"

	errs := Structure(doc)
	if len(errs) == 0 {
		t.Fatal("Structure() accepted wrong-typed name and colors")
	}
}

func TestStructureMissingEssentialColors(t *testing.T) {
	t.Parallel()

	doc := validDoc()
	doc["colors"] = map[string]any{"primary": "#5e81ac"}

	errs := Structure(doc)
	want := []string{"background", "text"}
	for _, name := range want {
		found := false
		for _, e := range errs {
			if strings.Contains(e, "essential color") && strings.Contains(e, name) {
				found = true
			}
		}
		if !found {
			t.Errorf("missing essential color %q not reported: %v", name, errs)
		}
	}
}

func TestStructureInvalidColorValue(t *testing.T) {
	t.Parallel()

	doc := validDoc()
	doc["colors"] = map[string]any{
		"background": "#2e3440",
		"text":       "#gggggg",
	}

	errs := Structure(doc)
	found := false
	for _, e := range errs {
		if strings.Contains(e, "invalid color value") && strings.Contains(e, "text") {
			found = true
		}
	}
	if !found {
		t.Errorf("invalid color value not reported: %v", errs)
	}
}

func TestStructureFontChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fonts map[string]any
		want  string
	}{
		{"missing default", map[string]any{"heading": "Inter"}, `missing required font "default"`},
		{"missing family", map[string]any{"default": map[string]any{"size": 12.0}}, "missing a family"},
		{"bad size type", map[string]any{"default": map[string]any{"family": "Inter", "size": "big"}}, "size must be a number"},
		{"negative size", map[string]any{"default": map[string]any{"family": "Inter", "size": -1.0}}, "size must be positive"},
		{"bad config type", map[string]any{"default": 12.0}, "mapping or a family name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validDoc()
			doc["fonts"] = tc.fonts

			errs := Structure(doc)
			found := false
			for _, e := range errs {
				if strings.Contains(e, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error containing %q, got %v", tc.want, errs)
			}
		})
	}
}

func TestStructureSizeChecks(t *testing.T) {
	t.Parallel()

	doc := validDoc()
	doc["sizes"] = map[string]any{"padding": -4.0, "radius": "round"}

	errs := Structure(doc)
	if len(errs) != 2 {
		t.Fatalf("Structure() = %v, want 2 size errors", errs)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
