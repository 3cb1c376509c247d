package validate

import (
	"fmt"
	"sort"

	"github.com/scottlz0310/theme-studio/internal/accessibility"
	"github.com/scottlz0310/theme-studio/internal/theme"
)

// essentialColors must be present in every usable palette.
var essentialColors = []string{"background", "text"}

// Structure validates a theme document's structure and returns the
// findings as human-readable messages in stable order. An empty slice
// means the structure is clean.
//
// Unlike the completeness scorer, validation does fail on degenerate
// values: wrong types, missing essential colors, and unparseable color
// values all produce errors.
func Structure(doc theme.Document) []string {
	var errs []string

	schemaErrs, err := schemaErrors(doc)
	if err != nil {
		return []string{fmt.Sprintf("structure validation failed: %v", err)}
	}
	sort.Strings(schemaErrs)
	errs = append(errs, schemaErrs...)

	if colors, ok := doc["colors"].(map[string]any); ok {
		errs = append(errs, colorErrors(colors)...)
	}
	if fonts, ok := doc["fonts"].(map[string]any); ok {
		errs = append(errs, fontErrors(fonts)...)
	}
	if sizes, ok := doc["sizes"].(map[string]any); ok {
		errs = append(errs, sizeErrors(sizes)...)
	}

	return errs
}

func colorErrors(colors map[string]any) []string {
	var errs []string

	for _, name := range essentialColors {
		if _, ok := colors[name]; !ok {
			errs = append(errs, fmt.Sprintf("colors: missing essential color %q", name))
		}
	}

	names := sortedKeys(colors)
	for _, name := range names {
		value, ok := colors[name].(string)
		if !ok || !accessibility.IsValidColor(value) {
			errs = append(errs, fmt.Sprintf("colors: invalid color value: %s = %v", name, colors[name]))
		}
	}

	return errs
}

func fontErrors(fonts map[string]any) []string {
	var errs []string

	if _, ok := fonts["default"]; !ok {
		errs = append(errs, `fonts: missing required font "default"`)
	}

	names := sortedKeys(fonts)
	for _, name := range names {
		switch config := fonts[name].(type) {
		case string:
			// A bare string is a font family name.
		case map[string]any:
			if family, ok := config["family"]; !ok {
				errs = append(errs, fmt.Sprintf("fonts: %s is missing a family", name))
			} else if _, ok := family.(string); !ok {
				errs = append(errs, fmt.Sprintf("fonts: %s family must be a string", name))
			}
			if rawSize, ok := config["size"]; ok {
				size, ok := rawSize.(float64)
				switch {
				case !ok:
					errs = append(errs, fmt.Sprintf("fonts: %s size must be a number", name))
				case size <= 0:
					errs = append(errs, fmt.Sprintf("fonts: %s size must be positive", name))
				}
			}
		default:
			errs = append(errs, fmt.Sprintf("fonts: %s must be a mapping or a family name", name))
		}
	}

	return errs
}

func sizeErrors(sizes map[string]any) []string {
	var errs []string

	names := sortedKeys(sizes)
	for _, name := range names {
		value, ok := sizes[name].(float64)
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("sizes: %s must be a number", name))
		case value < 0:
			errs = append(errs, fmt.Sprintf("sizes: %s must be non-negative", name))
		}
	}

	return errs
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
