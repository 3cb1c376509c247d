package export

import (
	"bytes"
	"fmt"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

// exportCSS renders the theme as web CSS: every color becomes a custom
// property on :root, followed by body, button and input rules for the
// conventional color roles.
func exportCSS(doc theme.Document) []byte {
	var buf bytes.Buffer
	header(&buf, doc)

	colors := doc.Colors()
	fonts := doc.Fonts()
	sizes := doc.Sizes()

	if len(colors) > 0 {
		buf.WriteString(":root {\n")
		for _, name := range sortedColorNames(colors) {
			fmt.Fprintf(&buf, "    --%s: %s;\n", cssPropertyName(name), colors[name])
		}
		buf.WriteString("}\n\n")
	}

	if colors["background"] != "" || colors["text"] != "" {
		buf.WriteString("body {\n")
		if bg := colors["background"]; bg != "" {
			fmt.Fprintf(&buf, "    background-color: %s;\n", bg)
		}
		if text := colors["text"]; text != "" {
			fmt.Fprintf(&buf, "    color: %s;\n", text)
		}
		if def, ok := fonts["default"].(map[string]any); ok {
			if family, ok := def["family"].(string); ok && family != "" {
				fmt.Fprintf(&buf, "    font-family: %s;\n", family)
			}
			if size, ok := def["size"].(float64); ok {
				fmt.Fprintf(&buf, "    font-size: %gpt;\n", size)
			}
		}
		buf.WriteString("}\n\n")
	}

	if primary := colors["primary"]; primary != "" {
		text := colors["text"]
		if text == "" {
			text = "#ffffff"
		}
		buf.WriteString("button {\n")
		fmt.Fprintf(&buf, "    background-color: %s;\n", primary)
		fmt.Fprintf(&buf, "    color: %s;\n", text)
		fmt.Fprintf(&buf, "    padding: %gpx;\n", sizeOr(sizes, "padding", 8))
		fmt.Fprintf(&buf, "    border-radius: %gpx;\n", sizeOr(sizes, "border_radius", 4))
		buf.WriteString("}\n\n")
	}

	if surface := colors["surface"]; surface != "" {
		border := colors["border"]
		if border == "" {
			border = "#cccccc"
		}
		buf.WriteString("input, select {\n")
		fmt.Fprintf(&buf, "    background-color: %s;\n", surface)
		fmt.Fprintf(&buf, "    border: %gpx solid %s;\n", sizeOr(sizes, "border_width", 1), border)
		fmt.Fprintf(&buf, "    border-radius: %gpx;\n", sizeOr(sizes, "border_radius", 4))
		buf.WriteString("}\n\n")
	}

	return buf.Bytes()
}

// cssPropertyName converts a color name to a CSS custom property stem.
func cssPropertyName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == '_' || r == ' ' {
			out = append(out, '-')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
