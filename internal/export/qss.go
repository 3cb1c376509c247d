package export

import (
	"bytes"
	"fmt"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

// exportQSS renders a Qt stylesheet from the theme colors, fonts and
// sizes. Blocks are only emitted when the colors that drive them exist,
// so a sparse palette yields a sparse stylesheet rather than an error.
func exportQSS(doc theme.Document) []byte {
	var buf bytes.Buffer
	header(&buf, doc)

	colors := doc.Colors()
	fonts := doc.Fonts()
	sizes := doc.Sizes()

	writeWidgetBlock(&buf, colors, fonts)
	writeButtonBlocks(&buf, colors, sizes)
	writeLineEditBlock(&buf, colors, sizes)
	writeComboBoxBlock(&buf, colors, sizes)

	return buf.Bytes()
}

func writeWidgetBlock(buf *bytes.Buffer, colors map[string]string, fonts map[string]any) {
	if colors["background"] == "" && colors["text"] == "" {
		return
	}
	buf.WriteString("QWidget {\n")
	if bg := colors["background"]; bg != "" {
		fmt.Fprintf(buf, "    background-color: %s;\n", bg)
	}
	if text := colors["text"]; text != "" {
		fmt.Fprintf(buf, "    color: %s;\n", text)
	}
	if def, ok := fonts["default"].(map[string]any); ok {
		if family, ok := def["family"].(string); ok && family != "" {
			fmt.Fprintf(buf, "    font-family: %s;\n", family)
		}
		if size, ok := def["size"].(float64); ok {
			fmt.Fprintf(buf, "    font-size: %gpt;\n", size)
		}
	}
	buf.WriteString("}\n\n")
}

func writeButtonBlocks(buf *bytes.Buffer, colors map[string]string, sizes map[string]any) {
	primary := colors["primary"]
	if primary == "" {
		return
	}

	text := colors["text"]
	if text == "" {
		text = "#ffffff"
	}

	buf.WriteString("QPushButton {\n")
	fmt.Fprintf(buf, "    background-color: %s;\n", primary)
	fmt.Fprintf(buf, "    color: %s;\n", text)
	buf.WriteString("    border: 1px solid #cccccc;\n")
	fmt.Fprintf(buf, "    padding: %gpx;\n", sizeOr(sizes, "padding", 8))
	fmt.Fprintf(buf, "    border-radius: %gpx;\n", sizeOr(sizes, "border_radius", 4))
	buf.WriteString("}\n\n")

	hover := colors["secondary"]
	if hover == "" {
		hover = primary
	}
	buf.WriteString("QPushButton:hover {\n")
	fmt.Fprintf(buf, "    background-color: %s;\n", hover)
	buf.WriteString("}\n\n")

	buf.WriteString("QPushButton:pressed {\n")
	fmt.Fprintf(buf, "    background-color: %s;\n", primary)
	buf.WriteString("    border: 2px solid #999999;\n")
	buf.WriteString("}\n\n")
}

func writeLineEditBlock(buf *bytes.Buffer, colors map[string]string, sizes map[string]any) {
	if colors["surface"] == "" && colors["text"] == "" {
		return
	}
	buf.WriteString("QLineEdit {\n")
	if surface := colors["surface"]; surface != "" {
		fmt.Fprintf(buf, "    background-color: %s;\n", surface)
	}
	if text := colors["text"]; text != "" {
		fmt.Fprintf(buf, "    color: %s;\n", text)
	}
	writeBorder(buf, colors, sizes)
	buf.WriteString("}\n\n")
}

func writeComboBoxBlock(buf *bytes.Buffer, colors map[string]string, sizes map[string]any) {
	surface := colors["surface"]
	if surface == "" {
		return
	}

	text := colors["text"]
	if text == "" {
		text = "#000000"
	}

	buf.WriteString("QComboBox {\n")
	fmt.Fprintf(buf, "    background-color: %s;\n", surface)
	fmt.Fprintf(buf, "    color: %s;\n", text)
	writeBorder(buf, colors, sizes)
	buf.WriteString("}\n\n")
}

func writeBorder(buf *bytes.Buffer, colors map[string]string, sizes map[string]any) {
	border := colors["border"]
	if border == "" {
		border = "#cccccc"
	}
	fmt.Fprintf(buf, "    border: %gpx solid %s;\n", sizeOr(sizes, "border_width", 1), border)
	fmt.Fprintf(buf, "    border-radius: %gpx;\n", sizeOr(sizes, "border_radius", 4))
	fmt.Fprintf(buf, "    padding: %gpx;\n", sizeOr(sizes, "padding", 8))
}
