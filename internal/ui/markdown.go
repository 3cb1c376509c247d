package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/scottlz0310/theme-studio/internal/quality"
)

// RenderQualityReport renders a comprehensive quality report as styled
// terminal markdown. Falls back to the raw markdown when rendering is
// unavailable (odd TERM, no style support).
func RenderQualityReport(report *quality.Report, threshold float64) string {
	md := QualityReportMarkdown(report, threshold)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// QualityReportMarkdown formats a quality report as markdown.
func QualityReportMarkdown(report *quality.Report, threshold float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 品質チェック結果: %s\n\n", report.ThemeName)
	fmt.Fprintf(&b, "**総合スコア**: %.1f/100 (閾値 %.1f)\n\n", report.OverallScore, threshold)

	b.WriteString("| チェック | 結果 | スコア |\n")
	b.WriteString("|---|---|---|\n")
	for _, name := range quality.CheckOrder {
		check, ok := report.Checks[name]
		if !ok {
			continue
		}
		mark := "✗"
		if check.Passed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "| %s | %s | %.1f |\n", name, mark, check.Score)
	}
	b.WriteString("\n")

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(&b, "## 推奨事項 (%d)\n\n", len(report.Recommendations))
		for i, rec := range report.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}
