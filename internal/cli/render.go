package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI styles.
var (
	stylePrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleBorder.GetForeground()).
		Padding(0, 2)
}

func successCard(title string, details ...string) string {
	titleLine := styleSuccess.Render("✓") + " " + title
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		for i, d := range details {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(d)
		}
	}
	return cardStyle().Render(body.String())
}

func infoCard(title, content string) string {
	titleLine := stylePrimary.Bold(true).Render(title)
	body := titleLine + "\n\n" + content
	return cardStyle().Render(body)
}

// plainCard renders the same content without styling for pipes and CI
// logs, where box drawing and ANSI sequences only add noise.
func plainCard(title string, details ...string) string {
	var body strings.Builder
	body.WriteString(title)
	for _, d := range details {
		body.WriteString("\n")
		body.WriteString(d)
	}
	return body.String()
}

// renderCard picks the styled or plain rendering based on the terminal.
func renderCard(title string, details ...string) string {
	if deps != nil && deps.Terminal != nil && deps.Terminal.Interactive() {
		return successCard(title, details...)
	}
	return plainCard(title, details...)
}
