package accessibility

import (
	"fmt"
	"sort"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

// WCAG conformance levels.
const (
	LevelAA  = "AA"
	LevelAAA = "AAA"
)

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// minimumRatios holds the required contrast ratios per level and text type.
var minimumRatios = map[string]map[string]float64{
	LevelAA:  {"normal_text": 4.5, "large_text": 3.0, "ui_components": 3.0},
	LevelAAA: {"normal_text": 7.0, "large_text": 4.5, "ui_components": 4.5},
}

// contrastPairs lists the color combinations checked for contrast,
// in stable order.
var contrastPairs = []struct {
	Foreground string
	Background string
	TextType   string
}{
	{"text", "background", "normal_text"},
	{"text_secondary", "background", "normal_text"},
	{"primary", "background", "ui_components"},
	{"text", "primary", "normal_text"},
	{"text", "surface", "normal_text"},
}

// importantColors are checked pairwise for distinguishability.
var importantColors = []string{"primary", "secondary", "error", "warning", "success", "info"}

// distinguishabilityFloor is the minimum ratio between important colors.
const distinguishabilityFloor = 1.5

// minReadableFontSize is the smallest default font size in points that
// does not raise an accessibility warning.
const minReadableFontSize = 9.0

// Violation describes a single accessibility finding.
type Violation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// Report aggregates the results of a WCAG compliance validation run.
type Report struct {
	Level          string             `json:"wcag_level"`
	Score          float64            `json:"score"`
	TotalChecks    int                `json:"total_checks"`
	PassedChecks   int                `json:"passed_checks"`
	ContrastRatios map[string]float64 `json:"contrast_ratios"`
	Violations     []Violation        `json:"violations"`
}

// IsCompliant reports whether the palette meets the target level:
// no error-severity violations. Warnings lower the score but do not
// break compliance.
func (r *Report) IsCompliant() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return false
		}
	}
	return true
}

func (r *Report) addViolation(kind, description, severity, suggestion string) {
	r.Violations = append(r.Violations, Violation{
		Type:        kind,
		Description: description,
		Severity:    severity,
		Suggestion:  suggestion,
	})
}

func (r *Report) recordCheck(passed bool) {
	r.TotalChecks++
	if passed {
		r.PassedChecks++
	}
}

func (r *Report) finalize() {
	if r.TotalChecks == 0 {
		r.Score = 0
		return
	}
	r.Score = float64(r.PassedChecks) / float64(r.TotalChecks) * 100.0
}

// Validate runs WCAG compliance validation against a theme document.
// level must be LevelAA or LevelAAA; anything else falls back to AA.
func Validate(doc theme.Document, level string) *Report {
	if level != LevelAAA {
		level = LevelAA
	}
	report := &Report{
		Level:          level,
		ContrastRatios: make(map[string]float64),
	}

	colors := doc.Colors()
	if len(colors) == 0 {
		report.addViolation("missing_colors",
			"theme defines no colors",
			SeverityError,
			"add a colors section with background and text entries")
		report.finalize()
		return report
	}

	validateContrast(colors, report)
	validateDistinguishability(colors, report)
	validateFonts(doc.Fonts(), report)

	report.finalize()
	return report
}

func validateContrast(colors map[string]string, report *Report) {
	minimums := minimumRatios[report.Level]

	for _, pair := range contrastPairs {
		fg, fgOK := colors[pair.Foreground]
		bg, bgOK := colors[pair.Background]
		if !fgOK || !bgOK {
			continue
		}

		ratio, err := ContrastRatio(fg, bg)
		if err != nil {
			// Unparseable values are a structure problem, reported by
			// the validate package; skip the pair here.
			continue
		}

		pairName := pair.Foreground + "/" + pair.Background
		report.ContrastRatios[pairName] = ratio

		minimum := minimums[pair.TextType]
		passed := ratio >= minimum
		report.recordCheck(passed)
		if !passed {
			report.addViolation("insufficient_contrast",
				fmt.Sprintf("contrast ratio for %s is %.2f (minimum %.1f)", pairName, ratio, minimum),
				SeverityError,
				fmt.Sprintf("adjust %s so the ratio reaches %.1f:1", pairName, minimum))
		}
	}
}

func validateDistinguishability(colors map[string]string, report *Report) {
	var present []string
	for _, name := range importantColors {
		if _, ok := colors[name]; ok {
			present = append(present, name)
		}
	}
	if len(present) < 2 {
		return
	}
	sort.Strings(present)

	for i := range present {
		for j := i + 1; j < len(present); j++ {
			a, b := present[i], present[j]
			ratio, err := ContrastRatio(colors[a], colors[b])
			if err != nil {
				continue
			}

			passed := ratio >= distinguishabilityFloor
			report.recordCheck(passed)
			if !passed {
				report.addViolation("poor_color_distinction",
					fmt.Sprintf("%s and %s are too similar (ratio %.2f)", a, b, ratio),
					SeverityWarning,
					fmt.Sprintf("pick more distinct values for %s and %s", a, b))
			}
		}
	}
}

func validateFonts(fonts map[string]any, report *Report) {
	if fonts == nil {
		return
	}
	def, ok := fonts["default"].(map[string]any)
	if !ok {
		return
	}
	size, ok := def["size"].(float64)
	if !ok {
		return
	}

	passed := size >= minReadableFontSize
	report.recordCheck(passed)
	if !passed {
		report.addViolation("small_font_size",
			fmt.Sprintf("default font size %.0fpt is below the readable minimum", size),
			SeverityWarning,
			fmt.Sprintf("use at least %.0fpt for the default font", minReadableFontSize))
	}
}
