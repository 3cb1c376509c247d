package accessibility

import (
	"math"
	"testing"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

func TestParseColorForms(t *testing.T) {
	t.Parallel()

	valid := []string{
		"#fff",
		"#2e3440",
		"#2e3440ff",
		"rgb(46, 52, 64)",
		"rgba(46, 52, 64, 0.85)",
		"white",
		"  #FFF  ",
		"＃ｆｆｆｆｆｆ", // full-width, IME artifact
	}
	for _, value := range valid {
		if !IsValidColor(value) {
			t.Errorf("IsValidColor(%q) = false, want true", value)
		}
	}

	invalid := []string{
		"",
		"#ffff",
		"#gggggg",
		"rgb(300, 0, 0)",
		"hsl(0, 0%, 0%)",
		"blurple",
	}
	for _, value := range invalid {
		if IsValidColor(value) {
			t.Errorf("IsValidColor(%q) = true, want false", value)
		}
	}
}

func TestContrastRatioBlackOnWhite(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("ContrastRatio() unexpected error: %v", err)
	}
	if math.Abs(ratio-21.0) > 0.01 {
		t.Errorf("ContrastRatio(black, white) = %.4f, want 21.0", ratio)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	t.Parallel()

	ab, err := ContrastRatio("#2e3440", "#d8dee9")
	if err != nil {
		t.Fatal(err)
	}
	ba, err := ContrastRatio("#d8dee9", "#2e3440")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("ContrastRatio not symmetric: %.6f vs %.6f", ab, ba)
	}
}

func TestValidateCompliantPalette(t *testing.T) {
	t.Parallel()

	doc := theme.Document{
		"colors": map[string]any{
			"background": "#ffffff",
			"text":       "#000000",
		},
	}

	report := Validate(doc, LevelAA)
	if !report.IsCompliant() {
		t.Errorf("black-on-white palette should be AA compliant, got violations %v", report.Violations)
	}
	if report.ContrastRatios["text/background"] < 20.9 {
		t.Errorf("text/background ratio = %.2f, want ~21", report.ContrastRatios["text/background"])
	}
}

func TestValidateInsufficientContrast(t *testing.T) {
	t.Parallel()

	doc := theme.Document{
		"colors": map[string]any{
			"background": "#888888",
			"text":       "#777777",
		},
	}

	report := Validate(doc, LevelAA)
	if report.IsCompliant() {
		t.Error("near-identical grays should not be AA compliant")
	}

	found := false
	for _, v := range report.Violations {
		if v.Type == "insufficient_contrast" && v.Severity == SeverityError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an insufficient_contrast error, got %v", report.Violations)
	}
}

func TestValidateMissingColors(t *testing.T) {
	t.Parallel()

	report := Validate(theme.Document{}, LevelAA)
	if report.IsCompliant() {
		t.Error("empty document should not be compliant")
	}
	if len(report.Violations) != 1 || report.Violations[0].Type != "missing_colors" {
		t.Errorf("expected a single missing_colors violation, got %v", report.Violations)
	}
}

func TestValidateAAAStricterThanAA(t *testing.T) {
	t.Parallel()

	// ~4.6:1, passes AA normal text but not AAA.
	doc := theme.Document{
		"colors": map[string]any{
			"background": "#ffffff",
			"text":       "#757575",
		},
	}

	aa := Validate(doc, LevelAA)
	aaa := Validate(doc, LevelAAA)
	if aa.PassedChecks != 1 {
		t.Errorf("AA passed checks = %d, want 1", aa.PassedChecks)
	}
	if aaa.PassedChecks != 0 {
		t.Errorf("AAA passed checks = %d, want 0", aaa.PassedChecks)
	}
}

func TestValidateDistinguishabilityWarning(t *testing.T) {
	t.Parallel()

	doc := theme.Document{
		"colors": map[string]any{
			"background": "#ffffff",
			"text":       "#000000",
			"error":      "#c04040",
			"warning":    "#c04141",
		},
	}

	report := Validate(doc, LevelAA)
	found := false
	for _, v := range report.Violations {
		if v.Type == "poor_color_distinction" && v.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a poor_color_distinction warning, got %v", report.Violations)
	}
}

func TestValidateSmallFontWarning(t *testing.T) {
	t.Parallel()

	doc := theme.Document{
		"colors": map[string]any{"background": "#ffffff", "text": "#000000"},
		"fonts": map[string]any{
			"default": map[string]any{"family": "Inter", "size": 6.0},
		},
	}

	report := Validate(doc, LevelAA)
	found := false
	for _, v := range report.Violations {
		if v.Type == "small_font_size" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a small_font_size warning, got %v", report.Violations)
	}
}

func TestValidateWarningsDoNotBreakCompliance(t *testing.T) {
	t.Parallel()

	// error and warning are nearly identical, which raises a
	// warning-severity distinguishability violation while every
	// contrast pair passes.
	doc := theme.Document{
		"colors": map[string]any{
			"background": "#ffffff",
			"text":       "#000000",
			"error":      "#e05252",
			"warning":    "#e25b53",
		},
	}

	report := Validate(doc, LevelAA)
	if !report.IsCompliant() {
		t.Errorf("warnings-only palette should be compliant, got violations %v", report.Violations)
	}
	if len(report.Violations) == 0 {
		t.Fatal("expected a distinguishability warning")
	}
	for _, v := range report.Violations {
		if v.Severity != SeverityWarning {
			t.Errorf("unexpected %s violation: %s", v.Severity, v.Description)
		}
	}
	if report.Score >= 100 {
		t.Errorf("Score = %v, want below 100 with a failed check", report.Score)
	}
}
