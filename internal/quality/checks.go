package quality

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/scottlz0310/theme-studio/internal/accessibility"
	"github.com/scottlz0310/theme-studio/internal/theme"
	"github.com/scottlz0310/theme-studio/internal/validate"
)

// Check names of the comprehensive quality report, in display order.
const (
	CheckRequiredProperties = "required_properties"
	CheckStructure          = "structure"
	CheckColorQuality       = "color_quality"
	CheckAccessibility      = "accessibility"
)

// CheckOrder fixes the display and serialization order of checks.
var CheckOrder = []string{
	CheckRequiredProperties,
	CheckStructure,
	CheckColorQuality,
	CheckAccessibility,
}

// requiredProperties must be present with the right type.
var requiredProperties = []string{"name", "version", "colors", "fonts"}

// recommendedProperties improve quality but are not required.
var recommendedProperties = []string{"description", "author", "license", "sizes", "metadata"}

// Penalty weights of the required_properties check.
const (
	missingRequiredPenalty    = 25.0
	missingRecommendedPenalty = 5.0
	structureErrorPenalty     = 10.0
)

// Overall score bands driving the derived recommendations.
const (
	reviewBand  = 70.0
	warningBand = 85.0
)

// accessibilityPassBand is the minimum WCAG score for the
// accessibility check to count as passed. Compliance itself only
// requires the absence of error-severity violations; this stricter
// band applies to the comprehensive report alone.
const accessibilityPassBand = 80.0

// CheckResult is the outcome of a single named quality check.
type CheckResult struct {
	Passed  bool    `json:"passed"`
	Score   float64 `json:"score"`
	Details string  `json:"details"`
}

// Report is the comprehensive quality report produced by quality-check.
// OverallScore is the mean of the individual check scores.
type Report struct {
	ThemeName       string                 `json:"theme_name"`
	OverallScore    float64                `json:"overall_score"`
	Checks          map[string]CheckResult `json:"quality_checks"`
	Recommendations []string               `json:"recommendations"`
	GeneratedAt     string                 `json:"generated_at"`
}

// Checker runs the comprehensive quality check pipeline.
type Checker struct {
	wcagLevel string
	now       func() time.Time
}

// NewChecker creates a Checker validating against the given WCAG level.
func NewChecker(wcagLevel string) *Checker {
	return &Checker{wcagLevel: wcagLevel, now: time.Now}
}

// NewCheckerWithClock creates a Checker with a custom clock.
func NewCheckerWithClock(wcagLevel string, now func() time.Time) *Checker {
	return &Checker{wcagLevel: wcagLevel, now: now}
}

// Run executes all quality checks against a theme document.
func (c *Checker) Run(themeName string, doc theme.Document) *Report {
	report := &Report{
		ThemeName:   themeName,
		Checks:      make(map[string]CheckResult, len(CheckOrder)),
		GeneratedAt: c.now().Format(time.RFC3339),
	}

	structureErrs := validate.Structure(doc)
	wcag := accessibility.Validate(doc, c.wcagLevel)

	report.Checks[CheckRequiredProperties] = checkRequiredProperties(doc)
	report.Checks[CheckStructure] = checkStructure(structureErrs)
	report.Checks[CheckColorQuality] = checkColorQuality(doc, wcag)
	report.Checks[CheckAccessibility] = CheckResult{
		Passed:  wcag.IsCompliant() && wcag.Score >= accessibilityPassBand,
		Score:   wcag.Score,
		Details: fmt.Sprintf("WCAG %s: %d/%d checks passed", wcag.Level, wcag.PassedChecks, wcag.TotalChecks),
	}

	var sum float64
	for _, result := range report.Checks {
		sum += result.Score
	}
	report.OverallScore = sum / float64(len(report.Checks))

	report.Recommendations = recommendations(report, structureErrs, wcag)
	return report
}

func checkRequiredProperties(doc theme.Document) CheckResult {
	var missingRequired, missingRecommended []string
	for _, prop := range requiredProperties {
		if !doc.Has(prop) {
			missingRequired = append(missingRequired, prop)
		}
	}
	for _, prop := range recommendedProperties {
		if !doc.Has(prop) {
			missingRecommended = append(missingRecommended, prop)
		}
	}

	score := 100.0
	if len(missingRequired) > 0 {
		score = max(0, 100.0-float64(len(missingRequired))*missingRequiredPenalty)
	}
	score = max(0, score-float64(len(missingRecommended))*missingRecommendedPenalty)

	var details []string
	if len(missingRequired) > 0 {
		details = append(details, "missing required: "+strings.Join(missingRequired, ", "))
	}
	if len(missingRecommended) > 0 {
		details = append(details, "missing recommended: "+strings.Join(missingRecommended, ", "))
	}
	if len(details) == 0 {
		details = append(details, "all required properties present")
	}

	return CheckResult{
		Passed:  len(missingRequired) == 0,
		Score:   score,
		Details: strings.Join(details, "; "),
	}
}

func checkStructure(errs []string) CheckResult {
	if len(errs) == 0 {
		return CheckResult{Passed: true, Score: 100.0, Details: "structure is valid"}
	}
	return CheckResult{
		Passed:  false,
		Score:   max(0, 100.0-float64(len(errs))*structureErrorPenalty),
		Details: strings.Join(errs, "; "),
	}
}

func checkColorQuality(doc theme.Document, wcag *accessibility.Report) CheckResult {
	colors := doc.Colors()
	if len(colors) == 0 {
		return CheckResult{Passed: false, Score: 0, Details: "no colors defined"}
	}

	var problems []string
	score := 100.0

	for _, name := range []string{"background", "text", "primary"} {
		if _, ok := colors[name]; !ok {
			problems = append(problems, fmt.Sprintf("missing essential color %q", name))
			score -= 20.0
		}
	}

	var invalid []string
	for name, value := range colors {
		if !accessibility.IsValidColor(value) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		problems = append(problems, "invalid color values: "+strings.Join(invalid, ", "))
		score -= float64(len(invalid)) * 10.0
	}

	if ratio, ok := wcag.ContrastRatios["text/background"]; ok && ratio < 4.5 {
		problems = append(problems, fmt.Sprintf("text/background contrast %.2f is below 4.5:1", ratio))
		score -= 20.0
	}

	if len(problems) == 0 {
		return CheckResult{Passed: true, Score: 100.0, Details: "color palette is healthy"}
	}
	return CheckResult{
		Passed:  false,
		Score:   max(0, score),
		Details: strings.Join(problems, "; "),
	}
}

// recommendations derives improvement advice from the failed checks and
// the overall score band.
func recommendations(report *Report, structureErrs []string, wcag *accessibility.Report) []string {
	var recs []string

	if len(structureErrs) > 0 {
		recs = append(recs, "テーマ構造エラーを修正してください")
		for _, e := range structureErrs {
			if strings.Contains(e, "required") {
				recs = append(recs, "必須フィールド（name、version、colors、fonts）を追加してください")
				break
			}
		}
	}

	if !wcag.IsCompliant() {
		recs = append(recs, "WCAG準拠のためにコントラスト比を改善してください")
		for _, v := range wcag.Violations {
			if v.Severity == accessibility.SeverityError {
				recs = append(recs, "重要なアクセシビリティ違反を優先的に修正してください")
				break
			}
		}
	}

	if color, ok := report.Checks[CheckColorQuality]; ok && !color.Passed {
		if strings.Contains(color.Details, "essential color") {
			recs = append(recs, "必須色（background、text、primary）を定義してください")
		}
		if strings.Contains(color.Details, "contrast") {
			recs = append(recs, "テキストと背景のコントラスト比を4.5:1以上にしてください")
		}
	}

	switch {
	case report.OverallScore < reviewBand:
		recs = append(recs, "品質スコアが低いため、全体的な見直しを推奨します")
	case report.OverallScore < warningBand:
		recs = append(recs, "品質向上のため、警告項目の修正を検討してください")
	}

	return recs
}
