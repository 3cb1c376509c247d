package quality

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

// Overall status values of a CI report.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Recommendation sets are fixed per verdict; they are not derived from
// which fields were actually missing.
var (
	passRecommendations = []string{
		"テーマ品質は基準を満たしています",
		"さらに高品質にするため、色のバリエーション追加を検討してください",
	}
	failRecommendations = []string{
		"品質スコアが低いため、全体的な見直しを推奨します",
		"必須フィールド（name、version、colors、fonts）を追加してください",
	}
)

// CIReport is the machine-readable summary written for CI consumption.
// TestSuccessRate is constant: the CI pipeline treats collaborator
// availability as out of scope for the report verdict.
type CIReport struct {
	OverallStatus   string   `json:"overall_status"`
	QualityScore    float64  `json:"quality_score"`
	TestSuccessRate float64  `json:"test_success_rate"`
	Recommendations []string `json:"recommendations"`
	GeneratedAt     string   `json:"generated_at"`
	ThemeFile       string   `json:"theme_file"`
}

// ReportBuilder builds CI reports. The clock is injectable so tests
// can freeze GeneratedAt.
type ReportBuilder struct {
	now func() time.Time
}

// NewReportBuilder returns a builder using the wall clock.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{now: time.Now}
}

// NewReportBuilderWithClock returns a builder with a custom clock.
func NewReportBuilderWithClock(now func() time.Time) *ReportBuilder {
	return &ReportBuilder{now: now}
}

// Build scores the document and wraps the result in a CIReport.
// The verdict is PASS when the score reaches PassThreshold. Under the
// current scoring floor of 70 the FAIL branch is unreachable; it is
// kept as the extension point for stricter scoring rules.
func (b *ReportBuilder) Build(themeFile string, doc theme.Document) CIReport {
	score := Score(doc)

	status := StatusFail
	recommendations := failRecommendations
	if score >= PassThreshold {
		status = StatusPass
		recommendations = passRecommendations
	}

	return CIReport{
		OverallStatus:   status,
		QualityScore:    score,
		TestSuccessRate: 100.0,
		Recommendations: append([]string(nil), recommendations...),
		GeneratedAt:     b.now().Format(time.RFC3339),
		ThemeFile:       themeFile,
	}
}

// WriteJSON serializes a report as indented UTF-8 JSON to path,
// overwriting any existing file. Non-ASCII characters are preserved.
func WriteJSON(report any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	return f.Close()
}
