// Package config provides configuration for the Theme Studio CLI.
// It loads an optional YAML file, applies defaults for missing fields,
// and validates the result before any command runs.
package config

// Config is the root configuration aggregate.
type Config struct {
	Quality       QualityConfig       `yaml:"quality"`
	Accessibility AccessibilityConfig `yaml:"accessibility"`
	Report        ReportConfig        `yaml:"report"`
	Test          TestConfig          `yaml:"test"`
	System        SystemConfig        `yaml:"system"`
}

// QualityConfig holds quality scoring settings.
type QualityConfig struct {
	// ScoreThreshold is the PASS band for the heuristic quality score.
	ScoreThreshold float64 `yaml:"score_threshold"`
}

// AccessibilityConfig holds WCAG validation settings.
type AccessibilityConfig struct {
	// WCAGLevel is the target conformance level: "AA" or "AAA".
	WCAGLevel string `yaml:"wcag_level"`
}

// ReportConfig holds CI report settings.
type ReportConfig struct {
	// OutputPath is the default ci-report destination.
	OutputPath string `yaml:"output_path"`

	// TestSuccessThreshold is the minimum suite success rate.
	TestSuccessThreshold float64 `yaml:"test_success_threshold"`
}

// TestConfig holds automated test suite settings.
type TestConfig struct {
	// Iterations is the performance test repetition count.
	Iterations int `yaml:"iterations"`
}

// SystemConfig holds terminal and logging behavior.
type SystemConfig struct {
	NoColor  bool   `yaml:"no_color"`
	LogLevel string `yaml:"log_level"`
}

// NewDefaultConfig returns a Config with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Quality:       QualityConfig{ScoreThreshold: 70.0},
		Accessibility: AccessibilityConfig{WCAGLevel: "AA"},
		Report: ReportConfig{
			OutputPath:           "ci_report.json",
			TestSuccessThreshold: 80.0,
		},
		Test:   TestConfig{Iterations: 5},
		System: SystemConfig{LogLevel: "info"},
	}
}
