package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Quality.ScoreThreshold != 70.0 {
		t.Errorf("ScoreThreshold = %v, want 70.0", cfg.Quality.ScoreThreshold)
	}
	if cfg.Accessibility.WCAGLevel != "AA" {
		t.Errorf("WCAGLevel = %q, want AA", cfg.Accessibility.WCAGLevel)
	}
	if cfg.Report.OutputPath != "ci_report.json" {
		t.Errorf("OutputPath = %q, want ci_report.json", cfg.Report.OutputPath)
	}
	if cfg.Test.Iterations != 5 {
		t.Errorf("Iterations = %d, want 5", cfg.Test.Iterations)
	}
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "quality:\n  score_threshold: 85\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Quality.ScoreThreshold != 85.0 {
		t.Errorf("ScoreThreshold = %v, want 85.0", cfg.Quality.ScoreThreshold)
	}
	if cfg.Accessibility.WCAGLevel != "AA" {
		t.Errorf("WCAGLevel = %q, want backfilled AA", cfg.Accessibility.WCAGLevel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("quality: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("Load() error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "accessibility:\n  wcag_level: AAAA\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidWCAGLevel) {
		t.Fatalf("Load() error = %v, want ErrInvalidWCAGLevel", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatal("validation errors should match ErrInvalidConfig")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Quality:       QualityConfig{ScoreThreshold: 150},
		Accessibility: AccessibilityConfig{WCAGLevel: "B"},
		Report:        ReportConfig{OutputPath: "", TestSuccessThreshold: -1},
		Test:          TestConfig{Iterations: 0},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() accepted an invalid config")
	}

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(ve.Errors) != 5 {
		t.Errorf("collected %d errors, want 5: %v", len(ve.Errors), ve)
	}
}

func TestValidateDefaults(t *testing.T) {
	t.Parallel()

	if err := Validate(NewDefaultConfig()); err != nil {
		t.Errorf("Validate(defaults) = %v, want nil", err)
	}
}
