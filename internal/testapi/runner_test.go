package testapi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottlz0310/theme-studio/internal/theme"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const healthyTheme = `{
	"name": "Nord",
	"version": "1.0.0",
	"colors": {"background": "#2e3440", "text": "#d8dee9"},
	"fonts": {"default": {"family": "Inter", "size": 12}}
}`

func TestRunHealthyTheme(t *testing.T) {
	t.Parallel()

	result, err := NewRunner().Run(writeTheme(t, healthyTheme))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !result.Success {
		t.Errorf("suite failed: %+v", result.Results)
	}
	if result.TestsRun != 7 {
		t.Errorf("TestsRun = %d, want 7", result.TestsRun)
	}
	if result.TestsPassed != 7 {
		t.Errorf("TestsPassed = %d, want 7", result.TestsPassed)
	}
	if result.SuccessRate != 100.0 {
		t.Errorf("SuccessRate = %v, want 100", result.SuccessRate)
	}
}

func TestRunMissingFileIsFatal(t *testing.T) {
	t.Parallel()

	_, err := NewRunner().Run(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, theme.ErrFileNotFound) {
		t.Fatalf("Run() error = %v, want ErrFileNotFound", err)
	}
}

func TestRunMalformedFileIsFatal(t *testing.T) {
	t.Parallel()

	_, err := NewRunner().Run(writeTheme(t, `{"name":`))
	if !errors.Is(err, theme.ErrInvalidJSON) {
		t.Fatalf("Run() error = %v, want ErrInvalidJSON", err)
	}
}

func TestRunCollaboratorFailureIsSkip(t *testing.T) {
	t.Parallel()

	runner := NewRunner(WithGenerator(func() (StylesheetGenerator, error) {
		return nil, errors.New("native renderer not installed")
	}))

	result, err := runner.Run(writeTheme(t, healthyTheme))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("collaborator construction failure must not fail the suite")
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}

	var found bool
	for _, step := range result.Results {
		if step.Name == "stylesheet_generation" {
			found = true
			if step.Outcome.Status != StatusSkipped {
				t.Errorf("stylesheet_generation status = %v, want skipped", step.Outcome.Status)
			}
			if !strings.Contains(step.Outcome.Reason, "not installed") {
				t.Errorf("skip reason should carry the cause, got %q", step.Outcome.Reason)
			}
		}
	}
	if !found {
		t.Fatal("stylesheet_generation step missing from results")
	}
}

func TestRunDegenerateThemeFailsSteps(t *testing.T) {
	t.Parallel()

	result, err := NewRunner().Run(writeTheme(t, `{}`))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if result.Success {
		t.Error("suite succeeded on an empty theme")
	}

	failures := map[string]bool{}
	for _, step := range result.Results {
		if step.Outcome.Status == StatusFailed {
			failures[step.Name] = true
		}
	}
	for _, want := range []string{"basic_structure", "color_data", "font_data"} {
		if !failures[want] {
			t.Errorf("step %q should fail for an empty theme, results: %+v", want, result.Results)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusPassed, "passed"},
		{StatusSkipped, "skipped"},
		{StatusFailed, "failed"},
		{Status(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestWriteResults(t *testing.T) {
	t.Parallel()

	result, err := NewRunner().Run(writeTheme(t, healthyTheme))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteResults(result, path); err != nil {
		t.Fatalf("WriteResults() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"status": "passed"`) {
		t.Errorf("results file missing textual status: %s", data)
	}
}
