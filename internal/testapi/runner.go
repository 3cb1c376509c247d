package testapi

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/scottlz0310/theme-studio/internal/accessibility"
	"github.com/scottlz0310/theme-studio/internal/export"
	"github.com/scottlz0310/theme-studio/internal/quality"
	"github.com/scottlz0310/theme-studio/internal/theme"
	"github.com/scottlz0310/theme-studio/internal/validate"
)

// DefaultIterations is the default performance test iteration count.
const DefaultIterations = 5

// Collaborator factories. The loader reads the theme file; the
// stylesheet generator renders it. Both come from components outside
// this package and may fail to construct in stripped-down CI
// environments, which the runner treats as a skip.
type (
	LoaderFunc    func(path string) (theme.Document, error)
	GeneratorFunc func() (StylesheetGenerator, error)
)

// StylesheetGenerator renders a theme document into a stylesheet.
type StylesheetGenerator interface {
	Generate(doc theme.Document, format string) ([]byte, error)
}

// exportGenerator adapts the export package to StylesheetGenerator.
type exportGenerator struct{}

func (exportGenerator) Generate(doc theme.Document, format string) ([]byte, error) {
	return export.Export(doc, format)
}

// NewStylesheetGenerator constructs the default stylesheet generator.
func NewStylesheetGenerator() (StylesheetGenerator, error) {
	return exportGenerator{}, nil
}

// StepResult is the recorded outcome of one suite step.
type StepResult struct {
	Name     string  `json:"test_name"`
	Outcome  Outcome `json:"outcome"`
	Duration float64 `json:"duration_seconds"`
}

// SuiteResult aggregates a full suite run.
type SuiteResult struct {
	ThemeFile   string       `json:"theme_file"`
	TestsRun    int          `json:"tests_run"`
	TestsPassed int          `json:"tests_passed"`
	Skipped     int          `json:"tests_skipped"`
	SuccessRate float64      `json:"success_rate"`
	Success     bool         `json:"success"`
	TotalTime   float64      `json:"total_time_seconds"`
	Results     []StepResult `json:"individual_results"`
	GeneratedAt string       `json:"generated_at"`
}

// Runner executes the automated test suite.
type Runner struct {
	load       LoaderFunc
	generator  GeneratorFunc
	iterations int
	observer   func(step string)
	now        func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLoader replaces the theme loader collaborator.
func WithLoader(load LoaderFunc) Option {
	return func(r *Runner) { r.load = load }
}

// WithGenerator replaces the stylesheet generator factory.
func WithGenerator(gen GeneratorFunc) Option {
	return func(r *Runner) { r.generator = gen }
}

// WithIterations sets the performance test iteration count.
func WithIterations(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.iterations = n
		}
	}
}

// WithObserver registers a callback invoked with each step name just
// before the step runs. Used to drive progress display.
func WithObserver(fn func(step string)) Option {
	return func(r *Runner) { r.observer = fn }
}

// WithClock replaces the wall clock (for deterministic results).
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a Runner with the default collaborators.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		load:       theme.Load,
		generator:  NewStylesheetGenerator,
		iterations: DefaultIterations,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the comprehensive suite against a theme file.
// A theme file that cannot be read or parsed is the only fatal error;
// collaborator failures surface as skipped steps in the result.
func (r *Runner) Run(themeFile string) (*SuiteResult, error) {
	started := r.now()

	doc, err := r.load(themeFile)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	result := &SuiteResult{
		ThemeFile:   themeFile,
		GeneratedAt: started.Format(time.RFC3339),
	}

	steps := []struct {
		name string
		run  func() Outcome
	}{
		{"theme_loading", func() Outcome { return Passed() }},
		{"basic_structure", func() Outcome { return r.structureStep(doc) }},
		{"color_data", func() Outcome { return r.colorStep(doc) }},
		{"font_data", func() Outcome { return fontStep(doc) }},
		{"stylesheet_generation", func() Outcome { return r.stylesheetStep(doc) }},
		{"json_serialization", func() Outcome { return roundTripStep(doc) }},
		{"performance", func() Outcome { return r.performanceStep(doc) }},
	}

	for _, step := range steps {
		if r.observer != nil {
			r.observer(step.name)
		}
		stepStart := time.Now()
		outcome := step.run()
		result.Results = append(result.Results, StepResult{
			Name:     step.name,
			Outcome:  outcome,
			Duration: time.Since(stepStart).Seconds(),
		})

		result.TestsRun++
		switch outcome.Status {
		case StatusPassed:
			result.TestsPassed++
		case StatusSkipped:
			result.Skipped++
		}
	}

	executed := result.TestsRun - result.Skipped
	if executed > 0 {
		result.SuccessRate = float64(result.TestsPassed) / float64(executed) * 100.0
	} else {
		result.SuccessRate = 100.0
	}
	result.Success = result.TestsPassed+result.Skipped == result.TestsRun
	result.TotalTime = time.Since(started).Seconds()

	return result, nil
}

func (r *Runner) structureStep(doc theme.Document) Outcome {
	if errs := validate.Structure(doc); len(errs) > 0 {
		return Failed(fmt.Sprintf("%d structure errors, first: %s", len(errs), errs[0]))
	}
	return Passed()
}

func (r *Runner) colorStep(doc theme.Document) Outcome {
	colors := doc.Colors()
	if len(colors) == 0 {
		return Failed("no color data")
	}
	for name, value := range colors {
		if !accessibility.IsValidColor(value) {
			return Failed(fmt.Sprintf("invalid color %s = %q", name, value))
		}
	}
	return Passed()
}

func fontStep(doc theme.Document) Outcome {
	fonts := doc.Fonts()
	if len(fonts) == 0 {
		return Failed("no font data")
	}
	if _, ok := fonts["default"]; !ok {
		return Failed(`missing "default" font`)
	}
	return Passed()
}

// stylesheetStep constructs the generator collaborator and renders the
// theme. Construction failure is a skip: the external component's
// runtime dependencies may be absent in CI.
func (r *Runner) stylesheetStep(doc theme.Document) Outcome {
	gen, err := r.generator()
	if err != nil {
		return Skipped(fmt.Sprintf("stylesheet generator unavailable: %v", err))
	}
	if _, err := gen.Generate(doc, export.FormatQSS); err != nil {
		return Failed(fmt.Sprintf("stylesheet generation: %v", err))
	}
	return Passed()
}

func roundTripStep(doc theme.Document) Outcome {
	data, err := json.Marshal(map[string]any(doc))
	if err != nil {
		return Failed(fmt.Sprintf("marshal: %v", err))
	}
	decoded, err := theme.Parse(data)
	if err != nil {
		return Failed(fmt.Sprintf("reparse: %v", err))
	}
	if !reflect.DeepEqual(map[string]any(doc), map[string]any(decoded)) {
		return Failed("document changed across a JSON round trip")
	}
	return Passed()
}

// performanceStep scores the document repeatedly and fails when an
// iteration exceeds the per-scoring budget. Scoring is arithmetic over
// field presence, so anything slower than the budget indicates a
// pathological document.
func (r *Runner) performanceStep(doc theme.Document) Outcome {
	const budget = 100 * time.Millisecond

	for i := 0; i < r.iterations; i++ {
		start := time.Now()
		quality.Score(doc)
		if elapsed := time.Since(start); elapsed > budget {
			return Failed(fmt.Sprintf("iteration %d took %s (budget %s)", i+1, elapsed, budget))
		}
	}
	return Passed()
}

// WriteResults serializes a suite result as indented JSON.
func WriteResults(result *SuiteResult, path string) error {
	return quality.WriteJSON(result, path)
}
