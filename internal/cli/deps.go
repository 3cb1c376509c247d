// Package cli provides the Cobra command tree and dependency injection
// wiring for the themestudio CLI. This file defines the Dependencies
// struct (Composition Root) that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/scottlz0310/theme-studio/internal/config"
	"github.com/scottlz0310/theme-studio/internal/quality"
	"github.com/scottlz0310/theme-studio/internal/testapi"
	"github.com/scottlz0310/theme-studio/internal/theme"
	"github.com/scottlz0310/theme-studio/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	Terminal   *ui.Terminal
	Builder    *quality.ReportBuilder
	NewChecker func(wcagLevel string) *quality.Checker
	NewRunner  func(opts ...testapi.Option) *testapi.Runner
	LoadTheme  func(path string) (theme.Document, error)
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup.
func InitDependencies() {
	// Disable logging for CLI commands by using a no-op logger
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		// Invalid config files must not block quality gates; fall
		// back to defaults and keep the reason in the logger.
		logger.Warn("config load failed, using defaults", "error", err)
		cfg = config.NewDefaultConfig()
	}

	deps = &Dependencies{
		Config:     cfg,
		Terminal:   ui.NewTerminal(cfg.System.NoColor),
		Builder:    quality.NewReportBuilder(),
		NewChecker: quality.NewChecker,
		NewRunner:  testapi.NewRunner,
		LoadTheme:  theme.Load,
		Logger:     logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
