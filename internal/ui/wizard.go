package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/scottlz0310/theme-studio/internal/accessibility"
	"github.com/scottlz0310/theme-studio/internal/theme"
)

// ErrWizardCancelled is returned when the user aborts the wizard.
var ErrWizardCancelled = errors.New("ui: wizard cancelled")

// ScaffoldAnswers holds the wizard's collected values.
type ScaffoldAnswers struct {
	Name    string
	Base    string // "dark" or "light"
	Primary string
}

// basePalettes seed the scaffolded theme per base selection.
var basePalettes = map[string]map[string]string{
	"dark": {
		"background":     "#2e3440",
		"surface":        "#3b4252",
		"text":           "#eceff4",
		"text_secondary": "#d8dee9",
		"border":         "#4c566a",
	},
	"light": {
		"background":     "#ffffff",
		"surface":        "#f2f4f8",
		"text":           "#1a1c23",
		"text_secondary": "#4c566a",
		"border":         "#d8dee9",
	},
}

// RunScaffoldWizard collects theme scaffold answers interactively.
// Each prompt runs as its own form, matching the one-group-per-form
// pattern that sidesteps huh's multi-group viewport issues.
func RunScaffoldWizard(defaults ScaffoldAnswers) (*ScaffoldAnswers, error) {
	answers := defaults

	groups := []*huh.Group{
		huh.NewGroup(huh.NewInput().
			Title("Theme name").
			Description("Shown in editors and exported stylesheet headers.").
			Validate(func(s string) error {
				if s == "" {
					return errors.New("name is required")
				}
				return nil
			}).
			Value(&answers.Name)),
		huh.NewGroup(huh.NewSelect[string]().
			Title("Base palette").
			Options(
				huh.NewOption("Dark", "dark"),
				huh.NewOption("Light", "light"),
			).
			Value(&answers.Base)),
		huh.NewGroup(huh.NewInput().
			Title("Primary accent color").
			Description("Hex, rgb()/rgba(), or a CSS color keyword.").
			Validate(func(s string) error {
				if !accessibility.IsValidColor(s) {
					return fmt.Errorf("not a valid color value: %s", s)
				}
				return nil
			}).
			Value(&answers.Primary)),
	}

	for _, g := range groups {
		if err := huh.NewForm(g).WithAccessible(false).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrWizardCancelled
			}
			return nil, fmt.Errorf("wizard: %w", err)
		}
	}

	return &answers, nil
}

// ScaffoldDocument builds a starter theme document from wizard answers.
func ScaffoldDocument(answers ScaffoldAnswers) theme.Document {
	palette, ok := basePalettes[answers.Base]
	if !ok {
		palette = basePalettes["dark"]
	}

	colors := make(map[string]any, len(palette)+1)
	for name, value := range palette {
		colors[name] = value
	}
	// An empty answer omits the key entirely: a blank primary would
	// fail color-value validation of the scaffold's own output.
	if primary := accessibility.Normalize(answers.Primary); primary != "" {
		colors["primary"] = primary
	}

	return theme.Document{
		"name":    answers.Name,
		"version": "0.1.0",
		"colors":  colors,
		"fonts": map[string]any{
			"default": map[string]any{"family": "Noto Sans", "size": 11.0},
		},
		"sizes": map[string]any{
			"padding":       8.0,
			"border_radius": 4.0,
			"border_width":  1.0,
		},
		"metadata": map[string]any{
			"generator": "Theme Studio",
		},
	}
}
