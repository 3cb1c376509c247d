package config

// Validate checks a Config for invalid values.
// It returns *ValidationErrors (matching ErrInvalidConfig via errors.Is)
// when anything is out of range, nil otherwise.
func Validate(cfg *Config) error {
	ve := &ValidationErrors{}

	if cfg.Quality.ScoreThreshold < 0 || cfg.Quality.ScoreThreshold > 100 {
		ve.add("quality.score_threshold", "must be within [0, 100]", cfg.Quality.ScoreThreshold, ErrInvalidThreshold)
	}
	if cfg.Report.TestSuccessThreshold < 0 || cfg.Report.TestSuccessThreshold > 100 {
		ve.add("report.test_success_threshold", "must be within [0, 100]", cfg.Report.TestSuccessThreshold, ErrInvalidThreshold)
	}
	if level := cfg.Accessibility.WCAGLevel; level != "AA" && level != "AAA" {
		ve.add("accessibility.wcag_level", "must be AA or AAA", level, ErrInvalidWCAGLevel)
	}
	if cfg.Report.OutputPath == "" {
		ve.add("report.output_path", "must not be empty", nil, ErrInvalidConfig)
	}
	if cfg.Test.Iterations < 1 {
		ve.add("test.iterations", "must be at least 1", cfg.Test.Iterations, ErrInvalidConfig)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
