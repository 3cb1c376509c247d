package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/quality"
	"github.com/scottlz0310/theme-studio/internal/ui"
)

var qualityCheckCmd = &cobra.Command{
	Use:   "quality-check <theme-file>",
	Short: "Score a theme file and run the quality checks",
	Long: `Run the quality checks against a theme file and print the result.

The exit status reflects whether the theme carries the minimum viable
fields (name and colors); the weighted score and per-check details are
informational.

Example:
  themestudio quality-check themes/dark.json --output report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQualityCheck,
}

func init() {
	rootCmd.AddCommand(qualityCheckCmd)

	qualityCheckCmd.Flags().StringP("output", "o", "", "Write the full check report as JSON")
	qualityCheckCmd.Flags().Float64P("threshold", "t", 0, "Score threshold for the pass/fail verdict line")
}

func runQualityCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	themeFile := args[0]
	doc, err := deps.LoadTheme(themeFile)
	if err != nil {
		return fail(cmd, "テーマファイルを読み込めません: %v", err)
	}

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold <= 0 {
		threshold = deps.Config.Quality.ScoreThreshold
	}

	name := doc.Name()
	if name == "" {
		name = themeBaseName(themeFile)
	}

	checker := deps.NewChecker(deps.Config.Accessibility.WCAGLevel)
	report := checker.Run(name, doc)

	fmt.Fprintf(out, "📊 品質チェック: %s\n", name)
	if deps.Terminal.Interactive() {
		fmt.Fprintln(out, ui.RenderQualityReport(report, threshold))
	} else {
		printPlainReport(cmd, report, threshold)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := quality.WriteJSON(report, output); err != nil {
			return fail(cmd, "レポートを書き込めません: %v", err)
		}
		fmt.Fprintf(out, "✅ レポートを保存しました: %s\n", output)
	}

	// The gate itself is a presence check, independent of the score.
	if !doc.Has("name") || !doc.Has("colors") {
		return fail(cmd, "品質チェック失敗: name と colors は必須です")
	}

	fmt.Fprintln(out, "✅ 品質チェック合格")
	return nil
}

func printPlainReport(cmd *cobra.Command, report *quality.Report, threshold float64) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "総合スコア: %.1f / 100\n", report.OverallScore)
	for _, name := range quality.CheckOrder {
		check, ok := report.Checks[name]
		if !ok {
			continue
		}
		mark := "✅"
		if !check.Passed {
			mark = "❌"
		}
		fmt.Fprintf(out, "  %s %s: %.1f\n", mark, name, check.Score)
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintln(out, "推奨事項:")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
	if report.OverallScore >= threshold {
		fmt.Fprintf(out, "品質判定: 合格 (閾値 %.0f)\n", threshold)
	} else {
		fmt.Fprintf(out, "品質判定: 不合格 (閾値 %.0f)\n", threshold)
	}
}

// themeBaseName derives a display name from the file path when the
// document itself carries none.
func themeBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
