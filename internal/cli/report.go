package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/quality"
)

var ciReportCmd = &cobra.Command{
	Use:   "ci-report <theme-file>",
	Short: "Generate a CI quality report for a theme file",
	Long: `Generate a machine-readable quality report for CI pipelines.

The report is written as indented JSON. The exit status reflects
whether the report was produced, not the verdict it contains: a FAIL
report that was written successfully still exits 0.

Example:
  themestudio ci-report themes/dark.json --output ci_report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCIReport,
}

func init() {
	rootCmd.AddCommand(ciReportCmd)

	ciReportCmd.Flags().StringP("output", "o", "", "Report output path (default from config)")
}

func runCIReport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	themeFile := args[0]
	doc, err := deps.LoadTheme(themeFile)
	if err != nil {
		return fail(cmd, "テーマファイルを読み込めません: %v", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = deps.Config.Report.OutputPath
	}

	report := deps.Builder.Build(themeFile, doc)

	fmt.Fprintln(out, "📊 CI品質レポート")
	fmt.Fprintf(out, "  判定: %s\n", report.OverallStatus)
	fmt.Fprintf(out, "  品質スコア: %.1f\n", report.QualityScore)
	fmt.Fprintf(out, "  テスト成功率: %.1f%%\n", report.TestSuccessRate)
	for _, rec := range report.Recommendations {
		fmt.Fprintf(out, "  - %s\n", rec)
	}

	if err := quality.WriteJSON(report, output); err != nil {
		return fail(cmd, "レポートを書き込めません: %v", err)
	}

	fmt.Fprintf(out, "✅ レポートを保存しました: %s\n", output)
	return nil
}
