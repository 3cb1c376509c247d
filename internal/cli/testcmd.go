package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/testapi"
	"github.com/scottlz0310/theme-studio/internal/ui"
)

var testCmd = &cobra.Command{
	Use:   "test <theme-file>",
	Short: "Run the automated test suite against a theme file",
	Long: `Run the automated test suite against a theme file.

A theme file that cannot be read or parsed fails the run. Steps whose
collaborators are unavailable are skipped and do not fail the suite.

Example:
  themestudio test themes/dark.json --iterations 10`,
	Args: cobra.ExactArgs(1),
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().IntP("iterations", "n", 0, "Performance test iterations (default from config)")
	testCmd.Flags().StringP("output", "o", "", "Write the suite result as JSON")
}

func runTest(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	iterations, _ := cmd.Flags().GetInt("iterations")
	if iterations <= 0 {
		iterations = deps.Config.Test.Iterations
	}

	spinner := ui.NewStepSpinner(deps.Terminal, out)
	runner := deps.NewRunner(
		testapi.WithIterations(iterations),
		testapi.WithObserver(func(step string) { spinner.Step(step) }),
	)

	themeFile := args[0]
	fmt.Fprintf(out, "📊 テストスイート実行: %s\n", themeFile)

	result, err := runner.Run(themeFile)
	spinner.Stop()
	if err != nil {
		return fail(cmd, "テスト実行に失敗しました: %v", err)
	}

	for _, step := range result.Results {
		switch step.Outcome.Status {
		case testapi.StatusPassed:
			fmt.Fprintf(out, "  ✅ %s\n", step.Name)
		case testapi.StatusSkipped:
			fmt.Fprintf(out, "  ⏭ %s (%s)\n", step.Name, step.Outcome.Reason)
		default:
			fmt.Fprintf(out, "  ❌ %s (%s)\n", step.Name, step.Outcome.Reason)
		}
	}
	fmt.Fprintf(out, "実行: %d  成功: %d  スキップ: %d  成功率: %.1f%%\n",
		result.TestsRun, result.TestsPassed, result.Skipped, result.SuccessRate)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := testapi.WriteResults(result, output); err != nil {
			return fail(cmd, "結果を書き込めません: %v", err)
		}
		fmt.Fprintf(out, "✅ 結果を保存しました: %s\n", output)
	}

	if !result.Success {
		return fail(cmd, "テストスイート失敗")
	}

	fmt.Fprintln(out, "✅ テストスイート合格")
	return nil
}
