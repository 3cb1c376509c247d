package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/accessibility"
	"github.com/scottlz0310/theme-studio/internal/quality"
	"github.com/scottlz0310/theme-studio/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <theme-file>",
	Short: "Validate theme structure and WCAG accessibility",
	Long: `Validate a theme file against the structure schema and check its
color palette for WCAG contrast compliance.

Example:
  themestudio validate themes/dark.json --wcag-level AAA`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("wcag-level", "", "WCAG level: AA or AAA (default from config)")
	validateCmd.Flags().StringP("output", "o", "", "Write the validation result as JSON")
}

// validationResult is the JSON shape written by validate --output.
type validationResult struct {
	ThemeFile       string                `json:"theme_file"`
	StructureErrors []string              `json:"structure_errors"`
	Accessibility   *accessibility.Report `json:"accessibility_report"`
	Valid           bool                  `json:"overall_valid"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	themeFile := args[0]
	doc, err := deps.LoadTheme(themeFile)
	if err != nil {
		return fail(cmd, "テーマファイルを読み込めません: %v", err)
	}

	level, _ := cmd.Flags().GetString("wcag-level")
	if level == "" {
		level = deps.Config.Accessibility.WCAGLevel
	}

	structureErrs := validate.Structure(doc)
	wcag := accessibility.Validate(doc, level)

	fmt.Fprintf(out, "📊 テーマ検証: %s\n", themeFile)
	if len(structureErrs) == 0 {
		fmt.Fprintln(out, "  ✅ 構造チェック合格")
	} else {
		fmt.Fprintf(out, "  ❌ 構造エラー %d件:\n", len(structureErrs))
		for _, e := range structureErrs {
			fmt.Fprintf(out, "    - %s\n", e)
		}
	}

	fmt.Fprintf(out, "  WCAG %s スコア: %.1f (%d/%d)\n",
		wcag.Level, wcag.Score, wcag.PassedChecks, wcag.TotalChecks)
	for _, v := range wcag.Violations {
		fmt.Fprintf(out, "    [%s] %s\n", v.Severity, v.Description)
	}

	result := validationResult{
		ThemeFile:       themeFile,
		StructureErrors: structureErrs,
		Accessibility:   wcag,
		Valid:           len(structureErrs) == 0 && wcag.IsCompliant(),
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := quality.WriteJSON(result, output); err != nil {
			return fail(cmd, "結果を書き込めません: %v", err)
		}
		fmt.Fprintf(out, "✅ 結果を保存しました: %s\n", output)
	}

	if !result.Valid {
		return fail(cmd, "検証失敗")
	}

	fmt.Fprintln(out, "✅ 検証合格")
	return nil
}
