package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/export"
	"github.com/scottlz0310/theme-studio/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [output-file]",
	Short: "Create a new theme file",
	Long: `Create a starter theme file.

On an interactive terminal an input wizard asks for the theme name,
base palette, and primary color. In pipes and CI the flags and their
defaults are used directly.

Examples:
  themestudio init my-theme.json
  themestudio init --name "Nordic Dark" --base dark --primary "#5e81ac"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "My Theme", "Theme name")
	initCmd.Flags().String("base", "dark", "Base palette: dark or light")
	initCmd.Flags().String("primary", "", "Primary accent color (omitted from the theme when empty)")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	output := "theme.json"
	if len(args) == 1 {
		output = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(output); err == nil && !force {
		return fail(cmd, "ファイルが既に存在します: %s (--force で上書き)", output)
	}

	name, _ := cmd.Flags().GetString("name")
	base, _ := cmd.Flags().GetString("base")
	primary, _ := cmd.Flags().GetString("primary")
	answers := ui.ScaffoldAnswers{Name: name, Base: base, Primary: primary}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if deps.Terminal.Interactive() && !nonInteractive {
		result, err := ui.RunScaffoldWizard(answers)
		if err != nil {
			if errors.Is(err, ui.ErrWizardCancelled) {
				return fail(cmd, "キャンセルされました")
			}
			return fail(cmd, "ウィザードでエラーが発生しました: %v", err)
		}
		answers = *result
	}

	doc := ui.ScaffoldDocument(answers)
	data, err := export.Export(doc, export.FormatJSON)
	if err != nil {
		return fail(cmd, "テーマを生成できません: %v", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fail(cmd, "テーマファイルを書き込めません: %v", err)
	}

	fmt.Fprintln(out, renderCard(
		fmt.Sprintf("テーマを作成しました: %s", output),
		fmt.Sprintf("名前: %s", answers.Name),
		fmt.Sprintf("ベース: %s", answers.Base),
	))
	return nil
}
