package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <theme-file>",
	Short: "Export a theme file to another format",
	Long: `Export a theme file as JSON, QSS, CSS, or YAML.

When --output is omitted the result is written next to the theme file
with the format's extension.

Example:
  themestudio export themes/dark.json --format qss --output dark.qss`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", export.FormatJSON,
		fmt.Sprintf("Output format: %s", strings.Join(export.Formats, ", ")))
	exportCmd.Flags().StringP("output", "o", "", "Output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	if !export.IsSupported(format) {
		return fail(cmd, "未対応のフォーマットです: %s (対応: %s)", format, strings.Join(export.Formats, ", "))
	}

	themeFile := args[0]
	doc, err := deps.LoadTheme(themeFile)
	if err != nil {
		return fail(cmd, "テーマファイルを読み込めません: %v", err)
	}

	data, err := export.Export(doc, format)
	if err != nil {
		return fail(cmd, "エクスポートに失敗しました: %v", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		base := strings.TrimSuffix(themeFile, filepath.Ext(themeFile))
		output = base + "." + format
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fail(cmd, "出力ファイルを書き込めません: %v", err)
	}

	fmt.Fprintln(out, renderCard(
		fmt.Sprintf("エクスポート完了: %s", output),
		fmt.Sprintf("フォーマット: %s", format),
		fmt.Sprintf("サイズ: %d bytes", len(data)),
	))
	return nil
}
