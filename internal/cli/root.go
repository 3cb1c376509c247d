package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottlz0310/theme-studio/pkg/version"
)

// errCommandFailed marks errors whose message has already been printed
// by the command handler. Execute skips reprinting them.
var errCommandFailed = errors.New("command failed")

var rootCmd = &cobra.Command{
	Use:   "themestudio",
	Short: "Theme Studio: quality gates for Qt theme files",
	Long: `Theme Studio is a quality toolkit for JSON theme files.

It scores themes, validates their structure and WCAG accessibility,
generates CI quality reports, exports stylesheets, and runs an
automated test suite against a theme file.`,
	Version:       version.GetVersion(),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		_ = cmd.Help()
		return errCommandFailed
	},
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errCommandFailed) {
		// Cobra-level errors (unknown command, bad arity, bad flags)
		// are not printed by handlers; surface them here.
		fmt.Fprintf(rootCmd.ErrOrStderr(), "❌ %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("theme-studio %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled terminal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
}

// fail prints a ❌ line on the command's stderr and returns a marked
// error so Execute maps it to exit status 1 without reprinting.
func fail(cmd *cobra.Command, format string, args ...any) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "❌ "+format+"\n", args...)
	return errCommandFailed
}
