package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/ui"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "packforge",
	Short: "packforge - webpack configuration for TypeScript projects",
	Long: `packforge generates a complete webpack configuration from a small project file.

It resolves entry points, derives the "^" source alias, wires the raw-text and
TypeScript loaders, and attaches the environment, circular dependency and
type checker plugins.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColor()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Subcommands register themselves in their own files via init().
}

// printer returns the status printer for cmd.
func printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose)
}
