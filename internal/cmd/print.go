package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/render"
)

var (
	printFormat    string
	printOverrides config.Overrides
)

var printCmd = &cobra.Command{
	Use:   "print [project-file]",
	Short: "Print the generated webpack configuration",
	Long: `Build the configuration for one project file and print it to stdout
without writing anything.

Examples:
  packforge print
  packforge print --format json | jq .resolve.alias`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&printFormat, "format", "f", string(render.FormatJS), "Output format (js|json)")
	addOverrideFlags(printCmd, &printOverrides)
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(printFormat)
	if err != nil {
		return err
	}

	files, err := projectFiles(args)
	if err != nil {
		return err
	}

	cfg, err := buildProject(files[0], printOverrides)
	if err != nil {
		return err
	}

	data, err := render.NewRenderer().Render(cfg, format, filepath.Base(files[0]))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
