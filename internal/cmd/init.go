package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/project"
	"github.com/dosanma1/packforge/internal/ui"
)

var (
	initYes   bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a packforge.yaml project file",
	Long: `Create a packforge.yaml in the given directory (default: current directory).

Without --yes the values are asked for interactively.

Examples:
  packforge init
  packforge init --yes apps/web`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Use defaults without prompting")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing project file (a .bak copy is kept)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p := printer(cmd)

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, project.DefaultFileName)

	if _, err := os.Stat(path); err == nil && !initForce {
		if initYes {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		ok, err := ui.AskConfirm(fmt.Sprintf("%s exists. Overwrite", path), false)
		if err != nil {
			return err
		}
		if !ok {
			p.Warn("Left %s unchanged", path)
			return nil
		}
	}

	file := project.NewDefaultFile()
	if !initYes {
		p.Title("%s Configuring %s", ui.IconTool, path)
		if err := askProject(file); err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				p.Warn("Cancelled")
				return nil
			}
			return err
		}
	}

	if err := file.Validate(); err != nil {
		return err
	}
	if err := file.Save(path); err != nil {
		return err
	}

	p.Success("Created %s", path)
	p.Debug("Run 'packforge generate' in %s to write webpack.config.js", dir)
	return nil
}

// askProject fills file from interactive prompts, using its values as
// defaults.
func askProject(file *project.File) error {
	nonEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("value is required")
		}
		return nil
	}

	input, err := ui.AskText("Entry module", file.Input.Path, nonEmpty)
	if err != nil {
		return err
	}
	file.Input = project.Input{Path: input}

	if file.OutDir, err = ui.AskText("Output directory", file.OutDir, nonEmpty); err != nil {
		return err
	}

	if file.Tsconfig, err = ui.AskText("tsconfig path (empty to skip type checking)", file.Tsconfig, nil); err != nil {
		return err
	}

	exts, err := ui.AskText("Raw-text extensions (comma separated)", strings.Join(file.RawFileExtensions, ","), nil)
	if err != nil {
		return err
	}
	file.RawFileExtensions = splitList(exts)

	_, mode, err := ui.AskSelect("Mode", []string{"development", "production", "none"})
	if err != nil {
		return err
	}
	file.Mode = mode
	file.Env = map[string]string{"NODE_ENV": mode}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
