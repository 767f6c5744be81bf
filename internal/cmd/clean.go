package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/render"
	"github.com/dosanma1/packforge/internal/ui"
)

var (
	cleanOutput bool
	cleanYes    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [project-file...]",
	Short: "Remove generated configuration files",
	Long: `Remove the webpack.config.js / webpack.config.json files (and their .bak
backups) generated next to each project file.

Use --out to also remove each project's output directory. This asks for
confirmation unless --yes is given.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanOutput, "out", false, "Also remove the output directory")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	p := printer(cmd)

	files, err := projectFiles(args)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := cleanGenerated(p, filepath.Dir(file)); err != nil {
			return err
		}
		if !cleanOutput {
			continue
		}

		cfg, err := buildProject(file, config.Overrides{})
		if err != nil {
			return err
		}
		if err := cleanOutDir(p, filepath.Dir(file), cfg.Output.Path, cleanYes); err != nil {
			return err
		}
	}

	p.Success("Clean completed successfully")
	return nil
}

// cleanGenerated removes generated configs in dir.
func cleanGenerated(p *ui.Printer, dir string) error {
	for _, format := range []render.Format{render.FormatJS, render.FormatJSON} {
		for _, name := range []string{format.FileName(), format.FileName() + ".bak"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			p.Info("Removed %s", relPath(path))
		}
	}
	return nil
}

// cleanOutDir removes dir unless it holds the project itself.
func cleanOutDir(p *ui.Printer, projectDir, dir string, yes bool) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	if contains(dir, projectDir) {
		return fmt.Errorf("refusing to remove %s: it contains the project", dir)
	}

	if !yes {
		ok, err := ui.AskConfirm(fmt.Sprintf("Remove output directory %s", relPath(dir)), false)
		if err != nil {
			return err
		}
		if !ok {
			p.Warn("Skipped %s", relPath(dir))
			return nil
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	p.Info("Removed %s", relPath(dir))
	return nil
}

// contains reports whether path is dir or lies below it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
