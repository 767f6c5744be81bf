package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/render"
	"github.com/dosanma1/packforge/internal/ui"
	"github.com/dosanma1/packforge/pkg/xos"
)

type generateOptions struct {
	output    string
	format    string
	dryRun    bool
	overrides config.Overrides
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:     "generate [project-file...]",
	Aliases: []string{"g", "gen"},
	Short:   "Generate webpack configuration from project files",
	Long: `Generate a webpack configuration for each project file.

Without arguments the nearest packforge.yaml (or .yml/.json) in the current
directory or a parent is used. The configuration is written next to its
project file; paths inside it are absolute.

Examples:
  packforge generate
  packforge generate apps/web/packforge.yaml apps/admin
  packforge generate --format json -o webpack.json
  packforge generate --mode production -e NODE_ENV=production`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOpts.output, "output", "o", "", "Output file name (default webpack.config.js or webpack.config.json)")
	generateCmd.Flags().StringVarP(&genOpts.format, "format", "f", string(render.FormatJS), "Output format (js|json)")
	generateCmd.Flags().BoolVar(&genOpts.dryRun, "dry-run", false, "Build and render without writing files")
	addOverrideFlags(generateCmd, &genOpts.overrides)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := printer(cmd)

	files, err := projectFiles(args)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		p.Title("%s Generating %d project files", ui.IconPackage, len(files))
	}
	if len(files) > 1 && !verbose {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Generating"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
	}

	var failed int
	for _, file := range files {
		out, written, err := generateFile(p, file, genOpts)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			failed++
			p.Error("%s: %v", relPath(file), err)
			continue
		}
		switch {
		case genOpts.dryRun:
			p.Info("Would write %s", relPath(out))
		case !written:
			p.Info("%s is up to date", relPath(out))
		default:
			p.Success("Wrote %s", relPath(out))
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if failed > 0 {
		return fmt.Errorf("generation failed for %d of %d project files", failed, len(files))
	}
	return nil
}

// generateFile builds the project at path and writes the rendered config
// next to it, returning the output path and whether it was written. An
// existing config with other contents is kept as a .bak copy.
func generateFile(p *ui.Printer, path string, opts generateOptions) (string, bool, error) {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return "", false, err
	}

	p.Debug("Loading %s", path)
	cfg, err := buildProject(path, opts.overrides)
	if err != nil {
		return "", false, err
	}
	p.Debug("Alias %s -> %s", "^", cfg.Resolve.Alias["^"])
	p.Debug("%d entries, %d rules, %d plugins", len(cfg.Entry.Points), len(cfg.Module.Rules), len(cfg.Plugins))

	data, err := render.NewRenderer().Render(cfg, format, filepath.Base(path))
	if err != nil {
		return "", false, err
	}

	name := opts.output
	if name == "" {
		name = format.FileName()
	}
	out := filepath.Join(filepath.Dir(path), name)
	if filepath.IsAbs(name) {
		out = name
	}

	if opts.dryRun {
		return out, false, nil
	}
	written, err := xos.WriteFileWithBackup(out, data, 0o644)
	if err != nil {
		return "", false, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, written, nil
}
