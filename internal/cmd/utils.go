package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/project"
	"github.com/dosanma1/packforge/pkg/webpack"
)

// projectFiles returns args as absolute paths, or the project file found
// from the current directory when args is empty.
func projectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path, err := project.Find(cwd)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	files := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if path, err = project.Find(path); err != nil {
				return nil, err
			}
		}
		files = append(files, path)
	}
	return files, nil
}

// buildProject loads the project file at path and builds its configuration.
// Relative paths in the file resolve against the file's directory.
func buildProject(path string, overrides config.Overrides) (*webpack.Config, error) {
	file, err := project.Load(path)
	if err != nil {
		return nil, err
	}

	overrides, err = absOverrides(overrides)
	if err != nil {
		return nil, err
	}
	opts, err := config.NewResolver(file, overrides).Resolve()
	if err != nil {
		return nil, err
	}

	builder := webpack.NewBuilder(filepath.Dir(path), webpack.DefaultPresets())
	cfg, err := builder.Build(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// absOverrides resolves override paths against the current directory, so
// they are not taken relative to the project file.
func absOverrides(o config.Overrides) (config.Overrides, error) {
	for _, p := range []*string{&o.OutDir, &o.Tsconfig} {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return o, fmt.Errorf("failed to resolve %s: %w", *p, err)
		}
		*p = abs
	}
	return o, nil
}

// addOverrideFlags registers the flags that take precedence over project
// file values.
func addOverrideFlags(cmd *cobra.Command, o *config.Overrides) {
	cmd.Flags().StringVar(&o.OutDir, "out-dir", "", "Override outDir from the project file (relative to the current directory)")
	cmd.Flags().StringVar(&o.Tsconfig, "tsconfig", "", "Override tsconfig from the project file (relative to the current directory)")
	cmd.Flags().StringVar(&o.Mode, "mode", "", "Override mode (development|production|none)")
	cmd.Flags().StringVar(&o.Devtool, "devtool", "", "Override devtool")
	cmd.Flags().StringArrayVarP(&o.Env, "env", "e", nil, "Set an environment variable (KEY=VALUE, repeatable)")
	cmd.Flags().BoolVar(&o.NoTypeCheck, "no-type-check", false, "Do not attach the fork type checker")
}

// relPath shortens path for display.
func relPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil {
		return rel
	}
	return path
}
