package webpack

import (
	"fmt"
	"os"
)

// Builder derives configurations against a fixed working directory.
type Builder struct {
	workDir string
	presets Presets
}

// NewBuilder returns a builder resolving relative paths against workDir.
func NewBuilder(workDir string, presets Presets) *Builder {
	return &Builder{workDir: workDir, presets: presets}
}

// BuildConfig derives a configuration from opts, resolving paths against the
// process working directory.
func BuildConfig(opts *BuildOptions) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewBuilder(wd, DefaultPresets()).Build(opts)
}

// Build derives a configuration from opts. The only error it returns is
// *AmbiguousAliasError.
func (b *Builder) Build(opts *BuildOptions) (*Config, error) {
	o := normalize(opts)

	entries := resolveEntries(b.workDir, o.input)
	alias, err := deriveAlias(b.workDir, entries)
	if err != nil {
		return nil, err
	}

	var tsconfig string
	if o.tsconfig != "" {
		tsconfig = absPath(b.workDir, o.tsconfig)
	}

	filename := namedFilename
	if o.input.IsSingle() {
		filename = singleFilename
	}

	return &Config{
		Mode:    o.mode,
		Devtool: o.devtool,
		Entry: Entry{
			Single: o.input.IsSingle(),
			Points: entryPoints(b.presets.Bootstrap, entries),
		},
		Output: Output{
			Filename: filename,
			Path:     absPath(b.workDir, o.outDir),
		},
		Resolve: Resolve{
			Alias:      map[string]string{AliasPrefix: alias},
			Extensions: append([]string(nil), b.presets.Extensions...),
		},
		Module: Module{
			Rules: assembleRules(&b.presets, &o, tsconfig),
		},
		Plugins: wirePlugins(pluginRules, &wiring{
			presets:  &b.presets,
			opts:     &o,
			workDir:  b.workDir,
			tsconfig: tsconfig,
		}),
	}, nil
}
