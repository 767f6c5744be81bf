package webpack

import "maps"

const (
	// DefaultOutDir is the output directory used when BuildOptions.OutDir is empty.
	DefaultOutDir = "dist"

	// DefaultSourceDir is the alias target when no entries are configured.
	DefaultSourceDir = "src"
)

// BuildOptions describes a project. Every field is optional.
type BuildOptions struct {
	// Input is a single entry path or an ordered set of named entry paths,
	// relative to the working directory.
	Input Input

	// OutDir is the output directory relative to the working directory.
	OutDir string

	// RawFileExtensions lists extensions (without leading dot) whose files are
	// imported as raw text.
	RawFileExtensions []string

	// Tsconfig is the path of the TypeScript project file. When empty the
	// TypeScript loader gets no options and no type checker is attached.
	Tsconfig string

	// Env is injected verbatim through the environment plugin.
	Env map[string]string

	// TypeCheck enables the out-of-band type checker when Tsconfig is set.
	// Nil means true.
	TypeCheck *bool

	// Mode and Devtool are copied to the configuration when non-empty.
	Mode    string
	Devtool string
}

// options is BuildOptions with defaults applied.
type options struct {
	input     Input
	outDir    string
	rawExts   []string
	tsconfig  string
	env       map[string]string
	typeCheck bool
	mode      string
	devtool   string
}

// normalize never fails and never mutates opts.
func normalize(opts *BuildOptions) options {
	o := options{
		outDir:    DefaultOutDir,
		env:       map[string]string{},
		typeCheck: true,
	}
	if opts == nil {
		return o
	}

	o.input = opts.Input.clone()
	if o.input.single && o.input.path == "" {
		// An empty single path names no module.
		o.input = Input{}
	}
	if opts.OutDir != "" {
		o.outDir = opts.OutDir
	}
	o.rawExts = append([]string(nil), opts.RawFileExtensions...)
	o.tsconfig = opts.Tsconfig
	if opts.Env != nil {
		o.env = maps.Clone(opts.Env)
	}
	if opts.TypeCheck != nil {
		o.typeCheck = *opts.TypeCheck
	}
	o.mode = opts.Mode
	o.devtool = opts.Devtool
	return o
}
