package webpack

// PluginRef identifies a plugin constructor exported by a package.
type PluginRef struct {
	// Package is the module the constructor is required from.
	Package string

	// Constructor is the identifier used with new.
	Constructor string

	// Named reports whether Constructor is a named export of Package rather
	// than its default export.
	Named bool
}

// Presets are the fixed values every generated configuration shares. They are
// passed to the builder explicitly instead of living in package state.
type Presets struct {
	// Bootstrap modules precede every entry, in order.
	Bootstrap []string

	// Extensions are the resolvable source extensions.
	Extensions []string

	RawLoader   string
	BabelLoader string
	BabelPreset string
	TSLoader    string
	TSPattern   string

	// External is matched by the TypeScript rule exclusion and the circular
	// dependency plugin.
	External string

	Environment        PluginRef
	CircularDependency PluginRef
	ForkTypeChecker    PluginRef

	// FailOnCycle makes the circular dependency plugin fail the build instead
	// of warning.
	FailOnCycle bool
}

// DefaultPresets returns the presets used by BuildConfig.
func DefaultPresets() Presets {
	return Presets{
		Bootstrap:   []string{"babel-polyfill", "raf/polyfill"},
		Extensions:  []string{".ts", ".tsx", ".js"},
		RawLoader:   "raw-loader",
		BabelLoader: "babel-loader",
		BabelPreset: "@babel/preset-env",
		TSLoader:    "ts-loader",
		TSPattern:   `\.tsx?$`,
		External:    "node_modules",
		Environment: PluginRef{
			Package:     "webpack",
			Constructor: "EnvironmentPlugin",
			Named:       true,
		},
		CircularDependency: PluginRef{
			Package:     "circular-dependency-plugin",
			Constructor: "CircularDependencyPlugin",
		},
		ForkTypeChecker: PluginRef{
			Package:     "fork-ts-checker-webpack-plugin",
			Constructor: "ForkTsCheckerWebpackPlugin",
		},
		FailOnCycle: true,
	}
}
