package webpack

import "regexp"

// Plugin is an opaque plugin instance: a constructor reference and the single
// options argument passed to it.
type Plugin struct {
	PluginRef
	Options Object
}

// MarshalJSON describes the plugin by constructor and options.
func (p Plugin) MarshalJSON() ([]byte, error) {
	return Object{
		{Key: "plugin", Value: p.Package + "#" + p.Constructor},
		{Key: "options", Value: p.Options},
	}.MarshalJSON()
}

// wiring carries the values plugin factories read.
type wiring struct {
	presets  *Presets
	opts     *options
	workDir  string
	tsconfig string
}

// pluginRule pairs an inclusion predicate with the factory it guards.
type pluginRule struct {
	name    string
	include func(w *wiring) bool
	build   func(w *wiring) Plugin
}

// pluginRules lists every plugin in output order.
var pluginRules = []pluginRule{
	{
		name:    "environment",
		include: func(w *wiring) bool { return len(w.opts.env) > 0 },
		build: func(w *wiring) Plugin {
			return Plugin{PluginRef: w.presets.Environment, Options: stringObject(w.opts.env)}
		},
	},
	{
		name:    "circular-dependency",
		include: func(*wiring) bool { return true },
		build: func(w *wiring) Plugin {
			return Plugin{
				PluginRef: w.presets.CircularDependency,
				Options: Object{
					{Key: "exclude", Value: MustPattern(regexp.QuoteMeta(w.presets.External))},
					{Key: "failOnError", Value: w.presets.FailOnCycle},
					{Key: "allowAsyncCycles", Value: false},
					{Key: "cwd", Value: w.workDir},
				},
			}
		},
	},
	{
		name:    "fork-ts-checker",
		include: func(w *wiring) bool { return w.tsconfig != "" && w.opts.typeCheck },
		build: func(w *wiring) Plugin {
			return Plugin{
				PluginRef: w.presets.ForkTypeChecker,
				Options: Object{
					{Key: "typescript", Value: Object{{Key: "configFile", Value: w.tsconfig}}},
				},
			}
		},
	},
}

// wirePlugins evaluates rules once, keeping their order.
func wirePlugins(rules []pluginRule, w *wiring) []Plugin {
	var plugins []Plugin
	for _, r := range rules {
		if r.include(w) {
			plugins = append(plugins, r.build(w))
		}
	}
	return plugins
}
