package webpack

import "encoding/json"

const (
	singleFilename = "bundle.js"
	namedFilename  = "[name]-bundle.js"
)

// EntryPoint is the module list for one bundle. Name is empty for a single
// entry.
type EntryPoint struct {
	Name    string
	Modules []string
}

// Entry is the bundler entry: a module list when Single, otherwise a mapping
// of name to module list in input order.
type Entry struct {
	Single bool
	Points []EntryPoint
}

func (e Entry) value() any {
	if e.Single {
		if len(e.Points) == 0 {
			return []string{}
		}
		return e.Points[0].Modules
	}
	obj := make(Object, 0, len(e.Points))
	for _, p := range e.Points {
		obj = append(obj, Field{Key: p.Name, Value: p.Modules})
	}
	return obj
}

// Output is where and how bundles are emitted.
type Output struct {
	Filename string
	Path     string
}

// Resolve configures import resolution.
type Resolve struct {
	// Alias maps AliasPrefix to the shared source directory.
	Alias      map[string]string
	Extensions []string
}

// Module holds the ordered module rules.
type Module struct {
	Rules []Rule
}

// Config is a complete bundler configuration. All paths are absolute.
type Config struct {
	Mode    string
	Devtool string
	Entry   Entry
	Output  Output
	Resolve Resolve
	Module  Module
	Plugins []Plugin
}

// Object returns the configuration as an ordered object tree. Values are
// Object, []any, []string, string, bool, *Pattern or Plugin.
func (c *Config) Object() Object {
	var obj Object
	if c.Mode != "" {
		obj = append(obj, Field{Key: "mode", Value: c.Mode})
	}
	if c.Devtool != "" {
		obj = append(obj, Field{Key: "devtool", Value: c.Devtool})
	}

	rules := make([]any, 0, len(c.Module.Rules))
	for _, r := range c.Module.Rules {
		rules = append(rules, r.Object())
	}
	plugins := make([]any, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		plugins = append(plugins, p)
	}

	return append(obj,
		Field{Key: "entry", Value: c.Entry.value()},
		Field{Key: "output", Value: Object{
			{Key: "filename", Value: c.Output.Filename},
			{Key: "path", Value: c.Output.Path},
		}},
		Field{Key: "resolve", Value: Object{
			{Key: "alias", Value: stringObject(c.Resolve.Alias)},
			{Key: "extensions", Value: c.Resolve.Extensions},
		}},
		Field{Key: "module", Value: Object{
			{Key: "rules", Value: rules},
		}},
		Field{Key: "plugins", Value: plugins},
	)
}

// MarshalJSON implements json.Marshaler.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Object())
}

// Plugin returns the first plugin built from ref.
func (c *Config) Plugin(ref PluginRef) (Plugin, bool) {
	for _, p := range c.Plugins {
		if p.PluginRef == ref {
			return p, true
		}
	}
	return Plugin{}, false
}
