package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dosanma1/packforge/pkg/webpack"
)

// Format selects the output rendition.
type Format string

const (
	// FormatJS is a CommonJS webpack.config.js module.
	FormatJS Format = "js"
	// FormatJSON is the configuration object as JSON, with patterns as
	// source strings.
	FormatJSON Format = "json"
)

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJS, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be js or json)", s)
	}
}

// FileName returns the conventional output file name for f.
func (f Format) FileName() string {
	if f == FormatJSON {
		return "webpack.config.json"
	}
	return "webpack.config.js"
}

// Renderer renders configurations.
type Renderer struct {
	engine *Engine
}

// NewRenderer creates a renderer backed by the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{engine: NewEngine()}
}

// Render renders cfg in format f. source, when set, is noted in the JS
// header.
func (r *Renderer) Render(cfg *webpack.Config, f Format, source string) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatJS:
		out, err := r.engine.RenderTemplate("webpack.config.js.tmpl", struct {
			Source   string
			Requires []string
			Config   webpack.Object
		}{
			Source:   source,
			Requires: requires(cfg.Plugins),
			Config:   cfg.Object(),
		})
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// requires returns one require statement per plugin package, in first-use
// order. Named exports of the same package share a destructuring statement.
func requires(plugins []webpack.Plugin) []string {
	type pkg struct {
		defaults []string
		named    []string
	}
	var order []string
	pkgs := make(map[string]*pkg)
	seen := make(map[webpack.PluginRef]bool)

	for _, p := range plugins {
		if seen[p.PluginRef] {
			continue
		}
		seen[p.PluginRef] = true

		entry, ok := pkgs[p.Package]
		if !ok {
			entry = &pkg{}
			pkgs[p.Package] = entry
			order = append(order, p.Package)
		}
		if p.Named {
			entry.named = append(entry.named, p.Constructor)
		} else {
			entry.defaults = append(entry.defaults, p.Constructor)
		}
	}

	var lines []string
	for _, name := range order {
		entry := pkgs[name]
		if len(entry.named) > 0 {
			lines = append(lines, fmt.Sprintf("const { %s } = require(%s);", strings.Join(entry.named, ", "), jsString(name)))
		}
		for _, c := range entry.defaults {
			lines = append(lines, fmt.Sprintf("const %s = require(%s);", c, jsString(name)))
		}
	}
	return lines
}
