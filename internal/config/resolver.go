// Package config resolves generator options with precedence handling.
package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/dosanma1/packforge/internal/project"
	"github.com/dosanma1/packforge/pkg/webpack"
)

// Overrides are values given on the command line. Empty fields do not
// override.
type Overrides struct {
	OutDir      string
	Tsconfig    string
	Mode        string
	Devtool     string
	Env         []string // KEY=VALUE
	NoTypeCheck bool
}

// Resolver handles configuration precedence: CLI flags > project file > generator defaults
type Resolver struct {
	file      *project.File
	overrides Overrides
}

// NewResolver creates a new configuration resolver.
func NewResolver(file *project.File, overrides Overrides) *Resolver {
	if file == nil {
		file = &project.File{}
	}
	return &Resolver{
		file:      file,
		overrides: overrides,
	}
}

// Resolve returns the build options for the project.
func (r *Resolver) Resolve() (*webpack.BuildOptions, error) {
	opts := r.file.BuildOptions()

	opts.OutDir = first(r.overrides.OutDir, opts.OutDir)
	opts.Tsconfig = first(r.overrides.Tsconfig, opts.Tsconfig)
	opts.Mode = first(r.overrides.Mode, opts.Mode)
	opts.Devtool = first(r.overrides.Devtool, opts.Devtool)

	switch opts.Mode {
	case "", "development", "production", "none":
	default:
		return nil, fmt.Errorf("invalid mode %q (must be development, production or none)", opts.Mode)
	}

	env, err := r.ResolveEnv()
	if err != nil {
		return nil, err
	}
	opts.Env = env

	if r.overrides.NoTypeCheck {
		off := false
		opts.TypeCheck = &off
	}
	return opts, nil
}

// ResolveEnv merges --env KEY=VALUE pairs over the project env.
// Precedence: later flag > earlier flag > project file
func (r *Resolver) ResolveEnv() (map[string]string, error) {
	env := maps.Clone(r.file.Env)
	if env == nil {
		env = make(map[string]string, len(r.overrides.Env))
	}
	for _, kv := range r.overrides.Env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env %q: want KEY=VALUE", kv)
		}
		env[key] = value
	}
	return env, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
