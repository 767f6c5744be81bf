// Package project loads and saves packforge project files.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dosanma1/packforge/pkg/webpack"
	"github.com/dosanma1/packforge/pkg/xos"
)

// FileNames are the project file names Find looks for, in order.
var FileNames = []string{"packforge.yaml", "packforge.yml", "packforge.json"}

// DefaultFileName is the file name init writes.
const DefaultFileName = "packforge.yaml"

// ErrNotFound is returned by Find when no project file exists.
var ErrNotFound = errors.New("project file not found")

// File is the contents of a project file. Relative paths are relative to the
// directory holding the file.
type File struct {
	Input             Input             `yaml:"input,omitempty"`
	OutDir            string            `yaml:"outDir,omitempty"`
	RawFileExtensions []string          `yaml:"rawFileExtensions,omitempty,flow"`
	Tsconfig          string            `yaml:"tsconfig,omitempty"`
	Env               map[string]string `yaml:"env,omitempty"`
	TypeCheck         *bool             `yaml:"typeCheck,omitempty"`
	Mode              string            `yaml:"mode,omitempty"`
	Devtool           string            `yaml:"devtool,omitempty"`
}

// NewDefaultFile returns the project written by init.
func NewDefaultFile() *File {
	return &File{
		Input:             Input{Path: "src/index.ts"},
		OutDir:            webpack.DefaultOutDir,
		RawFileExtensions: []string{"html", "txt"},
		Tsconfig:          "tsconfig.json",
		Env:               map[string]string{"NODE_ENV": "development"},
		Mode:              "development",
	}
}

// Load reads, validates and parses the project file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	return Parse(filepath.Base(path), data)
}

// Parse validates and parses project file contents. name is used in errors.
func Parse(name string, data []byte) (*File, error) {
	if err := validateSchema(name, data); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &f, nil
}

// Validate performs the checks the schema cannot express.
func (f *File) Validate() error {
	if f.Input.Path != "" && len(f.Input.Entries) > 0 {
		return fmt.Errorf("input: cannot be both a path and a mapping")
	}
	seen := make(map[string]bool, len(f.Input.Entries))
	for _, e := range f.Input.Entries {
		if e.Name == "" {
			return fmt.Errorf("input: entry name is required")
		}
		if e.Path == "" {
			return fmt.Errorf("input.%s: path is required", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("input: duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
	}
	switch f.Mode {
	case "", "development", "production", "none":
	default:
		return fmt.Errorf("mode: must be development, production or none, got %q", f.Mode)
	}
	return nil
}

// BuildOptions converts the file into generator options.
func (f *File) BuildOptions() *webpack.BuildOptions {
	return &webpack.BuildOptions{
		Input:             f.Input.webpackInput(),
		OutDir:            f.OutDir,
		RawFileExtensions: f.RawFileExtensions,
		Tsconfig:          f.Tsconfig,
		Env:               f.Env,
		TypeCheck:         f.TypeCheck,
		Mode:              f.Mode,
		Devtool:           f.Devtool,
	}
}

// Save writes the file as YAML, keeping a backup of any previous contents.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal project file: %w", err)
	}
	if _, err := xos.WriteFileWithBackup(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Find returns the first project file in dir or any parent directory.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: none of %v in current directory or any parent directory", ErrNotFound, FileNames)
}
