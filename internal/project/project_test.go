package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dosanma1/packforge/pkg/webpack"
)

func TestParse(t *testing.T) {
	off := false
	for _, test := range []struct {
		name string
		in   string
		want *File
	}{
		{
			name: "empty",
			in:   "",
			want: &File{},
		},
		{
			name: "single",
			in: `
input: src/index.ts
outDir: dist
rawFileExtensions: [html, txt]
tsconfig: tsconfig.json
env:
  NODE_ENV: production
  PORT: 8080
typeCheck: false
mode: production
`,
			want: &File{
				Input:             Input{Path: "src/index.ts"},
				OutDir:            "dist",
				RawFileExtensions: []string{"html", "txt"},
				Tsconfig:          "tsconfig.json",
				Env:               map[string]string{"NODE_ENV": "production", "PORT": "8080"},
				TypeCheck:         &off,
				Mode:              "production",
			},
		},
		{
			name: "mapping keeps order",
			in: `
input:
  frontend: src/index.ts
  admin: src/admin.js
  billing: src/billing.ts
`,
			want: &File{
				Input: Input{Entries: []webpack.NamedPath{
					{Name: "frontend", Path: "src/index.ts"},
					{Name: "admin", Path: "src/admin.js"},
					{Name: "billing", Path: "src/billing.ts"},
				}},
			},
		},
		{
			name: "json",
			in:   `{"input": {"main": "src/main.ts"}, "outDir": "build"}`,
			want: &File{
				Input:  Input{Entries: []webpack.NamedPath{{Name: "main", Path: "src/main.ts"}}},
				OutDir: "build",
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse("packforge.yaml", []byte(test.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSchemaErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		in    string
		field string
	}{
		{"unknown key", "inptu: src/index.ts\n", "(root)"},
		{"bad mode", "mode: fast\n", "mode"},
		{"bad extension", "rawFileExtensions: ['a b']\n", "rawFileExtensions.0"},
		{"empty entry path", "input:\n  main: ''\n", "input"},
		{"bad env name", "env:\n  'A-B': x\n", "env"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse("packforge.yaml", []byte(test.in))
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Parse error = %v, want *SchemaError", err)
			}
			found := false
			for _, p := range schemaErr.Problems {
				if strings.HasPrefix(p.Field, test.field) {
					found = true
				}
			}
			if !found {
				t.Errorf("no problem reported for %s in %+v", test.field, schemaErr.Problems)
			}
		})
	}
}

func TestParseDuplicateKey(t *testing.T) {
	_, err := Parse("packforge.yaml", []byte("input:\n  main: src/a.ts\n  main: src/b.ts\n"))
	if err == nil {
		t.Fatal("Parse succeeded with a duplicate entry name")
	}
}

func TestBuildOptions(t *testing.T) {
	f := &File{
		Input: Input{Entries: []webpack.NamedPath{
			{Name: "frontend", Path: "src/index.ts"},
			{Name: "admin", Path: "src/admin.ts"},
		}},
		OutDir: "dist",
	}
	cfg, err := webpack.NewBuilder("/repo", webpack.DefaultPresets()).Build(f.BuildOptions())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range cfg.Entry.Points {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"frontend", "admin"}, names); diff != "" {
		t.Errorf("entry names mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output.Path != "/repo/dist" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}

	single := (&File{Input: Input{Path: "src/index.ts"}}).BuildOptions()
	if !single.Input.IsSingle() {
		t.Error("path input did not convert to a single input")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	f := NewDefaultFile()
	f.Input = Input{Entries: []webpack.NamedPath{
		{Name: "zeta", Path: "src/z.ts"},
		{Name: "alpha", Path: "src/a.ts"},
	}}
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("Load after Save mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Find(nested); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find with no project file = %v, want ErrNotFound", err)
	}

	want := filepath.Join(root, "a", "packforge.json")
	if err := os.WriteFile(want, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}
