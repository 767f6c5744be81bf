package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dosanma1/packforge/internal/config"
	"github.com/dosanma1/packforge/internal/ui"
)

func writeProject(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "packforge.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testPrinter() (*ui.Printer, *bytes.Buffer) {
	ui.DisableColor()
	var buf bytes.Buffer
	return ui.NewPrinter(&buf, &buf, false), &buf
}

func TestGenerateFile(t *testing.T) {
	path := writeProject(t, `
input:
  frontend: src/index.ts
  admin: src/admin.ts
outDir: dist
tsconfig: tsconfig.json
env:
  NODE_ENV: production
`)
	p, _ := testPrinter()

	out, written, err := generateFile(p, path, generateOptions{format: "js"})
	if err != nil {
		t.Fatal(err)
	}
	if !written {
		t.Error("generateFile reported no write for a new config")
	}
	if want := filepath.Join(filepath.Dir(path), "webpack.config.js"); out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(path)
	for _, want := range []string{
		"'" + filepath.Join(dir, "src", "index.ts") + "'",
		"filename: '[name]-bundle.js'",
		"path: '" + filepath.Join(dir, "dist") + "'",
		"new EnvironmentPlugin(",
		"new ForkTsCheckerWebpackPlugin(",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("generated config missing %q", want)
		}
	}
}

func TestGenerateFileOverridesAndDryRun(t *testing.T) {
	path := writeProject(t, "input: src/index.ts\ntsconfig: tsconfig.json\n")
	p, _ := testPrinter()

	out, _, err := generateFile(p, path, generateOptions{
		format: "json",
		dryRun: true,
		overrides: config.Overrides{
			OutDir:      "build",
			NoTypeCheck: true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(out) != "webpack.config.json" {
		t.Errorf("output = %q, want webpack.config.json", out)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", out)
	}
}

func TestGenerateFileKeepsBackup(t *testing.T) {
	path := writeProject(t, "input: src/index.ts\n")
	out := filepath.Join(filepath.Dir(path), "webpack.config.js")
	if err := os.WriteFile(out, []byte("// hand edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, _ := testPrinter()

	if _, written, err := generateFile(p, path, generateOptions{format: "js"}); err != nil || !written {
		t.Fatalf("generateFile = %t, %v; want a write", written, err)
	}
	backup, err := os.ReadFile(out + ".bak")
	if err != nil {
		t.Fatal(err)
	}
	if string(backup) != "// hand edited\n" {
		t.Errorf("backup = %q, want the previous contents", backup)
	}

	if _, written, err := generateFile(p, path, generateOptions{format: "js"}); err != nil || written {
		t.Errorf("second generateFile = %t, %v; want unchanged", written, err)
	}
}

func TestAbsOverrides(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(cwd, "abs", "tsconfig.json")
	got, err := absOverrides(config.Overrides{OutDir: "build", Tsconfig: abs, Mode: "production"})
	if err != nil {
		t.Fatal(err)
	}
	want := config.Overrides{OutDir: filepath.Join(cwd, "build"), Tsconfig: abs, Mode: "production"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("absOverrides mismatch (-want +got):\n%s", diff)
	}

	if got, _ := absOverrides(config.Overrides{}); got.OutDir != "" || got.Tsconfig != "" {
		t.Errorf("absOverrides filled empty paths: %+v", got)
	}
}

func TestGenerateFileAmbiguousAlias(t *testing.T) {
	path := writeProject(t, "input:\n  frontend: src/index.ts\n  admin: admin/index.js\n")
	p, _ := testPrinter()

	_, _, err := generateFile(p, path, generateOptions{format: "js"})
	if err == nil || !strings.Contains(err.Error(), "alias") {
		t.Fatalf("generateFile error = %v, want ambiguous alias", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "webpack.config.js")); !os.IsNotExist(err) {
		t.Error("config written despite alias error")
	}
}

func TestValidateFile(t *testing.T) {
	for _, test := range []struct {
		name     string
		contents string
		valid    bool
		output   string
	}{
		{"valid", "input: src/index.ts\n", true, "is valid"},
		{"schema", "mode: fast\n", false, "Field: mode"},
		{"alias", "input:\n  a: src/a.ts\n  b: lib/b.ts\n", false, "ambiguous"},
	} {
		t.Run(test.name, func(t *testing.T) {
			p, buf := testPrinter()
			if got := validateFile(p, writeProject(t, test.contents)); got != test.valid {
				t.Errorf("validateFile = %t, want %t\n%s", got, test.valid, buf)
			}
			if !strings.Contains(buf.String(), test.output) {
				t.Errorf("output missing %q:\n%s", test.output, buf)
			}
		})
	}
}

func TestCleanOutDirRefusesProjectDir(t *testing.T) {
	p, _ := testPrinter()
	dir := t.TempDir()
	if err := cleanOutDir(p, dir, dir, true); err == nil {
		t.Error("cleanOutDir removed the project directory")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("project directory gone: %v", err)
	}
}

func TestContains(t *testing.T) {
	sep := string(filepath.Separator)
	root := filepath.Join(sep+"work", "dist")
	for _, test := range []struct {
		path string
		want bool
	}{
		{root, true},
		{filepath.Join(root, "app"), true},
		{filepath.Join(root, "..cache", "app"), true},
		{filepath.Join(sep+"work", "app"), false},
		{filepath.Join(sep + "work"), false},
	} {
		if got := contains(root, test.path); got != test.want {
			t.Errorf("contains(%q, %q) = %t, want %t", root, test.path, got, test.want)
		}
	}
}

func TestCleanOutDirRefusesParentOfProject(t *testing.T) {
	p, _ := testPrinter()
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "..cache", "app")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := cleanOutDir(p, projectDir, dir, true); err == nil {
		t.Error("cleanOutDir removed a directory holding the project")
	}
	if _, err := os.Stat(projectDir); err != nil {
		t.Errorf("project directory gone: %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" html, txt,,csv ")
	if strings.Join(got, "|") != "html|txt|csv" {
		t.Errorf("splitList = %q", got)
	}
}
