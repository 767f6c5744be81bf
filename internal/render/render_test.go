package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dosanma1/packforge/pkg/webpack"
)

func buildConfig(t *testing.T) *webpack.Config {
	t.Helper()
	cfg, err := webpack.NewBuilder("/repo", webpack.DefaultPresets()).Build(&webpack.BuildOptions{
		Input: webpack.NamedPaths(
			webpack.NamedPath{Name: "frontend", Path: "src/index.ts"},
			webpack.NamedPath{Name: "admin", Path: "src/admin.ts"},
		),
		RawFileExtensions: []string{"html", "txt"},
		Tsconfig:          "tsconfig.json",
		Env:               map[string]string{"NODE_ENV": "production"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRenderJS(t *testing.T) {
	out, err := NewRenderer().Render(buildConfig(t), FormatJS, "packforge.yaml")
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)

	for _, want := range []string{
		"// Code generated by packforge. DO NOT EDIT.\n// Source: packforge.yaml\n",
		"const { EnvironmentPlugin } = require('webpack');\n",
		"const CircularDependencyPlugin = require('circular-dependency-plugin');\n",
		"const ForkTsCheckerWebpackPlugin = require('fork-ts-checker-webpack-plugin');\n",
		"module.exports = {\n",
		"  entry: {\n    frontend: [\n      'babel-polyfill',\n      'raf/polyfill',\n      '/repo/src/index.ts',\n    ],\n",
		"filename: '[name]-bundle.js',",
		"'^': '/repo/src',",
		"test: /\\.(?:html|txt)$/,\n        use: 'raw-loader',",
		"exclude: /node_modules/,",
		"transpileOnly: true,",
		"configFile: '/repo/tsconfig.json'",
		"new EnvironmentPlugin({\n      NODE_ENV: 'production',\n    }),",
		"new ForkTsCheckerWebpackPlugin({",
		"};\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered config missing %q\n%s", want, got)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := NewRenderer().Render(buildConfig(t), FormatJSON, "")
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Output struct {
			Filename string `json:"filename"`
			Path     string `json:"path"`
		} `json:"output"`
		Module struct {
			Rules []struct {
				Test string `json:"test"`
			} `json:"rules"`
		} `json:"module"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded.Output.Path != "/repo/dist" {
		t.Errorf("output.path = %q", decoded.Output.Path)
	}
	var tests []string
	for _, r := range decoded.Module.Rules {
		tests = append(tests, r.Test)
	}
	if diff := cmp.Diff([]string{`\.(?:html|txt)$`, `\.tsx?$`}, tests); diff != "" {
		t.Errorf("rule tests mismatch (-want +got):\n%s", diff)
	}
}

func TestJSString(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"plain", `'plain'`},
		{"it's", `'it\'s'`},
		{`C:\dir`, `'C:\\dir'`},
		{"a\nb", `'a\nb'`},
		{`say "hi"`, `'say "hi"'`},
		{"\x01", `'\x01'`},
	} {
		if got := jsString(test.in); got != test.want {
			t.Errorf("jsString(%q) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestJSPattern(t *testing.T) {
	got := jsValue(webpack.MustPattern(`src/.*\.ts$`), 0)
	if want := `/src\/.*\.ts$/`; got != want {
		t.Errorf("pattern = %s, want %s", got, want)
	}
}

func TestRequiresGroupsNamedExports(t *testing.T) {
	plugins := []webpack.Plugin{
		{PluginRef: webpack.PluginRef{Package: "webpack", Constructor: "EnvironmentPlugin", Named: true}},
		{PluginRef: webpack.PluginRef{Package: "cdp", Constructor: "CircularDependencyPlugin"}},
		{PluginRef: webpack.PluginRef{Package: "webpack", Constructor: "DefinePlugin", Named: true}},
		{PluginRef: webpack.PluginRef{Package: "webpack", Constructor: "EnvironmentPlugin", Named: true}},
	}
	want := []string{
		"const { EnvironmentPlugin, DefinePlugin } = require('webpack');",
		"const CircularDependencyPlugin = require('cdp');",
	}
	if diff := cmp.Diff(want, requires(plugins)); diff != "" {
		t.Errorf("requires mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"js": FormatJS, "JSON": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml) succeeded")
	}
}
