package webpack

import (
	"regexp"
	"strings"
)

// Loader is one processing step of a rule.
type Loader struct {
	Loader  string
	Options Object
}

// Rule is a module rule. The bundler evaluates rules in list order.
type Rule struct {
	Test    *Pattern
	Exclude *Pattern
	Use     []Loader
}

// Object returns the rule as webpack expects it. A single loader without
// options is written as a plain string.
func (r Rule) Object() Object {
	obj := Object{{Key: "test", Value: r.Test}}
	if r.Exclude != nil {
		obj = append(obj, Field{Key: "exclude", Value: r.Exclude})
	}

	if len(r.Use) == 1 && r.Use[0].Options == nil {
		return append(obj, Field{Key: "use", Value: r.Use[0].Loader})
	}
	use := make([]any, 0, len(r.Use))
	for _, l := range r.Use {
		step := Object{{Key: "loader", Value: l.Loader}}
		if l.Options != nil {
			step = append(step, Field{Key: "options", Value: l.Options})
		}
		use = append(use, step)
	}
	return append(obj, Field{Key: "use", Value: use})
}

// rawPattern returns `\.(?:a|b|...)$` for exts, or "" when exts is empty.
func rawPattern(exts []string) string {
	alts := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(ext))
	}
	if len(alts) == 0 {
		return ""
	}
	return `\.(?:` + strings.Join(alts, "|") + `)$`
}

// assembleRules builds the raw-text rule (omitted without extensions)
// followed by the TypeScript rule.
func assembleRules(p *Presets, o *options, tsconfig string) []Rule {
	var rules []Rule

	if src := rawPattern(o.rawExts); src != "" {
		rules = append(rules, Rule{
			Test: MustPattern(src),
			Use:  []Loader{{Loader: p.RawLoader}},
		})
	}

	ts := Loader{Loader: p.TSLoader}
	if tsconfig != "" {
		// Type errors are reported by the fork checker, off the compile path.
		ts.Options = Object{
			{Key: "transpileOnly", Value: true},
			{Key: "configFile", Value: tsconfig},
		}
	}
	rules = append(rules, Rule{
		Test:    MustPattern(p.TSPattern),
		Exclude: MustPattern(regexp.QuoteMeta(p.External)),
		Use: []Loader{
			{
				Loader: p.BabelLoader,
				Options: Object{
					{Key: "presets", Value: []string{p.BabelPreset}},
				},
			},
			ts,
		},
	})
	return rules
}
