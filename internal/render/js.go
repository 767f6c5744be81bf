package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dosanma1/packforge/pkg/webpack"
)

const indentUnit = "  "

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsValue writes v as a JavaScript expression. Objects and arrays span
// several lines, indented by depth.
func jsValue(v any, depth int) string {
	switch v := v.(type) {
	case webpack.Object:
		if len(v) == 0 {
			return "{}"
		}
		items := make([]string, 0, len(v))
		for _, f := range v {
			items = append(items, jsKey(f.Key)+": "+jsValue(f.Value, depth+1))
		}
		return block("{", items, "}", depth)
	case []any:
		if len(v) == 0 {
			return "[]"
		}
		items := make([]string, 0, len(v))
		for _, e := range v {
			items = append(items, jsValue(e, depth+1))
		}
		return block("[", items, "]", depth)
	case []string:
		if len(v) == 0 {
			return "[]"
		}
		items := make([]string, 0, len(v))
		for _, s := range v {
			items = append(items, jsString(s))
		}
		return block("[", items, "]", depth)
	case string:
		return jsString(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case *webpack.Pattern:
		return "/" + strings.ReplaceAll(v.String(), "/", `\/`) + "/"
	case webpack.Plugin:
		return "new " + v.Constructor + "(" + jsValue(v.Options, depth) + ")"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("render: cannot encode %T: %v", v, err))
		}
		return string(data)
	}
}

func block(open string, items []string, close string, depth int) string {
	inner := strings.Repeat(indentUnit, depth+1)
	var b strings.Builder
	b.WriteString(open)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(inner)
		b.WriteString(item)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(close)
	return b.String()
}

// jsString quotes s with single quotes.
func jsString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\', '\'':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func jsKey(key string) string {
	if identifier.MatchString(key) {
		return key
	}
	return jsString(key)
}
