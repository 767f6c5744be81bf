package webpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// Field is one key of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered JavaScript object literal. It marshals to JSON with
// its keys in order.
type Object []Field

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// stringObject returns m as an Object with keys sorted.
func stringObject(m map[string]string) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := make(Object, 0, len(keys))
	for _, k := range keys {
		obj = append(obj, Field{Key: k, Value: m[k]})
	}
	return obj
}

// Pattern is a regular expression that the bundler evaluates. Its source is
// valid in both RE2 and JavaScript syntax.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles src.
func NewPattern(src string) (*Pattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", src, err)
	}
	return &Pattern{re: re}, nil
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(src string) *Pattern {
	p, err := NewPattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.re.String()
}

// MatchString reports whether path matches the pattern.
func (p *Pattern) MatchString(path string) bool {
	return p.re.MatchString(path)
}

// MarshalJSON encodes the pattern as its source string.
func (p *Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
