package webpack

// NamedPath is one entry of a named input.
type NamedPath struct {
	Name string
	Path string
}

// Input is either a single entry path or an ordered list of named entry
// paths. The zero value is an empty named input.
type Input struct {
	single bool
	path   string
	named  []NamedPath
}

// SinglePath returns an input with one unnamed entry. An empty path is
// built as the zero Input.
func SinglePath(path string) Input {
	return Input{single: true, path: path}
}

// NamedPaths returns an input with one entry per pair, in order. A repeated
// name keeps its first position and takes the last path given for it.
func NamedPaths(pairs ...NamedPath) Input {
	in := Input{}
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Name]; ok {
			in.named[i].Path = p.Path
			continue
		}
		index[p.Name] = len(in.named)
		in.named = append(in.named, p)
	}
	return in
}

// IsSingle reports whether the input was built by SinglePath.
func (in Input) IsSingle() bool {
	return in.single
}

// Path returns the entry path of a single input.
func (in Input) Path() string {
	return in.path
}

// Named returns a copy of the named entries.
func (in Input) Named() []NamedPath {
	return append([]NamedPath(nil), in.named...)
}

func (in Input) clone() Input {
	in.named = in.Named()
	return in
}
