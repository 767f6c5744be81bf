package webpack

import "path/filepath"

// ResolvedEntry is one entry module with an absolute path. Name is empty for a
// single input.
type ResolvedEntry struct {
	Name string
	Path string
}

// resolveEntries returns the entries of in, resolved against workDir. Paths
// are joined verbatim; extensions are never rewritten.
func resolveEntries(workDir string, in Input) []ResolvedEntry {
	if in.IsSingle() {
		return []ResolvedEntry{{Path: absPath(workDir, in.Path())}}
	}

	entries := make([]ResolvedEntry, 0, len(in.named))
	for _, p := range in.named {
		entries = append(entries, ResolvedEntry{
			Name: p.Name,
			Path: absPath(workDir, p.Path),
		})
	}
	return entries
}

// absPath resolves p against workDir unless p is already absolute.
func absPath(workDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(workDir, p)
}

// entryPoints prefixes every resolved entry with the bootstrap modules.
func entryPoints(bootstrap []string, entries []ResolvedEntry) []EntryPoint {
	points := make([]EntryPoint, 0, len(entries))
	for _, e := range entries {
		modules := make([]string, 0, len(bootstrap)+1)
		modules = append(modules, bootstrap...)
		modules = append(modules, e.Path)
		points = append(points, EntryPoint{Name: e.Name, Modules: modules})
	}
	return points
}
