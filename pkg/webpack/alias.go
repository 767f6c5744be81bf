package webpack

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AliasPrefix is the symbolic import prefix that resolves to the source root.
const AliasPrefix = "^"

// ErrAmbiguousAlias matches any *AmbiguousAliasError.
var ErrAmbiguousAlias = errors.New("ambiguous source alias")

// AmbiguousAliasError is returned when entries live in more than one
// directory, so no single alias can be generated.
type AmbiguousAliasError struct {
	// Dirs lists the distinct entry directories in first-seen order.
	Dirs []string
}

func (e *AmbiguousAliasError) Error() string {
	return fmt.Sprintf("cannot derive alias %q: entries live in different directories (%s)",
		AliasPrefix, strings.Join(e.Dirs, ", "))
}

// Is makes errors.Is(err, ErrAmbiguousAlias) hold.
func (e *AmbiguousAliasError) Is(target error) bool {
	return target == ErrAmbiguousAlias
}

// deriveAlias returns the directory shared by every entry, or
// workDir/DefaultSourceDir when there are none. It refuses to guess a common
// ancestor.
func deriveAlias(workDir string, entries []ResolvedEntry) (string, error) {
	if len(entries) == 0 {
		return filepath.Join(workDir, DefaultSourceDir), nil
	}

	var dirs []string
	seen := make(map[string]bool)
	for _, e := range entries {
		dir := filepath.Dir(e.Path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) > 1 {
		return "", &AmbiguousAliasError{Dirs: dirs}
	}
	return dirs[0], nil
}
