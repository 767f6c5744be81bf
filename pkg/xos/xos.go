//go:build !windows
// +build !windows

// Package xos provides atomic file writes for generated configuration.
// Readers of a rewritten file never observe a partially written config.
package xos

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to the named file atomically using rename.
// If the file does not exist, WriteFile creates it with permissions perm.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
