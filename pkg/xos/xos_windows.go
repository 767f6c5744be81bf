//go:build windows
// +build windows

// Package xos provides atomic file writes for generated configuration.
// On Windows the target is replaced by a rename from the same directory.
package xos

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to a temp file next to filename and renames it into
// place.
func WriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".packforge-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}

	// Rename does not replace an existing file here.
	if _, statErr := os.Stat(filename); statErr == nil {
		if err = os.Remove(filename); err != nil {
			return err
		}
	}
	return os.Rename(tmp.Name(), filename)
}
