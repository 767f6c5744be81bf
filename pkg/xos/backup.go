package xos

import (
	"bytes"
	"os"
)

// WriteFileWithBackup writes data to a file, keeping the previous contents
// in filename + ".bak". Unchanged files are left alone; the returned bool
// reports whether a write happened.
func WriteFileWithBackup(filename string, data []byte, perm os.FileMode) (bool, error) {
	original, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if bytes.Equal(original, data) {
			return false, nil
		}
		if err := WriteFile(filename+".bak", original, perm); err != nil {
			return false, err
		}
	case !os.IsNotExist(err):
		return false, err
	}

	if err := WriteFile(filename, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
