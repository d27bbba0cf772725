package haplomapper

import (
	"os"
	"path/filepath"
)

// CreateFileAndPath makes sure the file at path exists, creating any missing
// parent directories along the way. Existing file contents are left alone.
func CreateFileAndPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	return f.Close()
}
