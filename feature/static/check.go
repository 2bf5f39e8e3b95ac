package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Report describes the content of a static root.
type Report struct {
	Root         string
	IndexPresent bool
	Files        int
}

// CheckRoot counts the servable files below root and checks for the index file.
func CheckRoot(root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat static root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static root %s is not a directory", root)
	}

	report := &Report{Root: root}

	index, err := os.Stat(filepath.Join(root, IndexFile))
	switch {
	case err == nil:
		report.IndexPresent = index.Mode().IsRegular()
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to stat index file: %w", err)
	}

	err = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			report.Files++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk static root: %w", err)
	}

	return report, nil
}
