package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// ErrInputDirMissing is returned when the configured input directory does not exist
var ErrInputDirMissing = errors.New("input directory not found")

// Directory lists the .eml files of a single directory
type Directory struct {
	dir    string
	logger *zap.Logger
}

// NewDirectory creates a new directory source
func NewDirectory(dir string, logger *zap.Logger) *Directory {
	return &Directory{
		dir:    dir,
		logger: logger,
	}
}

// List returns the .eml files in the directory sorted by name. Subdirectories are not searched.
func (d *Directory) List() ([]string, error) {
	info, err := os.Stat(d.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, d.dir)
	}

	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ".eml" {
			continue
		}
		files = append(files, filepath.Join(d.dir, entry.Name()))
	}
	sort.Strings(files)

	d.logger.Debug("Listed input directory", zap.String("dir", d.dir), zap.Int("files", len(files)))
	return files, nil
}
