// Package util provides filesystem helpers for the batch pipeline.
package util

import (
	"os"
	"path/filepath"

	"github.com/retina-ai/go-fundus-prep/images"
)

// ListImageFiles returns the names of the image files in a directory.
// Only entries with a recognized image extension (case-sensitive .jpg,
// .jpeg, .png) are included; directories and other entries are silently
// skipped. Names are returned in the directory listing's native order.
//
// Arguments:
// - dir: Directory path to list.
//
// Returns:
// - []string: The eligible file names (not full paths).
// - error: Error if the directory cannot be read.
func ListImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := images.FormatFromExtension(filepath.Ext(entry.Name())); ok {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}
