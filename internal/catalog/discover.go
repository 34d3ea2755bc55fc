package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Discover recursively enumerates candidate catalog files under root.
//
// Only files with a .yml or .yaml extension are returned. Paths are sorted
// lexicographically so repeated runs process files in the same order and
// their logs stay diffable.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yml", ".yaml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog root %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
