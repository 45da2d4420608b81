package depscan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ScanDirectories enumerates the given directories, registers every header
// under both its bare name and its directory-qualified name, and returns the
// sorted list of sources and headers found.
func ScanDirectories(dirs []string, table *PathTable) ([]string, error) {
	var files []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			path := filepath.Join(dir, name)

			switch {
			case IsSourceFile(name):
				files = append(files, path)
			case IsHeaderFile(name):
				table.Register(name, path)
				table.Register(path, path)
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsSourceFile reports whether name follows the two-character C source suffix
// convention (".c", case-insensitive).
func IsSourceFile(name string) bool {
	if len(name) < 3 {
		return false
	}
	c := name[len(name)-1]
	return name[len(name)-2] == '.' && (c == 'c' || c == 'C')
}

// IsHeaderFile reports whether name follows the header suffix convention.
func IsHeaderFile(name string) bool {
	if len(name) < 3 {
		return false
	}
	return name[len(name)-2] == '.' && name[len(name)-1] == 'h'
}
