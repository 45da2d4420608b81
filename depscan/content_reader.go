package depscan

import "os"

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (filesystem, test fixtures, etc.)
type ContentReader func(filePath string) ([]byte, error)

// FileContentReader reads content from the local filesystem.
func FileContentReader(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}
