package depscan

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// DependencyGraph represents a mapping from canonical file paths to the
// canonical paths they directly include.
type DependencyGraph map[string][]string

var (
	includePattern      = regexp.MustCompile(`^\s*#include\s+"([^"]+)"\s*$`)
	blockCommentPattern = regexp.MustCompile(`/\*.*?\*/`)
)

// Scanner discovers direct include dependencies by reading source files.
// Each file is scanned at most once; the resulting graph is safe to read
// concurrently after scanning completes.
type Scanner struct {
	table *PathTable
	read  ContentReader
	graph DependencyGraph
}

func NewScanner(table *PathTable, read ContentReader) *Scanner {
	return &Scanner{
		table: table,
		read:  read,
		graph: make(DependencyGraph),
	}
}

// Graph returns the direct-dependency mapping built so far.
func (s *Scanner) Graph() DependencyGraph {
	return s.graph
}

// Scan records the direct dependencies of filePath and of every newly
// discovered header reachable from it. An unreadable file is treated as
// having no dependencies: generated sources may not exist yet.
func (s *Scanner) Scan(filePath string) error {
	work := []string{filePath}
	for len(work) > 0 {
		current := work[len(work)-1]
		work = work[:len(work)-1]
		if _, done := s.graph[current]; done {
			continue
		}

		direct, err := s.scanFile(current)
		if err != nil {
			return err
		}
		s.graph[current] = direct

		for _, dep := range direct {
			if _, done := s.graph[dep]; !done {
				work = append(work, dep)
			}
		}
	}
	return nil
}

func (s *Scanner) scanFile(filePath string) ([]string, error) {
	content, err := s.read(filePath)
	if err != nil {
		log.Debugf("cannot read %s, assuming no dependencies: %v", filePath, err)
		return nil, nil
	}

	var direct []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := stripComments(scanner.Text())
		match := includePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		resolved, err := s.table.Resolve(match[1])
		if err != nil {
			var unresolved *UnresolvedDependencyError
			if errors.As(err, &unresolved) {
				unresolved.IncludedBy = filePath
			}
			return nil, err
		}
		if !seen[resolved] {
			seen[resolved] = true
			direct = append(direct, resolved)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Debugf("error reading %s, keeping partial dependencies: %v", filePath, err)
	}

	return direct, nil
}

// stripComments removes comments from a single physical line. Block comments
// are only stripped when they open and close on the same line; a block
// comment spanning lines is not tracked.
func stripComments(line string) string {
	line = blockCommentPattern.ReplaceAllString(line, "")
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line
}
