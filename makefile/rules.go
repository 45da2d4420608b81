package makefile

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/mkdep/depscan"
)

// Emitter renders dependency rules for every source file in a file list,
// wrapped to the configured line width.
type Emitter struct {
	cfg     *Config
	files   []string
	deps    depscan.DependencyGraph
	closure *depscan.Closure
}

func NewEmitter(cfg *Config, files []string, deps depscan.DependencyGraph, closure *depscan.Closure) *Emitter {
	return &Emitter{cfg: cfg, files: files, deps: deps, closure: closure}
}

// Rules returns the generated rule lines: the optional self rule first, then
// one rule per source file mapping its object name to the source file plus
// its transitive include closure.
func (e *Emitter) Rules() ([]string, error) {
	var lines []string

	if e.cfg.SelfRule && e.cfg.External != "" {
		lines = append(lines, e.selfRule()...)
	}

	for _, file := range e.files {
		if !depscan.IsSourceFile(file) {
			continue
		}
		closure, err := e.closure.Of(file)
		if err != nil {
			return nil, err
		}
		object := file[:len(file)-2] + e.cfg.ObjectSuffix
		prereqs := append([]string{file}, closure...)
		lines = append(lines, e.wrap(e.renderPath(object), prereqs)...)
	}

	return lines, nil
}

// selfRule emits a pseudo-target for the external dependency file, depending
// on every known file and every direct dependency.
func (e *Emitter) selfRule() []string {
	seen := make(map[string]bool, len(e.files))
	combined := make([]string, 0, len(e.files))
	for _, file := range e.files {
		if !seen[file] {
			seen[file] = true
			combined = append(combined, file)
		}
	}
	for _, direct := range e.deps {
		for _, dep := range direct {
			if !seen[dep] {
				seen[dep] = true
				combined = append(combined, dep)
			}
		}
	}
	sort.Strings(combined)

	return e.wrap(e.renderPath(e.cfg.External), combined)
}

// wrap renders one rule as physical lines no longer than LineWidth-2
// characters. A single prerequisite is never split, even when it alone
// exceeds the budget.
func (e *Emitter) wrap(target string, prereqs []string) []string {
	var lines []string
	line := target + ":"
	running := len(line)

	for _, prereq := range prereqs {
		if e.cfg.Exclude[prereq] {
			continue
		}
		item := e.renderPath(prereq)
		if running+1+len(item) > e.cfg.LineWidth-2 {
			lines = append(lines, line+" "+e.cfg.Continuation)
			line = " " + item
			running = len(item)
			continue
		}
		line += " " + item
		running += 1 + len(item)
	}

	return append(lines, line)
}

// renderPath converts a canonical path to the output path syntax. An empty
// separator keeps only the basename.
func (e *Emitter) renderPath(path string) string {
	if e.cfg.PathSep == string(filepath.Separator) {
		return path
	}
	segments := strings.Split(path, string(filepath.Separator))
	if e.cfg.PathSep == "" {
		return segments[len(segments)-1]
	}
	return strings.Join(segments, e.cfg.PathSep)
}
