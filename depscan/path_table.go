package depscan

import "github.com/charmbracelet/log"

// PathTable maps a filename (bare or directory-qualified) to its canonical
// resolved path. Directory scanning populates it; Makefile seed lines may
// override the entry for a bare header name.
type PathTable struct {
	paths  map[string]string
	seeded map[string]bool
}

func NewPathTable() *PathTable {
	return &PathTable{
		paths:  make(map[string]string),
		seeded: make(map[string]bool),
	}
}

// Register records a canonical path for name. The first registration wins;
// a conflicting re-registration is logged and not applied.
func (t *PathTable) Register(name, path string) {
	if existing, ok := t.paths[name]; ok {
		if existing != path {
			log.Warnf("duplicate registration for %s: keeping %s, ignoring %s", name, existing, path)
		}
		return
	}
	t.paths[name] = path
}

// Seed records a Makefile-derived mapping from a bare header name to its full
// path. Seeds override directory-scan entries, but only the first seed for a
// given bare name is applied; later seeds are logged and ignored.
func (t *PathTable) Seed(name, path string) {
	if t.seeded[name] {
		log.Warnf("ignoring later makefile declaration for %s: %s", name, path)
		return
	}
	t.seeded[name] = true
	t.paths[name] = path
	// The full path resolves to itself so qualified includes still work.
	if _, ok := t.paths[path]; !ok {
		t.paths[path] = path
	}
}

// Resolve returns the canonical path registered for name.
func (t *PathTable) Resolve(name string) (string, error) {
	path, ok := t.paths[name]
	if !ok {
		return "", &UnresolvedDependencyError{Name: name}
	}
	return path, nil
}
