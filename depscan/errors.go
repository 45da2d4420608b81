package depscan

import "fmt"

// UnresolvedDependencyError reports an include directive naming a header that
// was never seen by directory scanning or Makefile seeding. It aborts the run:
// the include graph cannot be completed.
type UnresolvedDependencyError struct {
	Name       string
	IncludedBy string
}

func (e *UnresolvedDependencyError) Error() string {
	if e.IncludedBy == "" {
		return fmt.Sprintf("unresolved dependency %q", e.Name)
	}
	return fmt.Sprintf("unresolved dependency %q included by %s", e.Name, e.IncludedBy)
}
