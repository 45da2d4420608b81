package depscan

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Closure computes the set of files reachable from a file via one or more
// include hops. Cycles are tolerated: revisiting a node is a no-op.
type Closure struct {
	deps  DependencyGraph
	graph graphlib.Graph[string, string]
}

// NewClosure builds the traversal graph once from the direct-dependency
// mapping. The mapping must not change afterwards.
func NewClosure(deps DependencyGraph) (*Closure, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for file, direct := range deps {
		if err := addVertex(g, file); err != nil {
			return nil, err
		}
		for _, dep := range direct {
			if err := addVertex(g, dep); err != nil {
				return nil, err
			}
			if err := g.AddEdge(file, dep); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", file, dep, err)
			}
		}
	}

	return &Closure{deps: deps, graph: g}, nil
}

func addVertex(g graphlib.Graph[string, string], v string) error {
	if err := g.AddVertex(v); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add vertex %s: %w", v, err)
	}
	return nil
}

// Of returns every file reachable from filePath by following one or more
// dependency edges, sorted lexicographically. filePath itself is included
// only when it is reachable via a cycle.
func (c *Closure) Of(filePath string) ([]string, error) {
	reachable := make(map[string]bool)

	for _, dep := range c.deps[filePath] {
		err := graphlib.DFS(c.graph, dep, func(node string) bool {
			reachable[node] = true
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("failed to traverse from %s: %w", dep, err)
		}
	}

	result := make([]string, 0, len(reachable))
	for node := range reachable {
		result = append(result, node)
	}
	sort.Strings(result)
	return result, nil
}
