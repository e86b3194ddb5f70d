// Package callgraph builds and queries the flat node/edge call graph
// described by the core data model. Construction is the only phase that
// mutates a Graph; every later component (entrypoint detection,
// reachability, taint, risk) treats it read-only.
package callgraph

import (
	"github.com/reachlab/depscan"
)

// Graph is an adjacency-list call graph keyed by depscan.NodeID, built once
// per scan and then frozen. Both construction and the traversal helpers
// below are O(N+E).
type Graph struct {
	nodes map[depscan.NodeID]*depscan.Node
	out   map[depscan.NodeID][]depscan.Edge
	in    map[depscan.NodeID][]depscan.Edge
}

// New returns an empty, mutable Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[depscan.NodeID]*depscan.Node),
		out:   make(map[depscan.NodeID][]depscan.Edge),
		in:    make(map[depscan.NodeID][]depscan.Edge),
	}
}

// AddNode inserts n if its ID is not already present, returning the
// (possibly pre-existing) stored node.
func (g *Graph) AddNode(n depscan.Node) *depscan.Node {
	if existing, ok := g.nodes[n.ID]; ok {
		return existing
	}
	stored := n
	g.nodes[n.ID] = &stored
	return &stored
}

// AddEdge records a directed edge. Both endpoints should already exist via
// AddNode; AddEdge does not implicitly create them so that external-node
// bookkeeping (Package linkage) stays explicit at the call site.
func (g *Graph) AddEdge(e depscan.Edge) {
	g.out[e.From] = append(g.out[e.From], e)
	g.in[e.To] = append(g.in[e.To], e)
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id depscan.NodeID) *depscan.Node {
	return g.nodes[id]
}

// Nodes returns every node in the graph in no particular order.
func (g *Graph) Nodes() []*depscan.Node {
	out := make([]*depscan.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// Out returns the outgoing edges from id.
func (g *Graph) Out(id depscan.NodeID) []depscan.Edge {
	return g.out[id]
}

// In returns the incoming edges to id.
func (g *Graph) In(id depscan.NodeID) []depscan.Edge {
	return g.in[id]
}

// NodeCount and EdgeCount report the graph's size, primarily for telemetry
// and the analysis-budget guard in §4.D/§7.
func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.out {
		n += len(edges)
	}
	return n
}
