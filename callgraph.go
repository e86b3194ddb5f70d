package depscan

import "fmt"

// NodeID is a stable string handle of the form "<file>:<symbol>", with the
// symbol omitted when unresolved. Nodes are never compared by identity so
// that the graph stays trivially serializable and immune to cycles in its
// representation.
type NodeID string

// NewNodeID builds a NodeID from a file and an optional symbol.
func NewNodeID(file, symbol string) NodeID {
	if symbol == "" {
		return NodeID(file)
	}
	return NodeID(fmt.Sprintf("%s:%s", file, symbol))
}

// Node is a call-graph vertex: a project file, a project symbol within a
// file, or an external node standing in for a library-owned symbol.
type Node struct {
	ID         NodeID `json:"id"`
	File       string `json:"file"`
	Symbol     string `json:"symbol,omitempty"`
	IsExternal bool   `json:"is_external"`
	// Package ties an external node to the Dependency it represents. Empty
	// for project-owned nodes.
	Package string `json:"package,omitempty"`
}

// CallType classifies the provenance of a call-graph Edge.
type CallType string

const (
	CallDirect       CallType = "direct"
	CallDirectMethod CallType = "direct_method"
	CallDynamic      CallType = "dynamic"
	CallImport       CallType = "import"
	CallReflective   CallType = "reflective"
	CallConditional  CallType = "conditional"
)

// Edge is a directed call-graph arc from a caller to a callee.
type Edge struct {
	From       NodeID   `json:"from"`
	To         NodeID   `json:"to"`
	CallType   CallType `json:"call_type"`
	Confidence float64  `json:"confidence"`
}
