package callgraph

//go:generate -command mockgen mockgen -package=callgraph -self_package=github.com/reachlab/depscan/internal/callgraph
//go:generate mockgen -destination=./frontend_mock_test.go github.com/reachlab/depscan/internal/callgraph Frontend

// Frontend is the extension point §5.D.1 documents for adding a new source
// language to the call-graph builder: given a project root, it parses
// whatever files it recognizes and writes the resulting nodes and edges
// directly into g. internal/callgraph/golang and internal/callgraph/generic
// are the two concrete implementations depscan ships; a third-party
// language front-end need only satisfy this interface to plug into
// internal/scan's orchestration.
type Frontend interface {
	Build(g *Graph, root string) error
}
