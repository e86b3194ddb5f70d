// Package golang is the Go-source frontend for the call-graph builder. It
// walks a project's .go files syntactically (no type-checking, so it works
// even over a tree that does not currently build) and emits the three
// analyses the core call graph needs: import resolution, call extraction,
// and conditional marking.
package golang

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
	pathutil "github.com/reachlab/depscan/pkg/path"
)

// Frontend adapts Build to callgraph.Frontend, carrying the import-path map
// a single scan resolves once up front and reuses across every workspace
// rooted in the same module.
type Frontend struct {
	ImportPath map[string]string
}

func (f Frontend) Build(g *callgraph.Graph, root string) error {
	return Build(g, root, f.ImportPath)
}

// Build walks every .go file under root (excluding _test.go files) and adds
// its nodes and edges to g. importPath maps a project-relative directory to
// its Go import path, used to recognize project-to-project imports; an
// import not found in it is treated as external.
func Build(g *callgraph.Graph, root string, importPath map[string]string) error {
	fset := token.NewFileSet()
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil // unparsable files are skipped, not fatal to the scan
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = pathutil.CanonicalizeFileName(filepath.ToSlash(rel))

		fileNode := g.AddNode(depscan.Node{ID: depscan.NewNodeID(rel, ""), File: rel})
		walkImports(g, fileNode, f, root, path, importPath)
		walkFuncs(g, fileNode, f, fset, rel)
		return nil
	})
}

// walkImports emits an `import` edge for every import spec: to another
// project file when the import path resolves inside importPath, otherwise
// to an external node.
func walkImports(g *callgraph.Graph, fileNode *depscan.Node, f *ast.File, root, path string, importPath map[string]string) {
	for _, imp := range f.Imports {
		target := strings.Trim(imp.Path.Value, `"`)
		if dir, ok := reverseLookup(importPath, target); ok {
			targetNode := g.AddNode(depscan.Node{ID: depscan.NewNodeID(dir, ""), File: dir})
			g.AddEdge(depscan.Edge{From: fileNode.ID, To: targetNode.ID, CallType: depscan.CallImport, Confidence: 1})
			continue
		}
		extID := depscan.NewNodeID("external:"+target, "")
		extNode := g.AddNode(depscan.Node{ID: extID, File: "external:" + target, IsExternal: true, Package: target})
		g.AddEdge(depscan.Edge{From: fileNode.ID, To: extNode.ID, CallType: depscan.CallImport, Confidence: 1})
	}
}

func reverseLookup(importPath map[string]string, target string) (string, bool) {
	for dir, p := range importPath {
		if p == target {
			return dir, true
		}
	}
	return "", false
}

// walkFuncs enumerates function declarations in f and, for each, extracts
// its call sites.
func walkFuncs(g *callgraph.Graph, fileNode *depscan.Node, f *ast.File, fset *token.FileSet, rel string) {
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		name := fn.Name.Name
		if fn.Recv != nil && len(fn.Recv.List) > 0 {
			name = receiverTypeName(fn.Recv.List[0].Type) + "." + name
		}
		fnNode := g.AddNode(depscan.Node{ID: depscan.NewNodeID(rel, name), File: rel, Symbol: name})
		g.AddEdge(depscan.Edge{From: fileNode.ID, To: fnNode.ID, CallType: depscan.CallImport, Confidence: 1})

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			conditional := insideConditional(fn.Body, call.Pos())
			emitCallEdges(g, fnNode, rel, call, conditional)
			return true
		})
	}
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return "?"
	}
}

// emitCallEdges implements the §4.D call-extraction rule: a qualified
// "recv.method()" call emits both a qualified edge (for affected_functions
// matching) and a bare-method fallback edge; everything else emits one edge.
// Calls whose target cannot be resolved to a literal identifier (computed
// function values, reflection) are marked dynamic with reduced confidence.
func emitCallEdges(g *callgraph.Graph, from *depscan.Node, rel string, call *ast.CallExpr, conditional bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		edge(g, from, depscan.NewNodeID(rel, fn.Name), depscan.CallDirect, 1, conditional)
	case *ast.SelectorExpr:
		recv, isIdent := fn.X.(*ast.Ident)
		method := fn.Sel.Name
		if isIdent {
			edge(g, from, depscan.NewNodeID("external:"+recv.Name, method), depscan.CallDirectMethod, 0.9, conditional)
			// Bare-method fallback: a node keyed on the method name alone,
			// carrying no package, so a dependency's affected_functions
			// entry that names only a method can still partial-match it
			// even when the qualifier doesn't resolve to anything useful.
			edge(g, from, depscan.NewNodeID("external::"+method, ""), depscan.CallDirectMethod, 0.6, conditional)
		} else {
			edge(g, from, depscan.NewNodeID(rel, method), depscan.CallDirectMethod, 0.7, conditional)
		}
	default:
		// A computed call target (func literal result, map/slice of funcs,
		// reflect.Value.Call, ...): no static symbol to resolve.
		edge(g, from, depscan.NewNodeID(rel, "<dynamic>"), depscan.CallDynamic, 0.4, conditional)
	}
}

func edge(g *callgraph.Graph, from *depscan.Node, to depscan.NodeID, ct depscan.CallType, confidence float64, conditional bool) {
	if conditional {
		ct = depscan.CallConditional
		confidence *= 0.7
	}
	n := depscan.Node{ID: to, File: string(to)}
	if pkg, sym, ok := externalTarget(to); ok {
		n.IsExternal = true
		n.Package = pkg
		n.Symbol = sym
	}
	g.AddNode(n)
	g.AddEdge(depscan.Edge{From: from.ID, To: to, CallType: ct, Confidence: confidence})
}

// externalTarget recognizes a NodeID built from the "external:<pkg>" file
// handle emitCallEdges builds for selector calls, splitting it back into the package the
// node stands in for and the symbol called on it, so reachability's
// affected_functions matching has something to key on.
func externalTarget(id depscan.NodeID) (pkg, symbol string, ok bool) {
	s := string(id)
	if !strings.HasPrefix(s, "external:") {
		return "", "", false
	}
	rest := strings.TrimPrefix(s, "external:")
	file, sym, found := strings.Cut(rest, ":")
	if !found {
		return file, "", true
	}
	return file, sym, true
}

// insideConditional reports whether pos falls within an if/switch/select
// branch body inside fn, a coarse proxy for "guarded by a runtime-only
// value" per §4.D.3. It does not attempt to classify the guard expression
// itself (environment vs. a provably-constant condition); any branch body
// counts, trading precision for never missing a real conditional call.
func insideConditional(fn ast.Node, pos token.Pos) bool {
	found := false
	ast.Inspect(fn, func(n ast.Node) bool {
		if found {
			return false
		}
		var body *ast.BlockStmt
		switch s := n.(type) {
		case *ast.IfStmt:
			body = s.Body
		case *ast.SwitchStmt:
			body = s.Body
		case *ast.TypeSwitchStmt:
			body = s.Body
		case *ast.SelectStmt:
			body = s.Body
		default:
			return true
		}
		if body != nil && body.Pos() <= pos && pos < body.End() {
			found = true
			return false
		}
		return true
	})
	return found
}
