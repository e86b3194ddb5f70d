// Package generic is the call-graph frontend used for every ecosystem
// without a dedicated language frontend (JavaScript, Python, Rust, ...). It
// trades precision for breadth: a line-oriented regex pass recognizes
// import-like statements and call-like expressions without parsing the
// source language's real grammar, and everything it emits is capped at
// reduced confidence to reflect that.
package generic

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
	pathutil "github.com/reachlab/depscan/pkg/path"
)

// importPattern recognizes the import statement shapes used by depscan's
// supported dynamic-language ecosystems: JS/TS `import ... from "x"` and
// `require("x")`, Python `import x` / `from x import y`, Ruby `require "x"`.
var importPattern = regexp.MustCompile(
	`(?:from\s+['"]?([\w./-]+)['"]?\s+import)|` +
		`(?:import\s+['"]([\w./-]+)['"])|` +
		`(?:require\(['"]([\w./-]+)['"]\))|` +
		`(?:require\s+['"]([\w./-]+)['"])|` +
		`(?:^\s*import\s+([\w.]+)\s*$)`,
)

// callPattern recognizes a bare `identifier(` or `identifier.method(` call
// shape, language-agnostic enough to cover C-family, Python, and Ruby call
// syntax (modulo Ruby's parens-optional calls, which this pass does not
// attempt).
var callPattern = regexp.MustCompile(`\b([A-Za-z_][\w]*(?:\.[A-Za-z_][\w]*)?)\s*\(`)

// sourceExt is the set of file extensions this frontend walks: every
// dynamic-language ecosystem in the closed Ecosystem enum that does not
// have its own dedicated frontend.
var sourceExt = map[string]struct{}{
	".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".mjs": {},
	".py":  {},
	".rb":  {},
	".php": {},
	".rs":  {},
}

// Frontend adapts Build to callgraph.Frontend.
type Frontend struct{}

func (Frontend) Build(g *callgraph.Graph, root string) error {
	return Build(g, root)
}

// Build walks root for source files in sourceExt and adds a best-effort
// file node, import edges (confidence 0.8), and dynamic call edges
// (confidence 0.5, under the dynamic-dispatch ceiling in §4.D) to g.
func Build(g *callgraph.Graph, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if _, ok := sourceExt[filepath.Ext(path)]; !ok {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = pathutil.CanonicalizeFileName(filepath.ToSlash(rel))
		return buildFile(g, rel, path)
	})
}

func buildFile(g *callgraph.Graph, rel, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	fileNode := g.AddNode(depscan.Node{ID: depscan.NewNodeID(rel, ""), File: rel})

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if m := importPattern.FindStringSubmatch(line); m != nil {
			target := firstNonEmptyGroup(m[1:])
			if target == "" {
				continue
			}
			extID := depscan.NewNodeID("external:"+target, "")
			g.AddNode(depscan.Node{ID: extID, File: "external:" + target, IsExternal: true, Package: target})
			g.AddEdge(depscan.Edge{From: fileNode.ID, To: extID, CallType: depscan.CallImport, Confidence: 0.8})
		}

		for _, m := range callPattern.FindAllStringSubmatch(line, -1) {
			target := m[1]
			if isKeyword(target) {
				continue
			}
			callNode := depscan.NewNodeID(rel, target)
			g.AddNode(depscan.Node{ID: callNode, File: rel, Symbol: target})
			g.AddEdge(depscan.Edge{From: fileNode.ID, To: callNode, CallType: depscan.CallDynamic, Confidence: 0.5})
		}
	}
	return sc.Err()
}

func firstNonEmptyGroup(groups []string) string {
	for _, g := range groups {
		if g != "" {
			return g
		}
	}
	return ""
}

var keywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "switch": {}, "catch": {}, "function": {},
	"def": {}, "class": {}, "return": {}, "elif": {}, "else": {},
}

func isKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
