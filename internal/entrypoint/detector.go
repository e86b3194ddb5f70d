// Package entrypoint scores call-graph nodes for how likely they are to be
// reachable from outside the project: an HTTP handler, a CLI command, a
// process main, an event subscriber.
package entrypoint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/callgraph"
)

// DefaultThreshold is the minimum aggregate confidence a file must reach to
// be retained as an entry point.
const DefaultThreshold = 0.6

// weight is each signal's contribution to the aggregate confidence.
var weight = map[depscan.SignalKind]float64{
	depscan.SignalHTTPHandler:    0.9,
	depscan.SignalMainFunction:   0.9,
	depscan.SignalCLICommand:     0.85,
	depscan.SignalEventHandler:   0.55,
	depscan.SignalServerInit:     0.55,
	depscan.SignalPackageExport:  0.5,
	depscan.SignalNoIncomingCall: 0.2,
	depscan.SignalTestFile:       -0.8,
}

var strongSignals = map[depscan.SignalKind]struct{}{
	depscan.SignalHTTPHandler:  {},
	depscan.SignalMainFunction: {},
	depscan.SignalCLICommand:   {},
}

// pattern ties a per-line regex to the signal it's evidence for, and a
// human-readable rationale template.
type pattern struct {
	kind      depscan.SignalKind
	re        *regexp.Regexp
	rationale string
}

var patterns = []pattern{
	{depscan.SignalMainFunction, regexp.MustCompile(`^func\s+main\s*\(`), "defines func main()"},
	{depscan.SignalMainFunction, regexp.MustCompile(`if\s+__name__\s*==\s*['"]__main__['"]`), "guards a top-level script entry point"},
	{depscan.SignalHTTPHandler, regexp.MustCompile(`\b(http\.HandleFunc|router\.(Get|Post|Put|Delete|Handle)|app\.(get|post|put|delete)|@(Get|Post|Put|Delete)Mapping|@app\.route|\.use\()`), "registers an HTTP route or handler"},
	{depscan.SignalCLICommand, regexp.MustCompile(`\b(cobra\.Command|flag\.Parse|argparse\.ArgumentParser|commander\.Command|click\.command|yargs\.command)\b`), "registers a CLI command or parses process arguments"},
	{depscan.SignalEventHandler, regexp.MustCompile(`\b(\.Subscribe\(|\.on\(['"]message|amqp\.Consume|kafka\.NewConsumer|\.addEventListener\()`), "subscribes to a message broker or event bus"},
	{depscan.SignalServerInit, regexp.MustCompile(`\b(http\.ListenAndServe|net\.Listen|grpc\.NewServer|app\.listen\(|uvicorn\.run)\b`), "constructs and starts a server"},
}

var testFilePattern = regexp.MustCompile(`(?i)(^|/)test_|_test\.|/tests?/|\.spec\.`)

// Detect scores every file node in g and returns the entry points whose
// aggregate confidence meets threshold (DefaultThreshold if zero).
func Detect(g *callgraph.Graph, root string, exports map[string]bool, threshold float64) []depscan.EntryPoint {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var out []depscan.EntryPoint
	for _, n := range g.Nodes() {
		if n.IsExternal || n.Symbol != "" {
			continue // entry points are scored per-file, not per-symbol
		}
		signals := scoreFile(g, root, n, exports)
		if len(signals) == 0 {
			continue
		}
		confidence := aggregate(signals)
		if confidence < threshold {
			continue
		}
		out = append(out, depscan.EntryPoint{Node: n.ID, Signals: signals, Confidence: confidence})
	}
	return out
}

func scoreFile(g *callgraph.Graph, root string, n *depscan.Node, exports map[string]bool) []depscan.Signal {
	var signals []depscan.Signal

	if testFilePattern.MatchString(n.File) {
		signals = append(signals, depscan.Signal{
			Kind:       depscan.SignalTestFile,
			Rationale:  "path matches a test-file convention",
			Confidence: weight[depscan.SignalTestFile],
		})
	}

	if exports != nil && exports[n.File] {
		signals = append(signals, depscan.Signal{
			Kind:       depscan.SignalPackageExport,
			Rationale:  "re-exported from the project's declared package entry",
			Confidence: weight[depscan.SignalPackageExport],
		})
	}

	if len(g.In(n.ID)) == 0 {
		signals = append(signals, depscan.Signal{
			Kind:       depscan.SignalNoIncomingCall,
			Rationale:  "no incoming import or call edges in the call graph",
			Confidence: weight[depscan.SignalNoIncomingCall],
		})
	}

	signals = append(signals, scanFileContent(filepath.Join(root, n.File))...)
	return signals
}

func scanFileContent(path string) []depscan.Signal {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	seen := map[depscan.SignalKind]string{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		for _, p := range patterns {
			if _, ok := seen[p.kind]; ok {
				continue
			}
			if p.re.MatchString(line) {
				seen[p.kind] = strings.TrimSpace(line)
			}
		}
	}

	signals := make([]depscan.Signal, 0, len(seen))
	for _, p := range patterns {
		span, ok := seen[p.kind]
		if !ok {
			continue
		}
		signals = append(signals, depscan.Signal{
			Kind:         p.kind,
			Rationale:    p.rationale,
			EvidenceSpan: span,
			Confidence:   weight[p.kind],
		})
	}
	return signals
}

// aggregate blends signal confidences into one score, boosting files where
// two or more strong positives co-occur, per §4.E's aggregation rule.
func aggregate(signals []depscan.Signal) float64 {
	var sum float64
	strongCount := 0
	for _, s := range signals {
		sum += s.Confidence
		if _, ok := strongSignals[s.Kind]; ok && s.Confidence > 0 {
			strongCount++
		}
	}
	if strongCount >= 2 {
		sum += 0.2
	}
	if sum < 0 {
		sum = 0
	}
	if sum > 1 {
		sum = 1
	}
	return sum
}
