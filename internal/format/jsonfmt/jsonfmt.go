// Package jsonfmt is depscan's canonical output format: a Result is written
// as one document holding its statistics and a flat findings array, which
// decodes back into depscan.Statistics and []depscan.ReachabilityFinding.
// The FindingSet's per-workspace grouping is not kept in the document.
package jsonfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reachlab/depscan/internal/scan"
)

// Writer renders a scan.Result as a single pretty-printed JSON document:
// statistics plus the deduplicated, risk-sorted finding list, flattened out
// of Result's internal map-of-maps representation into a plain array a
// consumer can decode without depending on internal/scan at all.
type Writer struct {
	// Indent overrides the default two-space indent when non-empty.
	Indent string
}

// Write implements format.Writer.
func (w Writer) Write(out io.Writer, result *scan.Result) error {
	if result == nil {
		return fmt.Errorf("jsonfmt: nil result")
	}
	indent := w.Indent
	if indent == "" {
		indent = "  "
	}

	findings := result.Findings.All()
	doc := struct {
		Statistics interface{}   `json:"statistics"`
		Findings   []interface{} `json:"findings"`
	}{
		Statistics: result.Statistics,
		Findings:   make([]interface{}, len(findings)),
	}
	for i, f := range findings {
		doc.Findings[i] = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("jsonfmt: encode result: %w", err)
	}
	return nil
}
