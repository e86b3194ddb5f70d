package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/scan"
)

func TestForNameJSONWrites(t *testing.T) {
	result := &scan.Result{Statistics: depscan.Statistics{}, Findings: depscan.NewFindingSet()}
	var buf bytes.Buffer
	if err := ForName(JSON).Write(&buf, result); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty JSON output")
	}
}

func TestForNameUnimplementedFormatsFail(t *testing.T) {
	for _, name := range []Name{Table, SARIF, HTML, Markdown, Name("unknown")} {
		var buf bytes.Buffer
		err := ForName(name).Write(&buf, &scan.Result{})
		if err == nil {
			t.Errorf("%s: expected an error", name)
			continue
		}
		if !errors.Is(err, ErrUnimplemented) {
			t.Errorf("%s: expected ErrUnimplemented, got %v", name, err)
		}
	}
}
