package depscan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVulnerabilityMerge(t *testing.T) {
	epssA := 0.12
	epssB := 0.45
	pctB := 0.9

	osv := &Vulnerability{
		CanonicalID: "CVE-2024-0001",
		Aliases:     []string{"GHSA-xxxx-yyyy-zzzz"},
		Summary:     "osv summary",
		Severity:    Medium,
		CVSSBase:    5.4,
		Sources:     []string{"osv"},
		EPSSScore:   &epssA,
	}
	oval := &Vulnerability{
		CanonicalID: "CVE-2024-0001",
		Severity:    High,
		CVSSBase:    7.1,
		Sources:     []string{"oval"},
		KEVListed:   true,
		KEVDueDate:  "2024-06-01",
		EPSSScore:   &epssB,
		EPSSPercentile: &pctB,
	}

	osv.Merge(oval)

	want := []string{"osv", "oval"}
	if !cmp.Equal(want, osv.Sources) {
		t.Error(cmp.Diff(want, osv.Sources))
	}
	if osv.Severity != High {
		t.Errorf("severity = %v, want %v", osv.Severity, High)
	}
	if osv.CVSSBase != 7.1 {
		t.Errorf("cvss base = %v, want 7.1", osv.CVSSBase)
	}
	if !osv.KEVListed || osv.KEVDueDate != "2024-06-01" {
		t.Errorf("kev fields not merged: listed=%v due=%v", osv.KEVListed, osv.KEVDueDate)
	}
	if osv.EPSSScore == nil || *osv.EPSSScore != epssB {
		t.Errorf("epss score not merged: %v", osv.EPSSScore)
	}
}

func TestUnionStringsDedupes(t *testing.T) {
	got := unionStrings([]string{"a", "b"}, []string{"b", "c"})
	want := []string{"a", "b", "c"}
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
