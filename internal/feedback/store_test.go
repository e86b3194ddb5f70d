package feedback

import (
	"testing"
	"time"

	"github.com/reachlab/depscan"
)

func TestAppendAndAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []depscan.Feedback{
		{VulnerabilityID: "CVE-2024-0001", Verdict: depscan.TruePositive, FeaturesFrozen: []float64{1, 0}, Timestamp: time.Unix(1000, 0).UTC()},
		{VulnerabilityID: "CVE-2024-0002", Verdict: depscan.FalsePositive, FeaturesFrozen: []float64{0, 1}, Timestamp: time.Unix(2000, 0).UTC()},
	}
	for _, rec := range want {
		if err := s.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].VulnerabilityID != want[i].VulnerabilityID || got[i].Verdict != want[i].Verdict {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != len(want) {
		t.Errorf("Count = %d, want %d", count, len(want))
	}
}

func TestAllOnMissingStoreReturnsEmpty(t *testing.T) {
	s := &Store{Path: t.TempDir() + "/does-not-exist.jsonl"}
	got, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil records for a missing store, got %+v", got)
	}
}
