package depscan

import "time"

// FeedbackVerdict is the human judgment recorded against a finding, used as
// training signal for the learned risk model.
type FeedbackVerdict string

const (
	TruePositive  FeedbackVerdict = "true_positive"
	FalsePositive FeedbackVerdict = "false_positive"
	Unsure        FeedbackVerdict = "unsure"
)

// Feedback is a single append-only record consumed by the risk scorer's
// training path. FeaturesFrozen is the exact 16-entry feature vector that
// produced the finding's original score, captured at the time feedback was
// given so later training never needs to recompute history.
type Feedback struct {
	// ID uniquely identifies this record, so two records carrying
	// otherwise-identical fields (same vulnerability, same verdict, same
	// second-granularity timestamp) are never mistaken for duplicates by a
	// store that dedupes on content.
	ID                   string          `json:"id"`
	VulnerabilityID      string          `json:"vulnerability_id"`
	Verdict              FeedbackVerdict `json:"verdict"`
	FeaturesFrozen       []float64       `json:"features_frozen"`
	Timestamp            time.Time       `json:"timestamp"`
	OptionalRiskOverride *float64        `json:"optional_risk_override,omitempty"`
}

// Statistics summarizes one scan for the output formatters: totals,
// per-severity counts, and the degraded-input lists a well-behaved scan
// never raises an error for.
type Statistics struct {
	// ScanID identifies the scan run this Statistics summarizes, so a
	// Feedback record's OptionalRiskOverride can be traced back to the run
	// whose scoring it overrides.
	ScanID            string         `json:"scan_id"`
	TotalDependencies int            `json:"total_dependencies"`
	TotalFindings     int            `json:"total_findings"`
	ReachableFindings int            `json:"reachable_findings"`
	TaintedFindings   int            `json:"tainted_findings"`
	EntryPointCount   int            `json:"entry_point_count"`
	ManifestCount     int            `json:"manifest_count"`
	SeverityCounts    map[string]int `json:"severity_counts"`
	Elapsed           Duration       `json:"elapsed"`

	FailedManifests    []FailedManifest `json:"failed_manifests,omitempty"`
	UnavailableFeeds   []string         `json:"unavailable_feeds,omitempty"`
	TruncatedWorkspaces []string        `json:"truncated_workspaces,omitempty"`
}
