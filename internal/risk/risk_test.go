package risk

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/reachlab/depscan"
)

func TestScoreDefaultBucketsByFixedCutoffs(t *testing.T) {
	epss := 1.0
	f := Features{
		KnownExploitation:      1,
		ExploitProbability:     epss,
		VulnerabilitySeverity:  1,
		IsTainted:              1,
		TaintConfidence:        1,
		HasHTTPSource:          1,
		ReachabilityConfidence: 1,
		InMainFlow:             1,
		EntryPointTypeWeight:   1,
		DependencyTransitivity: 1,
	}

	assessment := ScoreDefault(f)
	if assessment.Level != depscan.RiskCritical {
		t.Fatalf("expected a maximal feature vector to score critical, got %v (score=%v)", assessment.Level, assessment.Score)
	}
	if len(assessment.TopFactors) == 0 {
		t.Error("expected top factors to be populated")
	}

	zero := ScoreDefault(Features{})
	if zero.Level != depscan.RiskVeryLow {
		t.Fatalf("expected an all-zero feature vector to score very_low, got %v", zero.Level)
	}
}

func TestScoreDefaultNegativeSignedFeaturesReduceScore(t *testing.T) {
	base := Features{VulnerabilitySeverity: 1, ReachabilityConfidence: 1}
	withSanitizer := base
	withSanitizer.HasSanitizer = 1

	a := ScoreDefault(base)
	b := ScoreDefault(withSanitizer)
	if b.Score >= a.Score {
		t.Errorf("a sanitizer on path should reduce score: without=%v with=%v", a.Score, b.Score)
	}
}

func TestTrainAndScoreRoundTrip(t *testing.T) {
	records := []depscan.Feedback{
		{Verdict: depscan.TruePositive, FeaturesFrozen: []float64{1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 1}},
		{Verdict: depscan.TruePositive, FeaturesFrozen: []float64{0.9, 0.9, 0.9, 1, 0.9, 1, 0, 0.9, 0, 1, 0, 0, 0, 0, 0.9, 1}},
		{Verdict: depscan.FalsePositive, FeaturesFrozen: []float64{0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1, 0, 0}},
		{Verdict: depscan.FalsePositive, FeaturesFrozen: []float64{0.1, 0, 0.1, 0, 0, 0, 1, 0.1, 1, 0, 1, 1, 0, 1, 0, 0}},
		{Verdict: depscan.Unsure, FeaturesFrozen: make([]float64, 16)},
	}

	model, err := Train(records, DefaultTrainOptions())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(model.Weights) != 16 {
		t.Fatalf("want 16 weights, got %d", len(model.Weights))
	}

	high := model.Score(Features{
		KnownExploitation: 1, ExploitProbability: 1, VulnerabilitySeverity: 1,
		IsTainted: 1, TaintConfidence: 1, HasHTTPSource: 1, ReachabilityConfidence: 1,
		InMainFlow: 1, EntryPointTypeWeight: 1, DependencyTransitivity: 1,
	})
	low := model.Score(Features{HasSanitizer: 1, PathLength: 1, BehindAuth: 1, HasConditionalEdge: 1, HasErrorHandler: 1, IsBackground: 1})
	if high.Score <= low.Score {
		t.Errorf("expected the true-positive-shaped vector to score higher than the false-positive-shaped one: high=%v low=%v", high.Score, low.Score)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := Save(path, model); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Bias != model.Bias {
		t.Errorf("round-tripped bias mismatch: got %v, want %v", loaded.Bias, model.Bias)
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	bad := &LogisticModel{Version: 999, Weights: []float64{1}}
	if err := Save(path, bad); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected Load to reject an unrecognized model version")
	}
}

func TestScorerFallsBackOnFeatureCountMismatch(t *testing.T) {
	s := &Scorer{Model: &LogisticModel{Version: ModelVersion, Weights: []float64{1, 2, 3}}}
	got := s.Score(context.Background(), Features{VulnerabilitySeverity: 1})
	want := ScoreDefault(Features{VulnerabilitySeverity: 1})
	if math.Abs(got.Score-want.Score) > 1e-9 {
		t.Errorf("expected fallback to default score, got %v want %v", got.Score, want.Score)
	}
}

func TestShouldRetrain(t *testing.T) {
	if ShouldRetrain(10, 0, DefaultMinRecords, DefaultGrowthFraction) {
		t.Error("should not retrain below the minimum record count")
	}
	if !ShouldRetrain(DefaultMinRecords, 0, DefaultMinRecords, DefaultGrowthFraction) {
		t.Error("should retrain the first time the minimum is crossed")
	}
	if ShouldRetrain(30, 30, DefaultMinRecords, DefaultGrowthFraction) {
		t.Error("should not retrain again with no growth since last training")
	}
	if !ShouldRetrain(36, 30, DefaultMinRecords, DefaultGrowthFraction) {
		t.Error("should retrain once growth exceeds the configured fraction")
	}
}
