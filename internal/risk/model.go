package risk

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/reachlab/depscan"
)

// ModelVersion is the on-disk format tag a serialized LogisticModel
// carries. Load rejects any file whose Version doesn't match: there is
// exactly one format so far, so "migrated or rejected cleanly" always
// takes the rejection branch.
const ModelVersion = 1

// LogisticModel is §4.H's mode 2: a logistic-regression model trained by
// gradient descent over the feedback store's frozen feature vectors.
type LogisticModel struct {
	Version int       `json:"version"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// TrainOptions tunes the gradient descent in Train.
type TrainOptions struct {
	LearningRate float64
	Iterations   int
	L2           float64
}

// DefaultTrainOptions is tuned for the small, noisy feedback datasets this
// model actually sees (tens to low thousands of records), not the
// large-batch regime gradient descent is usually configured for.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{LearningRate: 0.1, Iterations: 500, L2: 0.001}
}

// Train fits a logistic regression model against records by full-batch
// gradient descent on binary cross-entropy loss with L2 regularization.
// Unsure verdicts carry no training signal and are skipped.
func Train(records []depscan.Feedback, opts TrainOptions) (*LogisticModel, error) {
	if opts.LearningRate <= 0 {
		opts.LearningRate = DefaultTrainOptions().LearningRate
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultTrainOptions().Iterations
	}

	var x [][]float64
	var y []float64
	for _, r := range records {
		switch r.Verdict {
		case depscan.TruePositive:
			x = append(x, r.FeaturesFrozen)
			y = append(y, 1)
		case depscan.FalsePositive:
			x = append(x, r.FeaturesFrozen)
			y = append(y, 0)
		}
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("risk: no labeled feedback to train on")
	}

	n := len(x[0])
	for _, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("risk: inconsistent feature vector length %d, want %d", len(row), n)
		}
	}

	w := make([]float64, n)
	var b float64
	m := float64(len(x))

	for iter := 0; iter < opts.Iterations; iter++ {
		gradW := make([]float64, n)
		var gradB float64
		for i, row := range x {
			pred := sigmoid(dot(w, row) + b)
			residual := pred - y[i]
			for j, xij := range row {
				gradW[j] += residual * xij
			}
			gradB += residual
		}
		for j := range w {
			w[j] -= opts.LearningRate * (gradW[j]/m + opts.L2*w[j])
		}
		b -= opts.LearningRate * gradB / m
	}

	return &LogisticModel{Version: ModelVersion, Weights: w, Bias: b}, nil
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// Score applies the learned model to f, using the same [0,100] scale and
// level bucketing as ScoreDefault so callers can switch between the two
// modes without touching downstream consumers.
func (m *LogisticModel) Score(f Features) depscan.RiskAssessment {
	vec := f.Vector()
	factors := make([]depscan.RiskFactor, len(vec))
	var logit float64
	for i, v := range vec {
		var w float64
		if i < len(m.Weights) {
			w = m.Weights[i]
		}
		contribution := w * v
		logit += contribution
		factors[i] = depscan.RiskFactor{Name: names[i], ContributionSigned: contribution, ValueObserved: v}
	}
	logit += m.Bias

	score := sigmoid(logit) * 100
	return depscan.RiskAssessment{
		Score:      score,
		Level:      depscan.RiskLevelForScore(score),
		TopFactors: topFactors(factors),
	}
}

// Load reads a serialized model from path, rejecting anything whose
// version tag doesn't match ModelVersion.
func Load(path string) (*LogisticModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m LogisticModel
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("risk: decode model: %w", err)
	}
	if m.Version != ModelVersion {
		return nil, fmt.Errorf("risk: unsupported model version %d (want %d)", m.Version, ModelVersion)
	}
	return &m, nil
}

// Save persists m to path atomically: write to a sibling temp file, then
// rename over the destination so a reader never observes a partial write.
func Save(path string, m *LogisticModel) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("risk: encode model: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("risk: write model: %w", err)
	}
	return os.Rename(tmp, path)
}
