package risk

import (
	"context"

	"github.com/quay/zlog"

	"github.com/reachlab/depscan"
)

// Scorer evaluates findings with a loaded LogisticModel when present,
// falling back to the fixed default weights otherwise. Scoring never
// raises: §4.H requires a finding to always carry a RiskAssessment, even
// when the learned model is missing, mismatched, or corrupt.
type Scorer struct {
	Model *LogisticModel
}

// Score returns f's RiskAssessment under s's configured mode.
func (s *Scorer) Score(ctx context.Context, f Features) (result depscan.RiskAssessment) {
	if s == nil || s.Model == nil {
		return ScoreDefault(f)
	}
	if len(s.Model.Weights) != len(f.Vector()) {
		zlog.Warn(ctx).
			Int("want", len(f.Vector())).
			Int("got", len(s.Model.Weights)).
			Msg("risk: learned model feature count mismatch, falling back to default weights")
		return ScoreDefault(f)
	}

	defer func() {
		if r := recover(); r != nil {
			zlog.Warn(ctx).Interface("panic", r).Msg("risk: learned model scoring panicked, falling back to default weights")
			result = ScoreDefault(f)
		}
	}()
	return s.Model.Score(f)
}
