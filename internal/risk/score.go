package risk

import (
	"sort"

	"github.com/reachlab/depscan"
)

// topFactorCount bounds how many features ScoreDefault and LogisticModel.Score
// surface in RiskAssessment.TopFactors.
const topFactorCount = 5

// perFeatureWeight is sized so that every positively-signed feature at 1.0
// and every negatively-signed feature at 0 sums to exactly 100 -- i.e. the
// full [0,100] range, including critical, is actually reachable. Splitting
// the budget evenly across all 16 regardless of sign would cap the maximum
// score well under 100, since six of the sixteen features only ever
// subtract.
var perFeatureWeight = 100.0 / float64(positiveFeatureCount())

func positiveFeatureCount() int {
	n := 0
	for _, s := range defaultSign {
		if s > 0 {
			n++
		}
	}
	return n
}

// ScoreDefault implements §4.H's mode 1: a fixed weighted sum over the
// feature vector, clamped to [0,100] and bucketed by
// depscan.RiskLevelForScore.
func ScoreDefault(f Features) depscan.RiskAssessment {
	vec := f.Vector()
	factors := make([]depscan.RiskFactor, len(vec))
	var sum float64
	for i, v := range vec {
		contribution := defaultSign[i] * perFeatureWeight * v
		sum += contribution
		factors[i] = depscan.RiskFactor{Name: names[i], ContributionSigned: contribution, ValueObserved: v}
	}

	score := sum
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return depscan.RiskAssessment{
		Score:      score,
		Level:      depscan.RiskLevelForScore(score),
		TopFactors: topFactors(factors),
	}
}

// topFactors sorts factors by absolute contribution, descending, and
// returns at most topFactorCount of them without mutating the caller's
// slice order.
func topFactors(factors []depscan.RiskFactor) []depscan.RiskFactor {
	ranked := make([]depscan.RiskFactor, len(factors))
	copy(ranked, factors)
	sort.Slice(ranked, func(i, j int) bool {
		return absf(ranked[i].ContributionSigned) > absf(ranked[j].ContributionSigned)
	})
	if len(ranked) > topFactorCount {
		ranked = ranked[:topFactorCount]
	}
	return ranked
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
