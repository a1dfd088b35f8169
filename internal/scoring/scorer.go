// Package scoring maps wallet feature vectors to bounded risk scores.
package scoring

import (
	"math"

	"compound-risk-lab/internal/domain"
)

// Scoring weights. These are tuned constants with no calibration source;
// keep them as literals.
const (
	BaselineScore  = 100  // score for wallets with no protocol activity
	TxCountWeight  = 20   // points per transfer
	ValueDivisor   = 1000 // avg value is scaled down by this before capping
	ValueCap       = 50   // max contribution of avg value
	AssetWeight    = 10   // points per distinct asset
	ActivityWeight = 2    // multiplier on the capped activity score
)

// Scorer computes a risk score from features.
type Scorer interface {
	Score(features domain.FeatureVector) int
}

// RiskScorer is the fixed linear scoring formula.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Compile-time interface check.
var _ Scorer = (*RiskScorer)(nil)

// Score returns a score in [domain.ScoreMin, domain.ScoreMax].
// Wallets without transfers get BaselineScore; otherwise the weighted sum is
// truncated toward zero and clamped.
func (s *RiskScorer) Score(f domain.FeatureVector) int {
	if f.TxCount == 0 {
		return BaselineScore
	}

	valueTerm := math.Min(f.AvgValue/ValueDivisor, ValueCap)
	if math.IsNaN(valueTerm) {
		valueTerm = 0
	}

	raw := float64(f.TxCount)*TxCountWeight +
		valueTerm +
		float64(f.UniqueAssets)*AssetWeight +
		float64(f.ActivityScore)*ActivityWeight

	return clamp(raw)
}

// clamp truncates raw and bounds it to the score range. Bounds are applied on
// the float so very large inputs cannot overflow the int conversion.
func clamp(raw float64) int {
	if raw >= domain.ScoreMax {
		return domain.ScoreMax
	}
	if raw <= domain.ScoreMin {
		return domain.ScoreMin
	}
	return int(raw)
}
