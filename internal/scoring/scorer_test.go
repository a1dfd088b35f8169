package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compound-risk-lab/internal/domain"
	"compound-risk-lab/internal/scoring"
)

func TestRiskScorer_NoActivityBaseline(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	assert.Equal(t, 100, scorer.Score(domain.FeatureVector{}))
}

func TestRiskScorer_BaselineIgnoresOtherFields(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	score := scorer.Score(domain.FeatureVector{TxCount: 0, AvgValue: 1e9, UniqueAssets: 5, ActivityScore: 100})

	assert.Equal(t, 100, score)
}

func TestRiskScorer_TwoSameAssetTransfers(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	// 40 + 1.5 + 10 + 40 = 91.5 -> 91
	score := scorer.Score(domain.FeatureVector{TxCount: 2, AvgValue: 1500, UniqueAssets: 1, ActivityScore: 20})

	assert.Equal(t, 91, score)
}

func TestRiskScorer_NoValue(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	// 20 + 0 + 10 + 20 = 50
	score := scorer.Score(domain.FeatureVector{TxCount: 1, AvgValue: 0, UniqueAssets: 1, ActivityScore: 10})

	assert.Equal(t, 50, score)
}

func TestRiskScorer_HighValueCapped(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	// 400 + min(500, 50) + 10 + 200 = 660
	score := scorer.Score(domain.FeatureVector{TxCount: 20, AvgValue: 500000, UniqueAssets: 1, ActivityScore: 100})

	assert.Equal(t, 660, score)
}

func TestRiskScorer_ValueCapAbove50k(t *testing.T) {
	scorer := scoring.NewRiskScorer()
	base := domain.FeatureVector{TxCount: 3, UniqueAssets: 2, ActivityScore: 30}

	atCap := base
	atCap.AvgValue = 50000
	over := base
	over.AvgValue = 5_000_000

	assert.Equal(t, scorer.Score(atCap), scorer.Score(over))
	// 60 + 50 + 20 + 60
	assert.Equal(t, 190, scorer.Score(over))
}

func TestRiskScorer_ClampedToMax(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	score := scorer.Score(domain.FeatureVector{TxCount: 10000, AvgValue: 1e12, UniqueAssets: 1000, ActivityScore: 100})

	assert.Equal(t, 1000, score)
}

func TestRiskScorer_AlwaysInRange(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	for _, tx := range []int{1, 2, 7, 49, 50, 51, 1000, 10000, 1 << 40} {
		for _, avg := range []float64{0, 0.5, 999, 1e6, 1e300} {
			for _, assets := range []int{0, 1, 5, 1 << 30} {
				f := domain.FeatureVector{TxCount: tx, AvgValue: avg, UniqueAssets: assets, ActivityScore: min(tx*10, 100)}
				s := scorer.Score(f)
				assert.GreaterOrEqual(t, s, domain.ScoreMin, "%+v", f)
				assert.LessOrEqual(t, s, domain.ScoreMax, "%+v", f)
			}
		}
	}
}

func TestRiskScorer_MonotonicInTxCount(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	prev := -1
	for tx := 0; tx <= 100; tx++ {
		f := domain.FeatureVector{TxCount: tx, AvgValue: 1234, UniqueAssets: 2, ActivityScore: 40}
		s := scorer.Score(f)
		if tx > 0 {
			assert.GreaterOrEqual(t, s, prev, "tx=%d", tx)
		}
		prev = s
	}
}

func TestRiskScorer_TruncatesFraction(t *testing.T) {
	scorer := scoring.NewRiskScorer()

	// 20 + 0.999 + 0 + 20 = 40.999 -> 40
	score := scorer.Score(domain.FeatureVector{TxCount: 1, AvgValue: 999, ActivityScore: 10})

	assert.Equal(t, 40, score)
}

func TestRiskScorer_SatisfiesInterface(t *testing.T) {
	var s scoring.Scorer = scoring.NewRiskScorer()
	assert.Equal(t, 100, s.Score(domain.FeatureVector{}))
}
