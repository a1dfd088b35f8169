// Package features reduces a wallet's transfer history to a fixed feature vector.
package features

import "compound-risk-lab/internal/domain"

const (
	activityPerTx = 10
	activityCeil  = 100
)

// Reduce computes the feature vector for a transfer list in a single pass.
// Missing or non-numeric values contribute 0 to the mean; missing assets do not
// count towards diversity. Never fails.
func Reduce(transfers []domain.TransferRecord) domain.FeatureVector {
	if len(transfers) == 0 {
		return domain.FeatureVector{}
	}

	txCount := len(transfers)
	sum := 0.0
	assets := make(map[string]struct{})

	for _, t := range transfers {
		if t.Value != nil {
			sum += *t.Value
		}
		if t.Asset != nil {
			assets[*t.Asset] = struct{}{}
		}
	}

	return domain.FeatureVector{
		TxCount:       txCount,
		AvgValue:      sum / float64(txCount),
		UniqueAssets:  len(assets),
		ActivityScore: ActivityScore(txCount),
	}
}

// ActivityScore returns min(txCount*10, 100), floored at 0.
func ActivityScore(txCount int) int {
	if txCount <= 0 {
		return 0
	}
	return min(txCount*activityPerTx, activityCeil)
}
