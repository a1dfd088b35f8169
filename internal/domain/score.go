package domain

// Score bounds.
const (
	ScoreMin = 0
	ScoreMax = 1000
)

// WalletScore is the per-wallet pipeline output.
// Only WalletID and Score are exported to the CSV.
type WalletScore struct {
	WalletID    string        // lowercased wallet address
	Score       int           // risk score in [ScoreMin, ScoreMax]
	Features    FeatureVector // features the score was computed from
	FetchFailed bool          // true if the provider call failed and an empty history was used
}
