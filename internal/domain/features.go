package domain

// FeatureVector is the fixed-shape summary of a wallet's protocol transfers.
// Every field derives from the transfer list alone.
type FeatureVector struct {
	TxCount       int     // number of transfers
	AvgValue      float64 // mean transfer value, 0 when no transfers
	UniqueAssets  int     // distinct asset identifiers seen
	ActivityScore int     // min(TxCount*10, 100)
}

// IsEmpty reports whether the vector describes a wallet with no activity.
func (f FeatureVector) IsEmpty() bool {
	return f.TxCount == 0
}
