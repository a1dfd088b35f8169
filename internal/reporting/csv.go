package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"compound-risk-lab/internal/domain"
)

// DefaultScoresPath is the default output path for wallet scores.
const DefaultScoresPath = "wallet_risk_scores.csv"

// RenderScoresCSV renders wallet scores as CSV string, one row per wallet in the given order.
// Fields containing commas, quotes or newlines are quoted.
func RenderScoresCSV(scores []*domain.WalletScore) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Header
	_ = w.Write([]string{"wallet_id", "score"})

	// Rows
	for _, s := range scores {
		if s == nil {
			continue
		}
		_ = w.Write([]string{s.WalletID, strconv.Itoa(s.Score)})
	}

	// Writes to a bytes.Buffer cannot fail.
	w.Flush()
	return buf.String()
}

// WriteScoresCSV writes wallet scores to path, creating parent directories as needed.
func WriteScoresCSV(path string, scores []*domain.WalletScore) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(RenderScoresCSV(scores)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
