package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RenderSummaryMarkdown renders a run summary as Markdown string.
func RenderSummaryMarkdown(s *Summary) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Wallet Risk Scores\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", s.GeneratedAt.Format(time.RFC3339)))
	if s.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run ID: `%s`\n\n", s.RunID))
	}

	// Run Summary
	sb.WriteString("## Run Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Wallets Scored | %d |\n", s.WalletCount))
	sb.WriteString(fmt.Sprintf("| Fetch Failures | %d |\n", s.FetchFailures))
	sb.WriteString(fmt.Sprintf("| No Protocol Activity | %d |\n", s.InactiveCount))
	if s.WalletCount > 0 {
		sb.WriteString(fmt.Sprintf("| Min Score | %d |\n", s.MinScore))
		sb.WriteString(fmt.Sprintf("| Max Score | %d |\n", s.MaxScore))
		sb.WriteString(fmt.Sprintf("| Mean Score | %.2f |\n", s.MeanScore))
	}
	sb.WriteString("\n")

	// Distribution
	sb.WriteString("## Score Distribution\n\n")
	sb.WriteString("| Band | Wallets |\n")
	sb.WriteString("|------|---------|\n")
	for _, b := range s.Bands {
		sb.WriteString(fmt.Sprintf("| %d-%d | %d |\n", b.Low, b.High, b.Count))
	}
	sb.WriteString("\n")

	// Top wallets
	sb.WriteString("## Highest Scores\n\n")
	if len(s.Top) > 0 {
		sb.WriteString("| Wallet | Score | Tx Count | Avg Value | Assets | Activity |\n")
		sb.WriteString("|--------|-------|----------|-----------|--------|----------|\n")
		for _, ws := range s.Top {
			f := ws.Features
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.4f | %d | %d |\n",
				ws.WalletID, ws.Score, f.TxCount, f.AvgValue, f.UniqueAssets, f.ActivityScore))
		}
	} else {
		sb.WriteString("No wallets scored.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// WriteSummaryMarkdown writes the run summary to path, creating parent directories as needed.
func WriteSummaryMarkdown(path string, s *Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(RenderSummaryMarkdown(s)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
