package reporting

import (
	"sort"
	"time"

	"compound-risk-lab/internal/domain"
)

// bandWidth is the width of each score band in the summary.
const bandWidth = 200

// Summary aggregates a scoring run for the Markdown report.
type Summary struct {
	RunID         string // optional, see idhash.ComputeRunID
	GeneratedAt   time.Time
	WalletCount   int
	FetchFailures int
	InactiveCount int // wallets with no protocol transfers

	MinScore  int
	MaxScore  int
	MeanScore float64

	Bands []ScoreBand
	Top   []*domain.WalletScore // highest scores first
}

// ScoreBand counts wallets whose score falls in [Low, High].
type ScoreBand struct {
	Low   int
	High  int
	Count int
}

// BuildSummary aggregates scores into a Summary. topN limits the Top list.
func BuildSummary(scores []*domain.WalletScore, topN int, now time.Time) *Summary {
	s := &Summary{
		GeneratedAt: now.UTC(),
		Bands:       newBands(),
	}

	var valid []*domain.WalletScore
	for _, ws := range scores {
		if ws != nil {
			valid = append(valid, ws)
		}
	}
	if len(valid) == 0 {
		return s
	}

	s.WalletCount = len(valid)
	s.MinScore = valid[0].Score
	s.MaxScore = valid[0].Score
	total := 0
	for _, ws := range valid {
		total += ws.Score
		if ws.Score < s.MinScore {
			s.MinScore = ws.Score
		}
		if ws.Score > s.MaxScore {
			s.MaxScore = ws.Score
		}
		if ws.FetchFailed {
			s.FetchFailures++
		}
		if ws.Features.IsEmpty() {
			s.InactiveCount++
		}
		s.Bands[bandIndex(ws.Score)].Count++
	}
	s.MeanScore = float64(total) / float64(len(valid))

	ranked := make([]*domain.WalletScore, len(valid))
	copy(ranked, valid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	s.Top = ranked

	return s
}

func newBands() []ScoreBand {
	var bands []ScoreBand
	for low := domain.ScoreMin; low < domain.ScoreMax; low += bandWidth {
		high := low + bandWidth - 1
		if high+1 >= domain.ScoreMax {
			high = domain.ScoreMax
		}
		bands = append(bands, ScoreBand{Low: low, High: high})
	}
	return bands
}

func bandIndex(score int) int {
	idx := score / bandWidth
	if idx >= (domain.ScoreMax-domain.ScoreMin)/bandWidth {
		idx = (domain.ScoreMax-domain.ScoreMin)/bandWidth - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
