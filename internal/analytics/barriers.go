package analytics

import (
	"sort"

	"pulsecheck/internal/model"
)

// AnalyzeBarriers flattens every response's barrier selections into one
// ranked list. Percentage is the share of respondents who selected the
// barrier (one respondent can contribute to several barriers). Ties keep
// first-encountered order, so output is deterministic for identical input.
func AnalyzeBarriers(responses []model.Response) []model.BarrierStat {
	counts := make(map[string]int)
	var order []string
	for _, r := range responses {
		for _, b := range r.AdoptionBarriers {
			if counts[b] == 0 {
				order = append(order, b)
			}
			counts[b]++
		}
	}

	total := len(responses)
	stats := make([]model.BarrierStat, 0, len(order))
	for _, b := range order {
		stats = append(stats, model.BarrierStat{
			Barrier:    b,
			Count:      counts[b],
			Percentage: round(float64(counts[b]) / float64(total) * 100),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}
