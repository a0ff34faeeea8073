package trace

// TraceSummary aggregates statistics from a GenerationTrace.
type TraceSummary struct {
	TotalCadres      int         `yaml:"total_cadres" json:"total_cadres"`
	PreferredCadres  int         `yaml:"preferred_cadres" json:"preferred_cadres"`
	CliqueCadres     int         `yaml:"clique_cadres" json:"clique_cadres"`
	RemainderCadres  int         `yaml:"remainder_cadres" json:"remainder_cadres"`
	PaddedPeople     int         `yaml:"padded_people" json:"padded_people"`
	MeanCliqueFill   float64     `yaml:"mean_clique_fill" json:"mean_clique_fill"` // clique size / target size, averaged over clique cadres
	SizeDistribution map[int]int `yaml:"size_distribution" json:"size_distribution"`
}

// Summarize computes aggregate statistics from a GenerationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(gt *GenerationTrace) *TraceSummary {
	summary := &TraceSummary{
		SizeDistribution: make(map[int]int),
	}
	if gt == nil {
		return summary
	}

	totalFill := 0.0
	for _, r := range gt.Cadres {
		summary.TotalCadres++
		summary.SizeDistribution[len(r.Members)]++
		summary.PaddedPeople += len(r.Padded)
		switch r.Source {
		case SourcePreferred:
			summary.PreferredCadres++
		case SourceRemainder:
			summary.RemainderCadres++
		case SourceClique:
			summary.CliqueCadres++
			if r.TargetSize > 0 {
				totalFill += float64(r.CliqueSize) / float64(r.TargetSize)
			}
		}
	}
	if summary.CliqueCadres > 0 {
		summary.MeanCliqueFill = totalFill / float64(summary.CliqueCadres)
	}

	return summary
}
