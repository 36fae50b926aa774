// Package score implements the impressiveness dimensions (frequency rarity,
// game-contextualized information content, orthographic complexity) and
// their ensemble combination. Scorers are read-only over the
// frozen corpus structures and safe for concurrent use; results are produced
// fresh per query and never cached here.
package score

// Dimension names as they appear in results.
const (
	DimensionFrequency    = "frequency"
	DimensionInformation  = "information"
	DimensionOrthographic = "orthographic"
)

// Result is one dimension's verdict: a 0-100 score, the raw intermediate
// metrics that produced it, and a human-readable interpretation bucket.
type Result struct {
	Dimension      string
	Score          float64
	Metrics        map[string]float64
	Interpretation string
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rescale maps v from [low, high] to [0, 100], clamped.
func rescale(v, low, high float64) float64 {
	if high <= low {
		return 0
	}
	return clamp01((v-low)/(high-low)) * 100
}
