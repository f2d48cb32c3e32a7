package catalog

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"showphaze/models"
)

// MatchThreshold is the minimum similarity score a candidate must strictly
// exceed to be accepted. A score of exactly 75 is not a match.
const MatchThreshold = 75

// similarityMetric is shared across calls; SorensenDice over bigrams is
// deterministic and case-insensitivity is handled by lowercasing inputs.
var similarityMetric = metrics.NewSorensenDice()

// Score computes a 0-100 similarity score between a free-text name and a
// candidate position name.
func Score(name, candidate string) int {
	a := strings.ToLower(strings.TrimSpace(name))
	b := strings.ToLower(strings.TrimSpace(candidate))
	return int(math.Round(strutil.Similarity(a, b, similarityMetric) * 100))
}

// BestMatch selects the candidate whose name scores highest against the given
// free-text name. Ties go to the first candidate in catalog order. The second
// return is false when no candidate strictly exceeds MatchThreshold.
func BestMatch(name string, candidates []models.CatalogPosition) (models.CatalogPosition, bool) {
	bestScore := -1
	bestIdx := -1
	for i, cand := range candidates {
		if s := Score(name, cand.PositionName); s > bestScore {
			bestScore = s
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestScore <= MatchThreshold {
		return models.CatalogPosition{}, false
	}
	return candidates[bestIdx], true
}
