package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"showphaze/models"
)

func candidates(names ...string) []models.CatalogPosition {
	out := make([]models.CatalogPosition, len(names))
	for i, n := range names {
		out[i] = models.CatalogPosition{ID: n + "-id", PositionName: n}
	}
	return out
}

func TestScoreExactMatch(t *testing.T) {
	assert.Equal(t, 100, Score("waiter", "waiter"))
}

func TestScoreCaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, 100, Score("  Waiter ", "waiter"))
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("photographer", "videographer")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score("photographer", "videographer"))
	}
}

func TestBestMatchSelectsClosest(t *testing.T) {
	cands := candidates("bartender", "waiter", "chef")
	got, ok := BestMatch("waiters", cands)
	assert.True(t, ok)
	assert.Equal(t, "waiter", got.PositionName)
}

func TestBestMatchRejectsBelowThreshold(t *testing.T) {
	cands := candidates("bartender", "chef")
	_, ok := BestMatch("astronaut", cands)
	assert.False(t, ok)
}

func TestBestMatchThresholdIsStrict(t *testing.T) {
	// Bigram overlap of "abcde" vs "abcdx" is 2*3/(4+4): a score of
	// exactly 75, which must not clear the strict threshold.
	assert.Equal(t, MatchThreshold, Score("abcde", "abcdx"))
	_, ok := BestMatch("abcde", candidates("abcdx"))
	assert.False(t, ok)

	cands := candidates("waiter")
	got, ok := BestMatch("waiter", cands)
	assert.True(t, ok)
	assert.Equal(t, "waiter", got.PositionName)
}

func TestBestMatchTieBreakFirstCandidate(t *testing.T) {
	// Two identical candidate names: the first in catalog order wins.
	cands := []models.CatalogPosition{
		{ID: "first", PositionName: "waiter"},
		{ID: "second", PositionName: "waiter"},
	}
	got, ok := BestMatch("waiter", cands)
	assert.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestBestMatchEmptyCandidates(t *testing.T) {
	_, ok := BestMatch("waiter", nil)
	assert.False(t, ok)
}
