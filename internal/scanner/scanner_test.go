package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedScorerRange(t *testing.T) {
	scorer := NewSimulatedScorer()

	for i := 0; i < 1000; i++ {
		result := scorer.Score("example.com")

		assert.GreaterOrEqual(t, result.Overall, 60)
		assert.Less(t, result.Overall, 100)
	}
}

func TestSimulatedScorerBreakdown(t *testing.T) {
	scorer := NewSimulatedScorer()

	result := scorer.Score("example.com")

	require.Len(t, result.Breakdown, len(Categories))

	for _, category := range Categories {
		score, ok := result.Breakdown[category]

		require.True(t, ok, "missing category %q", category)
		assert.GreaterOrEqual(t, score, 60)
		assert.Less(t, score, 100)
	}
}
