package search

import (
	"testing"

	"github.com/rynalabs/ryna/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		_, ok := Stats(nil)
		assert.False(t, ok)
	})

	t.Run("single listing", func(t *testing.T) {
		stats, ok := Stats([]core.Property{{Price: 5_000_000}})
		require.True(t, ok)
		assert.Equal(t, PriceStats{Count: 1, Min: 5_000_000, Max: 5_000_000, Avg: 5_000_000}, stats)
	})

	t.Run("average rounds to nearest", func(t *testing.T) {
		stats, ok := Stats([]core.Property{{Price: 1}, {Price: 2}})
		require.True(t, ok)
		assert.Equal(t, int64(1), stats.Min)
		assert.Equal(t, int64(2), stats.Max)
		assert.Equal(t, int64(2), stats.Avg) // 1.5 rounds up
	})

	t.Run("full catalog", func(t *testing.T) {
		stats, ok := Stats(testCatalog())
		require.True(t, ok)
		assert.Equal(t, 3, stats.Count)
		assert.Equal(t, int64(3_000_000), stats.Min)
		assert.Equal(t, int64(12_000_000), stats.Max)
		assert.Equal(t, int64(6_500_000), stats.Avg)
	})
}

func TestCandidateStats(t *testing.T) {
	catalog := testCatalog()
	candidates := []core.ScoredCandidate{
		{Property: &catalog[0], Score: 50},
		{Property: &catalog[2], Score: 30},
	}

	stats, ok := CandidateStats(candidates)
	require.True(t, ok)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, int64(3_000_000), stats.Min)
	assert.Equal(t, int64(4_500_000), stats.Max)
	assert.Equal(t, int64(3_750_000), stats.Avg)
}
