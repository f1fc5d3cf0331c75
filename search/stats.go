package search

import (
	"math"

	"github.com/rynalabs/ryna/core"
)

// PriceStats summarizes listing prices.
type PriceStats struct {
	Count int
	Min   int64
	Max   int64
	Avg   int64
}

// Stats computes price statistics over the given properties.
// The second return value is false when the slice is empty.
func Stats(properties []core.Property) (PriceStats, bool) {
	if len(properties) == 0 {
		return PriceStats{}, false
	}

	stats := PriceStats{
		Count: len(properties),
		Min:   properties[0].Price,
		Max:   properties[0].Price,
	}

	var sum int64
	for i := range properties {
		price := properties[i].Price
		if price < stats.Min {
			stats.Min = price
		}
		if price > stats.Max {
			stats.Max = price
		}
		sum += price
	}

	stats.Avg = int64(math.Round(float64(sum) / float64(stats.Count)))

	return stats, true
}

// CandidateStats computes price statistics over scored candidates.
func CandidateStats(candidates []core.ScoredCandidate) (PriceStats, bool) {
	properties := make([]core.Property, 0, len(candidates))
	for _, c := range candidates {
		properties = append(properties, *c.Property)
	}
	return Stats(properties)
}
