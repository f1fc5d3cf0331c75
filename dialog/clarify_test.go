package dialog

import (
	"testing"

	"github.com/rynalabs/ryna/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clarifyCatalog() []core.Property {
	return []core.Property{
		{Title: "Seaside Villa", Location: "Goa, India", Price: 9_000_000},
		{Title: "City Flat", Location: "Mumbai - Andheri", Price: 7_000_000},
	}
}

func TestDetect_BedroomRange(t *testing.T) {
	detector := NewDetector()

	prompt, ok := detector.Detect("2 or 3 bhk in goa", core.EmptyCriteria(), clarifyCatalog())

	require.True(t, ok)
	assert.Equal(t, "Did you mean 2 BHK or 3 BHK?", prompt.Question)
	assert.Equal(t, []string{"2", "3"}, prompt.Suggestions)
}

func TestDetect_FuzzyLocation(t *testing.T) {
	detector := NewDetector()

	criteria := core.EmptyCriteria() // extractor found no location

	prompt, ok := detector.Detect("flats in mumbay", criteria, clarifyCatalog())

	require.True(t, ok)
	assert.Equal(t, `Did you mean "mumbai - andheri"?`, prompt.Question)
	assert.Equal(t, []string{"mumbai - andheri", "No, something else"}, prompt.Suggestions)
}

func TestDetect_ExactLocationNeedsNoClarification(t *testing.T) {
	detector := NewDetector()

	// A distance-0 containment match is unambiguous.
	_, ok := detector.Detect("flats around goa somewhere", core.EmptyCriteria(), clarifyCatalog())
	assert.False(t, ok)
}

func TestDetect_ApproximatePrice(t *testing.T) {
	detector := NewDetector()

	criteria := core.EmptyCriteria()
	criteria.MaxPrice = 5_000_000

	prompt, ok := detector.Detect("villas priced around 50 lakh", criteria, nil)

	require.True(t, ok)
	assert.Equal(t, "Do you mean properties up to ₹50,00,000 or a range around it?", prompt.Question)
	assert.Equal(t, []string{"Up to 5000000", "Range 4000000-6000000"}, prompt.Suggestions)
}

func TestDetect_ApproximateMinPriceOnly(t *testing.T) {
	detector := NewDetector()

	criteria := core.EmptyCriteria()
	criteria.MinPrice = 2_000_000

	prompt, ok := detector.Detect("something around 20 lakh at least", criteria, nil)

	require.True(t, ok)
	assert.Contains(t, prompt.Question, "₹20,00,000")
}

func TestDetect_OrderShortCircuits(t *testing.T) {
	detector := NewDetector()

	criteria := core.EmptyCriteria()
	criteria.MaxPrice = 3_000_000

	// Both a bedroom range and an approximation marker are present; the
	// bedroom question wins.
	prompt, ok := detector.Detect("around 2 or 3 bhk under 30 lakh", criteria, nil)

	require.True(t, ok)
	assert.Equal(t, "Did you mean 2 BHK or 3 BHK?", prompt.Question)
}

func TestDetect_NothingAmbiguous(t *testing.T) {
	detector := NewDetector()

	criteria := core.EmptyCriteria()
	criteria.Location = "goa"

	_, ok := detector.Detect("2 bhk in goa", criteria, clarifyCatalog())
	assert.False(t, ok)
}
