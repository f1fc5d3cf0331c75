package extract

import (
	"testing"

	"github.com/rynalabs/ryna/core"
	"github.com/stretchr/testify/assert"
)

func fuzzyCatalog() []core.Property {
	return []core.Property{
		{Title: "Seaside Villa", Location: "Goa, India", Price: 9_000_000},
		{Title: "City Flat", Location: "Mumbai - Andheri", Price: 7_000_000},
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "", b: "", want: 0},
		{a: "goa", b: "", want: 3},
		{a: "", b: "goa", want: 3},
		{a: "goa", b: "goa", want: 0},
		{a: "goaa", b: "goa", want: 1},
		{a: "gao", b: "goa", want: 2},
		{a: "mumbay", b: "mumbai", want: 1},
		{a: "kitten", b: "sitting", want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "levenshtein(%q, %q)", tt.a, tt.b)
	}
}

func TestMatchLocation_ExactContainment(t *testing.T) {
	loc, distance, ok := MatchLocation("anything near goa maybe", fuzzyCatalog())

	assert.True(t, ok)
	assert.Equal(t, "goa, india", loc)
	assert.Equal(t, 0, distance)
}

func TestMatchLocation_TitleContainment(t *testing.T) {
	loc, distance, ok := MatchLocation("the seaside one", fuzzyCatalog())

	assert.True(t, ok)
	assert.Equal(t, "goa, india", loc)
	assert.Equal(t, 0, distance)
}

func TestMatchLocation_FuzzyWithinBound(t *testing.T) {
	loc, distance, ok := MatchLocation("flats in mumbay please", fuzzyCatalog())

	assert.True(t, ok)
	assert.Equal(t, "mumbai - andheri", loc)
	assert.Equal(t, 1, distance)
}

func TestMatchLocation_BeyondBound(t *testing.T) {
	_, _, ok := MatchLocation("show me properties in bangalore", fuzzyCatalog())

	assert.False(t, ok)
}

func TestMatchLocation_ShortTokensSkipped(t *testing.T) {
	// "go" is one edit from "goa" but too short to be trusted.
	_, _, ok := MatchLocation("go on", fuzzyCatalog())

	assert.False(t, ok)
}

func TestMatchLocation_EmptyCatalog(t *testing.T) {
	_, _, ok := MatchLocation("villa in goa", nil)

	assert.False(t, ok)
}
