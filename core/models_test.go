package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "Luxury Villa|Anjuna, Goa",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A spacious four bedroom villa with a private pool and landscaped garden near the beach",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("Sea View Apartment|Goa")
	id2 := IDFromContent("Sea View Apartment|Mumbai")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestProperty_PrimaryLocality(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{name: "comma separated", location: "Anjuna, North Goa", want: "anjuna"},
		{name: "dash separated", location: "Bandra - West Mumbai", want: "bandra"},
		{name: "single locality", location: "Goa", want: "goa"},
		{name: "uppercase normalized", location: "GOA, India", want: "goa"},
		{name: "empty", location: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Property{Location: tt.location}
			if got := p.PrimaryLocality(); got != tt.want {
				t.Errorf("PrimaryLocality() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyCriteria(t *testing.T) {
	c := EmptyCriteria()

	if c.Location != "" {
		t.Errorf("Location = %q, want empty", c.Location)
	}
	if c.MinPrice != 0 {
		t.Errorf("MinPrice = %d, want 0", c.MinPrice)
	}
	if c.MaxPrice != UnboundedPrice {
		t.Errorf("MaxPrice = %d, want unbounded", c.MaxPrice)
	}
	if c.Bedrooms != nil {
		t.Errorf("Bedrooms = %v, want nil", *c.Bedrooms)
	}
	if c.HasPriceBound() {
		t.Error("HasPriceBound() = true for empty criteria")
	}
}

func TestCriteria_HasPriceBound(t *testing.T) {
	c := EmptyCriteria()
	c.MaxPrice = 5000000
	if !c.HasPriceBound() {
		t.Error("HasPriceBound() = false with bounded max")
	}

	c = EmptyCriteria()
	c.MinPrice = 2000000
	if !c.HasPriceBound() {
		t.Error("HasPriceBound() = false with bounded min")
	}
}

func TestGuidedSession_Reset(t *testing.T) {
	s := NewGuidedSession()
	if s.Active || s.StepIndex != -1 {
		t.Errorf("new session not inactive: active=%v step=%d", s.Active, s.StepIndex)
	}

	s.Active = true
	s.StepIndex = 2
	s.Answers = map[string]string{"location": "goa"}

	s.Reset()

	if s.Active {
		t.Error("Reset() left session active")
	}
	if s.StepIndex != -1 {
		t.Errorf("Reset() StepIndex = %d, want -1", s.StepIndex)
	}
	if s.Answers != nil {
		t.Errorf("Reset() Answers = %v, want nil", s.Answers)
	}
}

func TestIntent_Conversational(t *testing.T) {
	conversational := []Intent{
		IntentGreeting, IntentIdentityQuery, IntentThanks,
		IntentHelpRequest, IntentContactRequest,
	}
	for _, i := range conversational {
		if !i.Conversational() {
			t.Errorf("%s.Conversational() = false, want true", i)
		}
	}

	search := []Intent{
		IntentStatsQuery, IntentRecommendationQuery,
		IntentPropertySearch, IntentNonProperty,
	}
	for _, i := range search {
		if i.Conversational() {
			t.Errorf("%s.Conversational() = true, want false", i)
		}
	}
}
