package mock

import "strings"

// MockPlaceRecognizer is a test double for ai.PlaceRecognizer.
// It recognizes a fixed vocabulary of place names by substring containment,
// standing in for a real named-entity recognizer.
type MockPlaceRecognizer struct {
	// PlacesFunc is called by Places if set.
	PlacesFunc func(text string) []string

	// Known is the place vocabulary used by the default behavior.
	Known []string

	callCount int
}

// NewMockPlaceRecognizer creates a recognizer with the given place vocabulary.
func NewMockPlaceRecognizer(known ...string) *MockPlaceRecognizer {
	return &MockPlaceRecognizer{Known: known}
}

// Places returns every known place contained in the text, in vocabulary order.
func (m *MockPlaceRecognizer) Places(text string) []string {
	m.callCount++

	if m.PlacesFunc != nil {
		return m.PlacesFunc(text)
	}

	lower := strings.ToLower(text)
	var found []string
	for _, place := range m.Known {
		if strings.Contains(lower, strings.ToLower(place)) {
			found = append(found, strings.ToLower(place))
		}
	}
	return found
}

// CallCount returns how many times Places was called.
func (m *MockPlaceRecognizer) CallCount() int {
	return m.callCount
}
