package core

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entities.
// It is supplied by the catalog provider or derived from content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Catalog entries that arrive without an identifier get one derived from their
// title and location, so identical entries always map to the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UnboundedPrice marks an absent upper price bound in a Criteria.
const UnboundedPrice int64 = math.MaxInt64

// Property is a single catalog listing. It is immutable from the core's
// perspective; the catalog provider owns it and supplies it as a value
// snapshot valid for one request.
type Property struct {
	Id           ID
	Title        string
	Location     string // free text, comma-separated locality/region
	Price        int64  // currency-agnostic integer unit, non-negative
	Bedrooms     *int   // nil when unknown
	PropertyType string // villa/apartment/studio/condo/..., empty when unknown
	Amenities    []string
	ImageURL     string // display metadata, not interpreted by the core
	Description  string // display metadata, not interpreted by the core
}

// PrimaryLocality returns the text before the first comma or dash in the
// property's location, lowercased and trimmed. "Anjuna, North Goa" -> "anjuna".
func (p *Property) PrimaryLocality() string {
	loc := strings.ToLower(p.Location)
	if i := strings.IndexAny(loc, ",-"); i >= 0 {
		loc = loc[:i]
	}
	return strings.TrimSpace(loc)
}

// Criteria are structured search constraints derived from one utterance.
// They are derived fresh per input and never persisted. Absent signals keep
// their documented defaults: empty location, MinPrice 0, MaxPrice unbounded,
// nil bedrooms, empty type, empty amenity set.
type Criteria struct {
	Location     string // normalized lowercase, empty when unresolved
	MinPrice     int64
	MaxPrice     int64
	Bedrooms     *int
	PropertyType string
	Amenities    []string
}

// EmptyCriteria returns a Criteria with all fields at their documented defaults.
func EmptyCriteria() Criteria {
	return Criteria{MaxPrice: UnboundedPrice}
}

// HasPriceBound reports whether either price bound was resolved from the text.
func (c *Criteria) HasPriceBound() bool {
	return c.MinPrice > 0 || c.MaxPrice != UnboundedPrice
}

// ScoredCandidate pairs a property with its relevance score for one search call.
// Disqualified candidates violated a hard constraint and are excluded from
// results regardless of their additive score.
type ScoredCandidate struct {
	Property     *Property
	Score        int
	Disqualified bool
}

// ClarificationPrompt is returned instead of search results when the input is
// under-specified. It carries no hidden state: the next utterance is evaluated
// independently, so each suggestion must be a complete resendable reply.
type ClarificationPrompt struct {
	Question    string
	Suggestions []string
}

// GuidedSession holds the state of a guided question-and-answer flow.
// One session per end user; the caller owns the value and threads it through
// each turn. StepIndex is -1 while inactive.
type GuidedSession struct {
	Active    bool
	StepIndex int
	Answers   map[string]string
}

// NewGuidedSession returns an inactive session.
func NewGuidedSession() *GuidedSession {
	return &GuidedSession{StepIndex: -1}
}

// Reset returns the session to the inactive state and clears all answers.
func (s *GuidedSession) Reset() {
	s.Active = false
	s.StepIndex = -1
	s.Answers = nil
}

// Intent is the classified purpose of one user utterance.
type Intent int

const (
	// IntentGreeting is a salutation with no search content.
	IntentGreeting Intent = iota + 1
	// IntentIdentityQuery asks who the assistant is or what it can do.
	IntentIdentityQuery
	// IntentThanks is an acknowledgement.
	IntentThanks
	// IntentHelpRequest asks for help without naming any property concern.
	IntentHelpRequest
	// IntentContactRequest asks for an agent, dealer or phone number.
	IntentContactRequest
	// IntentStatsQuery asks about price statistics (average, range).
	IntentStatsQuery
	// IntentRecommendationQuery asks for suggestions or availability.
	IntentRecommendationQuery
	// IntentPropertySearch is any other utterance with a property keyword.
	IntentPropertySearch
	// IntentNonProperty is everything else.
	IntentNonProperty
)

// String returns the intent name for logging.
func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentIdentityQuery:
		return "identity"
	case IntentThanks:
		return "thanks"
	case IntentHelpRequest:
		return "help"
	case IntentContactRequest:
		return "contact"
	case IntentStatsQuery:
		return "stats"
	case IntentRecommendationQuery:
		return "recommendation"
	case IntentPropertySearch:
		return "property-search"
	case IntentNonProperty:
		return "non-property"
	default:
		return "unknown"
	}
}

// Conversational reports whether the intent resolves to a canned reply
// without touching the catalog.
func (i Intent) Conversational() bool {
	switch i {
	case IntentGreeting, IntentIdentityQuery, IntentThanks, IntentHelpRequest, IntentContactRequest:
		return true
	}
	return false
}
