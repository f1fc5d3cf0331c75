package extract

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rynalabs/ryna/ai"
	"github.com/rynalabs/ryna/core"
)

// propertyTypes is the fixed vocabulary checked in priority order;
// the first literal substring match wins.
var propertyTypes = []string{"villa", "apartment", "studio", "condo"}

// amenityKeywords is the fixed amenity vocabulary matched by substring.
var amenityKeywords = []string{
	"gym", "swimming", "pool", "parking", "garden", "balcony", "beach",
	"security", "laundry", "elevator", "garage", "rooftop", "concierge",
	"pet friendly", "solar",
}

const unitAlternatives = `(lakh|lac|crore|k|m|million)`

var (
	locationPattern = regexp.MustCompile(`(?i)\b(?:in|near|at)\s+([a-zA-Z ]{2,30})`)
	betweenPattern  = regexp.MustCompile(`(?i)between\s+(\d+[\d.,]*)\s*` + unitAlternatives + `?\s*(?:and|-|to)\s*(\d+[\d.,]*)\s*` + unitAlternatives + `?`)
	underPattern    = regexp.MustCompile(`(?i)(?:under|below|less than|upto|up to|max(?:\s+price)?)\s+(\d+[\d.,]*)\s*` + unitAlternatives + `?`)
	overPattern     = regexp.MustCompile(`(?i)(?:over|above|more than|at least|min(?:\s+price)?)\s+(\d+[\d.,]*)\s*` + unitAlternatives + `?`)
	priceContext    = regexp.MustCompile(`(?i)price|budget|cost|under|below|upto|up to|max|min|less than|crore|lakh|lac`)
	bedroomsDigit   = regexp.MustCompile(`(?i)(\d+)\s*(?:bhk|bedrooms|bedroom|beds|bed)`)
	bedroomsWord    = regexp.MustCompile(`(?i)(one|two|three|four|five|six|seven|eight|nine|ten)\s*(?:bhk|bedrooms|bedroom|beds|bed)`)
)

// locationStopWords end the word sequence captured by the location fallback,
// so "in goa under 50 lakh" resolves to "goa" and not "goa under".
var locationStopWords = map[string]bool{
	"under": true, "below": true, "over": true, "above": true, "between": true,
	"with": true, "for": true, "less": true, "more": true, "max": true,
	"min": true, "upto": true, "up": true, "around": true, "about": true,
	"and": true, "near": true, "priced": true,
	"villa": true, "apartment": true, "studio": true, "condo": true,
	"flat": true, "house": true, "bhk": true, "bedroom": true, "bedrooms": true,
}

// Extractor converts raw utterances into structured search criteria.
// Extraction is total and deterministic; a missing signal leaves the
// corresponding Criteria field at its default.
type Extractor struct {
	places ai.PlaceRecognizer
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithPlaceRecognizer sets an optional named-entity place recognizer.
// When absent, location extraction uses only the pattern fallback.
func WithPlaceRecognizer(places ai.PlaceRecognizer) Option {
	return func(e *Extractor) error {
		e.places = places
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExtractor creates a new extractor.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Extract derives search criteria from one utterance.
func (e *Extractor) Extract(text string) core.Criteria {
	criteria := core.EmptyCriteria()
	lower := strings.ToLower(text)

	criteria.Location = e.extractLocation(lower)
	e.extractPrice(lower, &criteria)
	criteria.Bedrooms = extractBedrooms(lower)

	for _, pt := range propertyTypes {
		if strings.Contains(lower, pt) {
			criteria.PropertyType = pt
			break
		}
	}

	for _, kw := range amenityKeywords {
		if strings.Contains(lower, kw) {
			criteria.Amenities = append(criteria.Amenities, kw)
		}
	}

	e.logger.Debug("extracted criteria",
		"location", criteria.Location,
		"minPrice", criteria.MinPrice,
		"maxPrice", criteria.MaxPrice,
		"type", criteria.PropertyType,
		"amenities", len(criteria.Amenities))

	return criteria
}

// extractLocation prefers the place recognizer, falling back to the
// "in|near|at <word sequence>" pattern.
func (e *Extractor) extractLocation(lower string) string {
	if e.places != nil {
		if places := e.places.Places(lower); len(places) > 0 {
			return strings.ToLower(places[0])
		}
	}

	m := locationPattern.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}

	// Cut the captured sequence at the first bound/context word.
	words := strings.Fields(m[1])
	kept := words[:0]
	for _, w := range words {
		if locationStopWords[w] {
			break
		}
		kept = append(kept, w)
	}

	return strings.TrimSpace(strings.Join(kept, " "))
}

// extractPrice resolves the price bounds, trying patterns in priority order:
// "between X and Y", then independent under/over bounds, then a bare number
// in a price-indicating sentence.
func (e *Extractor) extractPrice(lower string, criteria *core.Criteria) {
	if m := betweenPattern.FindStringSubmatch(lower); m != nil {
		a := ParseNumberWithUnit(m[1], m[2])
		b := ParseNumberWithUnit(m[3], m[4])
		// Operand order in text is not trusted.
		criteria.MinPrice = min(a, b)
		criteria.MaxPrice = max(a, b)
		return
	}

	if m := underPattern.FindStringSubmatch(lower); m != nil {
		criteria.MaxPrice = ParseNumberWithUnit(m[1], m[2])
	}
	if m := overPattern.FindStringSubmatch(lower); m != nil {
		criteria.MinPrice = ParseNumberWithUnit(m[1], m[2])
	}
	if criteria.HasPriceBound() {
		return
	}

	// No directional bound matched. If the sentence talks about money at all,
	// treat the first bare number as an upper bound.
	if priceContext.MatchString(lower) {
		if m := numberWithUnitPattern.FindStringSubmatch(lower); m != nil {
			if v := ParseNumberWithUnit(m[1], m[2]); v > 0 {
				criteria.MaxPrice = v
			}
		}
	}
}

// extractBedrooms matches a digit or small-number word followed by a
// bedroom unit word ("2 bhk", "three bedrooms").
func extractBedrooms(lower string) *int {
	if m := bedroomsDigit.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}

	if m := bedroomsWord.FindStringSubmatch(lower); m != nil {
		if v, ok := numberWords[m[1]]; ok {
			n := int(v)
			return &n
		}
	}

	return nil
}
