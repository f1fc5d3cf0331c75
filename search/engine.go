package search

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/rynalabs/ryna/core"
)

// Additive score contributions per matched signal.
const (
	scoreLocationExact = 50
	scoreLocationTitle = 15
	scorePriceInRange  = 30
	scorePriceNear     = 5
	scoreBedroomsExact = 20
	scoreBedroomsClose = 8
	scoreTypeMatch     = 15
	scorePerAmenity    = 6
)

// priceNearFactor is the tolerated overshoot above a bounded budget for the
// soft near-budget score.
const priceNearFactor = 1.15

// DisplayLimit is the conventional number of results shown per reply.
// The engine itself returns every qualifying candidate so callers can paginate.
const DisplayLimit = 5

// CriteriaExtractor derives structured search criteria from an utterance.
type CriteriaExtractor interface {
	Extract(text string) core.Criteria
}

// Engine scores and ranks catalog properties against search criteria.
type Engine struct {
	extractor CriteriaExtractor
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new engine.
func NewEngine(extractor CriteriaExtractor, opts ...Option) (*Engine, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	e := &Engine{
		extractor: extractor,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search extracts criteria from the utterance and ranks the catalog against
// them. Returns every qualifying candidate in display order along with the
// criteria that produced them.
func (e *Engine) Search(properties []core.Property, text string) ([]core.ScoredCandidate, core.Criteria) {
	return e.SearchWithMonitor(properties, text, nil)
}

// SearchWithMonitor searches with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(properties []core.Property, text string, monitor SearchMonitor) ([]core.ScoredCandidate, core.Criteria) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(text)

	criteria := e.extractor.Extract(text)
	monitor.AfterExtraction(criteria)

	results := e.rank(properties, criteria, monitor)
	monitor.Finish(results)

	return results, criteria
}

// Rank orders the catalog against already-extracted criteria.
func (e *Engine) Rank(properties []core.Property, criteria core.Criteria) []core.ScoredCandidate {
	return e.rank(properties, criteria, &noopMonitor{})
}

func (e *Engine) rank(properties []core.Property, criteria core.Criteria, monitor SearchMonitor) []core.ScoredCandidate {
	results := make([]core.ScoredCandidate, 0, len(properties))

	for i := range properties {
		p := &properties[i]

		score, disqualified := e.Score(p, criteria)
		if disqualified {
			monitor.Disqualified(p)
			continue
		}
		monitor.Scored(p, score)

		if !qualifies(p, criteria) {
			monitor.Filtered(p, score)
			continue
		}

		results = append(results, core.ScoredCandidate{Property: p, Score: score})
	}

	// Highest score first, cheaper first among equals.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Property.Price < results[j].Property.Price
	})

	e.logger.Debug("ranked catalog",
		"candidates", len(properties),
		"qualifying", len(results))

	return results
}

// Score computes the additive relevance score for one property. The second
// return value reports disqualification: a requested location that matches
// neither the property's location nor its title excludes the property no
// matter what the other signals contribute.
func (e *Engine) Score(p *core.Property, criteria core.Criteria) (int, bool) {
	score := 0

	location := strings.ToLower(p.Location)
	title := strings.ToLower(p.Title)

	if criteria.Location != "" {
		switch {
		case strings.Contains(location, criteria.Location):
			score += scoreLocationExact
		case strings.Contains(title, criteria.Location):
			score += scoreLocationTitle
		default:
			return -1, true
		}
	}

	if criteria.HasPriceBound() {
		switch {
		case p.Price >= criteria.MinPrice && p.Price <= criteria.MaxPrice:
			score += scorePriceInRange
		case criteria.MaxPrice != core.UnboundedPrice &&
			float64(p.Price) <= float64(criteria.MaxPrice)*priceNearFactor:
			score += scorePriceNear
		}
	}

	if criteria.Bedrooms != nil && p.Bedrooms != nil {
		switch diff := absInt(*p.Bedrooms - *criteria.Bedrooms); diff {
		case 0:
			score += scoreBedroomsExact
		case 1:
			score += scoreBedroomsClose
		}
	}

	if criteria.PropertyType != "" && strings.Contains(title, criteria.PropertyType) {
		score += scoreTypeMatch
	}

	for _, wanted := range criteria.Amenities {
		for _, amenity := range p.Amenities {
			if strings.Contains(strings.ToLower(amenity), wanted) {
				score += scorePerAmenity
				break
			}
		}
	}

	return score, false
}

// qualifies applies the hard constraints checked after scoring: price must sit
// inside the requested bounds and the bedroom count may differ from a
// requested count by at most one.
func qualifies(p *core.Property, criteria core.Criteria) bool {
	if p.Price < criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice != core.UnboundedPrice && p.Price > criteria.MaxPrice {
		return false
	}

	if criteria.Bedrooms != nil {
		bedrooms := 0
		if p.Bedrooms != nil {
			bedrooms = *p.Bedrooms
		}
		if absInt(bedrooms-*criteria.Bedrooms) > 1 {
			return false
		}
	}

	return true
}

// MatchReasons lists, in a fixed order, which of the requested criteria the
// property satisfies. Used to justify a recommendation.
func MatchReasons(p *core.Property, criteria core.Criteria) []string {
	var reasons []string

	if criteria.Location != "" && strings.Contains(strings.ToLower(p.Location), criteria.Location) {
		reasons = append(reasons, "matches your location")
	}
	if criteria.Bedrooms != nil && p.Bedrooms != nil && *p.Bedrooms == *criteria.Bedrooms {
		reasons = append(reasons, fmt.Sprintf("%d BHK", *criteria.Bedrooms))
	}
	if criteria.PropertyType != "" && strings.Contains(strings.ToLower(p.Title), criteria.PropertyType) {
		reasons = append(reasons, criteria.PropertyType)
	}
	if criteria.HasPriceBound() {
		reasons = append(reasons, "within your price range")
	}

	return reasons
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
