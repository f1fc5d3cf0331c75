package dialog

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"

	"github.com/rynalabs/ryna/core"
	"github.com/rynalabs/ryna/extract"
)

var (
	bedroomRangePattern = regexp.MustCompile(`(\d+)\s*(?:or|to|-|/|\s)\s*(\d+)`)
	approxPattern       = regexp.MustCompile(`(?i)around|about|approx|~|approximately`)
)

// approxSpread is the band offered around an approximate price.
const approxSpread = 0.2

// Detector finds ambiguities in search utterances that are worth a
// clarifying question before running the ranking engine.
type Detector struct {
	logger *slog.Logger
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithDetectorLogger sets a custom logger.
// Default is slog.Default().
func WithDetectorLogger(logger *slog.Logger) DetectorOption {
	return func(d *Detector) {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
	}
}

// NewDetector creates a new detector.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Detect checks the utterance for ambiguities in a fixed order, short
// circuiting on the first hit: a bare numeric range read as a bedroom
// question, a near-miss location against the catalog, then an approximate
// price. Returns false when nothing needs clarifying.
func (d *Detector) Detect(text string, criteria core.Criteria, properties []core.Property) (core.ClarificationPrompt, bool) {
	if m := bedroomRangePattern.FindStringSubmatch(text); m != nil {
		d.logger.Debug("ambiguous bedroom range", "low", m[1], "high", m[2])
		return core.ClarificationPrompt{
			Question:    fmt.Sprintf("Did you mean %s BHK or %s BHK?", m[1], m[2]),
			Suggestions: []string{m[1], m[2]},
		}, true
	}

	if criteria.Location == "" && len(properties) > 0 {
		if candidate, distance, ok := extract.MatchLocation(text, properties); ok && distance > 0 {
			d.logger.Debug("fuzzy location candidate", "candidate", candidate, "distance", distance)
			return core.ClarificationPrompt{
				Question:    fmt.Sprintf("Did you mean %q?", candidate),
				Suggestions: []string{candidate, "No, something else"},
			}, true
		}
	}

	if approxPattern.MatchString(text) && criteria.HasPriceBound() {
		approx := criteria.MaxPrice
		if approx == core.UnboundedPrice {
			approx = criteria.MinPrice
		}
		low := int64(math.Floor(float64(approx) * (1 - approxSpread)))
		high := int64(math.Ceil(float64(approx) * (1 + approxSpread)))
		return core.ClarificationPrompt{
			Question: fmt.Sprintf("Do you mean properties up to %s or a range around it?", FormatPrice(approx)),
			Suggestions: []string{
				fmt.Sprintf("Up to %d", approx),
				fmt.Sprintf("Range %d-%d", low, high),
			},
		}, true
	}

	return core.ClarificationPrompt{}, false
}
