package intent

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/rynalabs/ryna/core"
)

var (
	greetingPattern = regexp.MustCompile(`(?i)^(hi|hello|hey|good morning|good afternoon|good evening|greetings)$`)
	identityPattern = regexp.MustCompile(`(?i)who are you|what is your name|tell me about yourself|what can you do`)
	thanksPattern   = regexp.MustCompile(`(?i)thank you|thanks|appreciate|grateful`)
	helpPattern     = regexp.MustCompile(`(?i)help|assist|support`)
	searchyPattern  = regexp.MustCompile(`(?i)find|search|property|house|apartment`)
	contactPattern  = regexp.MustCompile(`(?i)contact|phone|call|number|dealer|agent`)
	statsPattern    = regexp.MustCompile(`(?i)average|mean|median|price range|price in|range of prices|what is the price`)
	suggestPattern  = regexp.MustCompile(`(?i)suggest|recommend|show me|find me|looking for|available|any listings|help me find`)
	propertyPattern = regexp.MustCompile(`(?i)property|properties|house|home|apartment|flat|bhk|bedroom|buy|rent|sale|listing|real estate|condo|villa|townhouse|studio`)
)

// rule pairs a predicate with the intent it recognizes.
type rule struct {
	match  func(text string) bool
	intent core.Intent
}

// Classifier assigns an intent to each utterance using a fixed-priority
// rule cascade. The first matching rule wins.
type Classifier struct {
	rules  []rule
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClassifier creates a new classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		logger: slog.Default(),
	}

	c.rules = []rule{
		{match: greetingPattern.MatchString, intent: core.IntentGreeting},
		{match: identityPattern.MatchString, intent: core.IntentIdentityQuery},
		{match: thanksPattern.MatchString, intent: core.IntentThanks},
		{
			// Help wording only counts when the text is not already a search.
			match: func(text string) bool {
				return helpPattern.MatchString(text) && !searchyPattern.MatchString(text)
			},
			intent: core.IntentHelpRequest,
		},
		{match: contactPattern.MatchString, intent: core.IntentContactRequest},
		{match: statsPattern.MatchString, intent: core.IntentStatsQuery},
		{match: suggestPattern.MatchString, intent: core.IntentRecommendationQuery},
		{match: propertyPattern.MatchString, intent: core.IntentPropertySearch},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Classify returns the intent of one utterance.
// Text matching no rule is classified as IntentNonProperty.
func (c *Classifier) Classify(text string) core.Intent {
	trimmed := strings.TrimSpace(text)

	for _, r := range c.rules {
		if r.match(trimmed) {
			c.logger.Debug("classified intent", "intent", r.intent)
			return r.intent
		}
	}

	return core.IntentNonProperty
}
