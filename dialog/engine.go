package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/rynalabs/ryna/ai"
	"github.com/rynalabs/ryna/catalog"
	"github.com/rynalabs/ryna/core"
	"github.com/rynalabs/ryna/extract"
	"github.com/rynalabs/ryna/intent"
	"github.com/rynalabs/ryna/search"
)

// displayLimit is the number of listings rendered per reply.
const displayLimit = search.DisplayLimit

// Message is one line of a reply. Suggestions, when present, are complete
// utterances the caller may offer as quick replies. Property is set on
// listing lines so callers can render a card instead of plain text.
type Message struct {
	Text        string
	Suggestions []string
	Property    *core.Property
}

// Turn is the full ordered reply to one utterance.
type Turn struct {
	Messages []Message
}

// Engine routes utterances and composes replies. It holds no
// per-conversation state; the caller threads a GuidedSession through
// each Handle call.
type Engine struct {
	catalog    catalog.Provider
	extractor  *extract.Extractor
	searcher   *search.Engine
	classifier *intent.Classifier
	detector   *Detector
	responder  ai.Responder
	replySink  func(reply string)
	pool       *ants.Pool
	logger     *slog.Logger
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

// WithResponder sets an optional conversational backend used to enrich
// search replies. Generation runs in the background; a failure is logged
// and never affects the search reply.
func WithResponder(responder ai.Responder) Option {
	return func(e *Engine) error {
		e.responder = responder
		return nil
	}
}

// WithReplySink sets the callback that receives background-generated
// replies. Without a sink, generated replies are discarded.
func WithReplySink(sink func(reply string)) Option {
	return func(e *Engine) error {
		e.replySink = sink
		return nil
	}
}

// WithDetector sets a custom ambiguity detector.
func WithDetector(detector *Detector) Option {
	return func(e *Engine) error {
		e.detector = detector
		return nil
	}
}

// NewEngine creates a new dialog engine.
func NewEngine(
	provider catalog.Provider,
	extractor *extract.Extractor,
	searcher *search.Engine,
	classifier *intent.Classifier,
	opts ...Option,
) (*Engine, error) {
	if provider == nil {
		return nil, ErrCatalogRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if searcher == nil {
		return nil, ErrSearchEngineRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog:    provider,
		extractor:  extractor,
		searcher:   searcher,
		classifier: classifier,
		detector:   NewDetector(),
		pool:       pool,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			pool.Release()
			return nil, err
		}
	}

	return e, nil
}

// Release releases the background worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Handle processes one utterance and returns the reply.
func (e *Engine) Handle(ctx context.Context, session *core.GuidedSession, text string) (Turn, error) {
	return e.HandleWithMonitor(ctx, session, text, nil)
}

// HandleWithMonitor processes one utterance with monitoring.
// The monitor receives callbacks as the turn is routed and composed.
func (e *Engine) HandleWithMonitor(ctx context.Context, session *core.GuidedSession, text string, monitor TurnMonitor) (Turn, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopTurnMonitor{}
	}
	if session == nil {
		return Turn{}, ErrSessionRequired
	}

	monitor.Start(text)
	properties := e.catalog.Properties()

	if session.Active {
		if session.StepIndex >= 0 && session.StepIndex < len(guidedQuestions) {
			turn := e.handleGuidedAnswer(session, text, properties)
			monitor.Finish(turn)
			return turn, nil
		}
		// Inconsistent session state, fall back to normal routing.
		session.Reset()
	}

	classified := e.classifier.Classify(text)
	monitor.Routed(classified)
	e.logger.Debug("handling turn", "intent", classified)

	var turn Turn
	switch {
	case classified.Conversational():
		turn = Turn{Messages: []Message{{Text: cannedReply(classified)}}}
	case classified == core.IntentStatsQuery:
		turn = e.statsTurn(properties, text)
	case classified == core.IntentRecommendationQuery:
		turn = e.recommendTurn(properties, text)
	case classified == core.IntentPropertySearch:
		turn = e.searchTurn(ctx, properties, text, monitor)
	default:
		turn = Turn{Messages: []Message{{Text: offTopicReply}}}
	}

	monitor.Finish(turn)
	return turn, nil
}

// searchTurn runs the full search path: ambiguity check first, then
// extraction and ranking.
func (e *Engine) searchTurn(ctx context.Context, properties []core.Property, text string, monitor TurnMonitor) Turn {
	criteria := e.extractor.Extract(text)

	if prompt, ok := e.detector.Detect(text, criteria, properties); ok {
		monitor.Clarified(prompt)
		return Turn{Messages: []Message{{Text: prompt.Question, Suggestions: prompt.Suggestions}}}
	}

	e.enrich(ctx, text)

	results := e.searcher.Rank(properties, criteria)
	if len(results) == 0 {
		return Turn{Messages: []Message{{Text: noResultsReply}}}
	}

	shown := min(len(results), displayLimit)
	turn := Turn{Messages: []Message{{Text: fmt.Sprintf("Found %d matching properties. Showing top %d:", len(results), shown)}}}
	turn.Messages = append(turn.Messages, resultMessages(results)...)
	return turn
}

// statsTurn reports price statistics scoped to the search results when any
// exist, then to the requested location, then to the whole catalog.
func (e *Engine) statsTurn(properties []core.Property, text string) Turn {
	criteria := e.extractor.Extract(text)
	results := e.searcher.Rank(properties, criteria)

	stats, ok := search.CandidateStats(results)
	if !ok && criteria.Location != "" {
		var scoped []core.Property
		for i := range properties {
			if strings.Contains(strings.ToLower(properties[i].Location), criteria.Location) {
				scoped = append(scoped, properties[i])
			}
		}
		stats, ok = search.Stats(scoped)
	}
	if !ok {
		stats, ok = search.Stats(properties)
	}
	if !ok {
		return Turn{Messages: []Message{{Text: noStatsReply}}}
	}

	scope := ""
	if criteria.Location != "" {
		scope = " in " + criteria.Location
	}
	turn := Turn{Messages: []Message{{Text: fmt.Sprintf(
		"Across %d listings%s, prices range from %s to %s with an average of %s.",
		stats.Count, scope, FormatPrice(stats.Min), FormatPrice(stats.Max), FormatPrice(stats.Avg),
	)}}}

	if len(results) > 0 {
		shown := min(len(results), displayLimit)
		turn.Messages = append(turn.Messages, Message{Text: fmt.Sprintf("Here are the top %d listings I found:", shown)})
		turn.Messages = append(turn.Messages, resultMessages(results)...)
	}

	return turn
}

// recommendTurn runs the search and justifies the top result by naming which
// requested criteria it satisfies.
func (e *Engine) recommendTurn(properties []core.Property, text string) Turn {
	criteria := e.extractor.Extract(text)
	results := e.searcher.Rank(properties, criteria)
	if len(results) == 0 {
		return Turn{Messages: []Message{{Text: noRecommendationReply}}}
	}

	top := results[0].Property
	line := fmt.Sprintf("I recommend: %s in %s, priced %s", top.Title, top.Location, FormatPrice(top.Price))
	if reasons := search.MatchReasons(top, criteria); len(reasons) > 0 {
		line += " (" + strings.Join(reasons, ", ") + ")"
	}
	line += "."

	shown := min(len(results), displayLimit)
	turn := Turn{Messages: []Message{
		{Text: line},
		{Text: fmt.Sprintf("I found %d matching properties. Showing top %d:", len(results), shown)},
	}}
	turn.Messages = append(turn.Messages, resultMessages(results)...)
	return turn
}

// enrich asks the conversational backend for an extra assistant-style reply
// in the background. The reply goes to the sink; errors are logged and
// swallowed so the search path never waits on generation.
func (e *Engine) enrich(ctx context.Context, text string) {
	if e.responder == nil {
		return
	}

	generate := context.WithoutCancel(ctx)
	err := e.pool.Submit(func() {
		reply, err := e.responder.Generate(generate, text)
		if err != nil {
			e.logger.Warn("background reply generation failed", "err", err)
			return
		}
		if reply != "" && e.replySink != nil {
			e.replySink(reply)
		}
	})
	if err != nil {
		e.logger.Warn("could not schedule background reply", "err", err)
	}
}

// resultMessages renders the top listings, one message per property.
func resultMessages(results []core.ScoredCandidate) []Message {
	limit := min(len(results), displayLimit)

	messages := make([]Message, 0, limit)
	for _, candidate := range results[:limit] {
		p := candidate.Property
		messages = append(messages, Message{
			Text:     fmt.Sprintf("%s in %s, %s", p.Title, p.Location, FormatPrice(p.Price)),
			Property: p,
		})
	}
	return messages
}
