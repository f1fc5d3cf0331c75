package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rynalabs/ryna/core"
	"github.com/rynalabs/ryna/extract"
)

// topLocationLimit caps the location suggestions offered when a guided
// session starts.
const topLocationLimit = 6

// question is one step of the guided flow. Answers are stored under key.
type question struct {
	key         string
	text        string
	suggestions []string
}

// guidedQuestions is the fixed question sequence, asked in order.
var guidedQuestions = []question{
	{
		key:  "location",
		text: "Which location are you interested in?",
	},
	{
		key:         "type",
		text:        "Which property type do you prefer? (apartment / villa / studio / condo)",
		suggestions: []string{"apartment", "villa", "studio", "condo"},
	},
	{
		key:  "minPrice",
		text: "Minimum price? (enter a number, or \"any\" for no minimum)",
	},
	{
		key:  "maxPrice",
		text: "Maximum price? (enter a number, or \"any\" for no maximum)",
	},
	{
		key:         "bedrooms",
		text:        "How many bedrooms? (enter a number or \"any\")",
		suggestions: []string{"1", "2", "3", "4", "any"},
	},
}

// StartGuided activates the question flow on the session and returns the
// first question. Any answers from an abandoned earlier run are discarded.
func (e *Engine) StartGuided(session *core.GuidedSession) (Turn, error) {
	if session == nil {
		return Turn{}, ErrSessionRequired
	}

	session.Active = true
	session.StepIndex = 0
	session.Answers = make(map[string]string)

	first := guidedQuestions[0]
	return Turn{Messages: []Message{
		{Text: "Great, let me ask a few quick questions to refine results."},
		{Text: first.text, Suggestions: topLocations(e.catalog.Properties())},
	}}, nil
}

// AnswerGuided feeds one answer into an active guided session. Callers that
// route all traffic through Handle never need this; it exists for callers
// driving the question flow directly. A session that is inactive or out of
// step is reset and ErrNoActiveSession is returned.
func (e *Engine) AnswerGuided(session *core.GuidedSession, text string) (Turn, error) {
	if session == nil {
		return Turn{}, ErrSessionRequired
	}
	if !session.Active || session.StepIndex < 0 || session.StepIndex >= len(guidedQuestions) {
		session.Reset()
		return Turn{}, ErrNoActiveSession
	}
	return e.handleGuidedAnswer(session, text, e.catalog.Properties()), nil
}

// handleGuidedAnswer stores the answer for the current step and either asks
// the next question or, after the last one, synthesizes a query from the
// accumulated answers and runs it. The synthesized query skips the ambiguity
// check since the questionnaire already disambiguated each field.
func (e *Engine) handleGuidedAnswer(session *core.GuidedSession, text string, properties []core.Property) Turn {
	step := guidedQuestions[session.StepIndex]
	if session.Answers == nil {
		session.Answers = make(map[string]string)
	}
	session.Answers[step.key] = strings.TrimSpace(text)

	if next := session.StepIndex + 1; next < len(guidedQuestions) {
		session.StepIndex = next
		q := guidedQuestions[next]
		return Turn{Messages: []Message{{Text: q.text, Suggestions: q.suggestions}}}
	}

	query := synthesizeQuery(session.Answers)
	session.Reset()

	results := e.searcher.Rank(properties, e.extractor.Extract(query))
	if len(results) == 0 {
		return Turn{Messages: []Message{{Text: noGuidedResultsReply}}}
	}

	shown := min(len(results), displayLimit)
	turn := Turn{Messages: []Message{{Text: fmt.Sprintf("Found %d properties. Showing top %d:", len(results), shown)}}}
	turn.Messages = append(turn.Messages, resultMessages(results)...)
	return turn
}

// synthesizeQuery turns the collected answers into one natural-language
// query for the extractor. Blank and "any" answers contribute nothing.
func synthesizeQuery(answers map[string]string) string {
	var parts []string

	if loc := meaningfulAnswer(answers["location"]); loc != "" {
		parts = append(parts, "in "+loc)
	}
	if typ := meaningfulAnswer(answers["type"]); typ != "" {
		parts = append(parts, typ)
	}
	if v, ok := extract.ParseNumberOrWord(answers["minPrice"]); ok && v > 0 {
		parts = append(parts, "min "+strconv.FormatInt(v, 10))
	}
	if v, ok := extract.ParseNumberOrWord(answers["maxPrice"]); ok && v > 0 {
		parts = append(parts, "max "+strconv.FormatInt(v, 10))
	}
	if beds := meaningfulAnswer(answers["bedrooms"]); beds != "" {
		if v, ok := extract.ParseNumberOrWord(beds); ok && v > 0 {
			parts = append(parts, strconv.FormatInt(v, 10)+" bhk")
		}
	}

	return strings.Join(parts, " ")
}

func meaningfulAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "any") {
		return ""
	}
	return answer
}

// topLocations lists the distinct primary localities in catalog order,
// preserving the original casing for display.
func topLocations(properties []core.Property) []string {
	seen := make(map[string]bool)
	var locations []string

	for i := range properties {
		loc := properties[i].Location
		if j := strings.IndexAny(loc, ",-"); j >= 0 {
			loc = loc[:j]
		}
		loc = strings.TrimSpace(loc)
		if loc == "" || seen[strings.ToLower(loc)] {
			continue
		}
		seen[strings.ToLower(loc)] = true
		locations = append(locations, loc)
		if len(locations) == topLocationLimit {
			break
		}
	}

	return locations
}
