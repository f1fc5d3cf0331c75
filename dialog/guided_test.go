package dialog

import (
	"context"
	"testing"

	"github.com/rynalabs/ryna/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartGuided(t *testing.T) {
	engine := newTestDialogEngine(t)

	t.Run("nil session", func(t *testing.T) {
		_, err := engine.StartGuided(nil)
		assert.Equal(t, ErrSessionRequired, err)
	})

	t.Run("activates and asks for location", func(t *testing.T) {
		session := core.NewGuidedSession()

		turn, err := engine.StartGuided(session)
		require.NoError(t, err)

		assert.True(t, session.Active)
		assert.Equal(t, 0, session.StepIndex)
		require.Len(t, turn.Messages, 2)
		assert.Equal(t, "Which location are you interested in?", turn.Messages[1].Text)
		assert.Equal(t, []string{"Goa", "Mumbai"}, turn.Messages[1].Suggestions)
	})

	t.Run("restart discards stale answers", func(t *testing.T) {
		session := core.NewGuidedSession()
		session.Active = true
		session.StepIndex = 3
		session.Answers = map[string]string{"location": "pune"}

		_, err := engine.StartGuided(session)
		require.NoError(t, err)

		assert.Equal(t, 0, session.StepIndex)
		assert.Empty(t, session.Answers)
	})
}

func TestGuidedFlow(t *testing.T) {
	engine := newTestDialogEngine(t)
	ctx := context.Background()
	session := core.NewGuidedSession()

	_, err := engine.StartGuided(session)
	require.NoError(t, err)

	answer := func(text string) Turn {
		t.Helper()
		turn, err := engine.Handle(ctx, session, text)
		require.NoError(t, err)
		return turn
	}

	turn := answer("goa")
	require.Len(t, turn.Messages, 1)
	assert.Contains(t, turn.Messages[0].Text, "property type")
	assert.Equal(t, []string{"apartment", "villa", "studio", "condo"}, turn.Messages[0].Suggestions)

	turn = answer("apartment")
	assert.Contains(t, turn.Messages[0].Text, "Minimum price")

	turn = answer("any")
	assert.Contains(t, turn.Messages[0].Text, "Maximum price")

	turn = answer("50 lakh")
	assert.Contains(t, turn.Messages[0].Text, "bedrooms")

	turn = answer("2")

	// Session is done and cleared.
	assert.False(t, session.Active)
	assert.Equal(t, -1, session.StepIndex)

	require.Len(t, turn.Messages, 2)
	assert.Equal(t, "Found 1 properties. Showing top 1:", turn.Messages[0].Text)
	require.NotNil(t, turn.Messages[1].Property)
	assert.Equal(t, core.ID(1), turn.Messages[1].Property.Id)
}

func TestGuidedFlow_NoMatches(t *testing.T) {
	engine := newTestDialogEngine(t)
	ctx := context.Background()
	session := core.NewGuidedSession()

	_, err := engine.StartGuided(session)
	require.NoError(t, err)

	for _, text := range []string{"pune", "villa", "any", "any"} {
		_, err := engine.Handle(ctx, session, text)
		require.NoError(t, err)
	}

	turn, err := engine.Handle(ctx, session, "3")
	require.NoError(t, err)

	require.Len(t, turn.Messages, 1)
	assert.Equal(t, noGuidedResultsReply, turn.Messages[0].Text)
	assert.False(t, session.Active)
}

func TestGuidedFlow_AnswersBypassClassifier(t *testing.T) {
	engine := newTestDialogEngine(t)
	ctx := context.Background()
	session := core.NewGuidedSession()

	_, err := engine.StartGuided(session)
	require.NoError(t, err)

	// "hi" is a greeting, but during a guided session it is the location answer.
	turn, err := engine.Handle(ctx, session, "hi")
	require.NoError(t, err)

	assert.Equal(t, "hi", session.Answers["location"])
	assert.Contains(t, turn.Messages[0].Text, "property type")
}

func TestGuidedFlow_InconsistentSessionFallsBack(t *testing.T) {
	engine := newTestDialogEngine(t)
	session := core.NewGuidedSession()
	session.Active = true
	session.StepIndex = 99

	turn, err := engine.Handle(context.Background(), session, "hi")
	require.NoError(t, err)

	assert.False(t, session.Active)
	require.Len(t, turn.Messages, 1)
	assert.Equal(t, greetingReply, turn.Messages[0].Text)
}

func TestAnswerGuided(t *testing.T) {
	engine := newTestDialogEngine(t)

	t.Run("nil session", func(t *testing.T) {
		_, err := engine.AnswerGuided(nil, "goa")
		assert.ErrorIs(t, err, ErrSessionRequired)
	})

	t.Run("inactive session is rejected", func(t *testing.T) {
		session := core.NewGuidedSession()

		_, err := engine.AnswerGuided(session, "goa")
		assert.ErrorIs(t, err, ErrNoActiveSession)
		assert.False(t, session.Active)
	})

	t.Run("out of range step resets the session", func(t *testing.T) {
		session := core.NewGuidedSession()
		session.Active = true
		session.StepIndex = 99

		_, err := engine.AnswerGuided(session, "goa")
		assert.ErrorIs(t, err, ErrNoActiveSession)
		assert.False(t, session.Active)
		assert.Equal(t, -1, session.StepIndex)
	})

	t.Run("drives the flow without Handle", func(t *testing.T) {
		session := core.NewGuidedSession()

		_, err := engine.StartGuided(session)
		require.NoError(t, err)

		turn, err := engine.AnswerGuided(session, "goa")
		require.NoError(t, err)

		assert.Equal(t, "goa", session.Answers["location"])
		assert.Contains(t, turn.Messages[0].Text, "property type")
	})
}

func TestSynthesizeQuery(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		want    string
	}{
		{
			name: "all answers",
			answers: map[string]string{
				"location": "goa",
				"type":     "apartment",
				"minPrice": "20 lakh",
				"maxPrice": "50 lakh",
				"bedrooms": "2",
			},
			want: "in goa apartment min 2000000 max 5000000 2 bhk",
		},
		{
			name: "blank and any answers skipped",
			answers: map[string]string{
				"location": "",
				"type":     "any",
				"minPrice": "",
				"maxPrice": "0",
				"bedrooms": "any",
			},
			want: "",
		},
		{
			name: "number words accepted",
			answers: map[string]string{
				"location": "mumbai",
				"bedrooms": "two",
			},
			want: "in mumbai 2 bhk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizeQuery(tt.answers))
		})
	}
}
