// Copyright 2025 Ryna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ryna

import (
	"context"
	"log/slog"

	"github.com/rynalabs/ryna/ai"
	"github.com/rynalabs/ryna/ai/openai"
	"github.com/rynalabs/ryna/catalog"
	"github.com/rynalabs/ryna/core"
	"github.com/rynalabs/ryna/dialog"
	"github.com/rynalabs/ryna/extract"
	"github.com/rynalabs/ryna/intent"
	"github.com/rynalabs/ryna/search"
)

// Assistant bundles the extraction, ranking, classification and dialog
// components behind one entry point. Callers hold one Assistant per catalog
// and one GuidedSession per end user.
type Assistant struct {
	provider   catalog.Provider
	extractor  *extract.Extractor
	searcher   *search.Engine
	classifier *intent.Classifier
	engine     *dialog.Engine
	logger     *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	aiConfig  *ai.Config
	places    ai.PlaceRecognizer
	replySink func(reply string)
	logger    *slog.Logger
}

// WithAIConfig enables the conversational backend with the given settings.
// Without it, replies are composed purely from the catalog.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithPlaceRecognizer sets an optional place recognizer used during
// extraction.
func WithPlaceRecognizer(places ai.PlaceRecognizer) AssistantOption {
	return func(o *assistantOptions) {
		o.places = places
	}
}

// WithReplySink sets the callback that receives background-generated
// replies when the conversational backend is enabled.
func WithReplySink(sink func(reply string)) AssistantOption {
	return func(o *assistantOptions) {
		o.replySink = sink
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		o.logger = logger
	}
}

// NewAssistant wires the full conversation stack over the given catalog.
func NewAssistant(provider catalog.Provider, opts ...AssistantOption) (*Assistant, error) {
	// Apply options
	options := &assistantOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	extractorOpts := []extract.Option{extract.WithLogger(options.logger)}
	if options.places != nil {
		extractorOpts = append(extractorOpts, extract.WithPlaceRecognizer(options.places))
	}
	extractor, err := extract.NewExtractor(extractorOpts...)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewEngine(extractor, search.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	classifier := intent.NewClassifier(intent.WithLogger(options.logger))

	engineOpts := []dialog.Option{dialog.WithLogger(options.logger)}
	if options.aiConfig != nil {
		responder, err := openai.NewResponder(options.aiConfig)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, dialog.WithResponder(responder))
	}
	if options.replySink != nil {
		engineOpts = append(engineOpts, dialog.WithReplySink(options.replySink))
	}

	engine, err := dialog.NewEngine(provider, extractor, searcher, classifier, engineOpts...)
	if err != nil {
		return nil, err
	}

	return &Assistant{
		provider:   provider,
		extractor:  extractor,
		searcher:   searcher,
		classifier: classifier,
		engine:     engine,
		logger:     options.logger,
	}, nil
}

// Close releases the assistant's background resources.
func (a *Assistant) Close() {
	a.engine.Release()
}

// Handle processes one utterance for the given session and returns the reply.
func (a *Assistant) Handle(ctx context.Context, session *core.GuidedSession, text string) (dialog.Turn, error) {
	return a.engine.Handle(ctx, session, text)
}

// StartGuided begins the guided question flow on the session.
func (a *Assistant) StartGuided(session *core.GuidedSession) (dialog.Turn, error) {
	return a.engine.StartGuided(session)
}

// AnswerGuided feeds one answer into an active guided session.
func (a *Assistant) AnswerGuided(session *core.GuidedSession, text string) (dialog.Turn, error) {
	return a.engine.AnswerGuided(session, text)
}

// Extract derives structured criteria from an utterance.
func (a *Assistant) Extract(text string) core.Criteria {
	return a.extractor.Extract(text)
}

// Search ranks the catalog against an utterance.
func (a *Assistant) Search(text string) ([]core.ScoredCandidate, core.Criteria) {
	return a.searcher.Search(a.provider.Properties(), text)
}

// Classify returns the intent of an utterance.
func (a *Assistant) Classify(text string) core.Intent {
	return a.classifier.Classify(text)
}
