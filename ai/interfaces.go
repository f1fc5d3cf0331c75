package ai

import "context"

// Responder generates an assistant-style reply for a free-text prompt.
// It is used only to enrich search replies and must never block or fail the
// primary search path: callers run it off the request path and swallow errors.
// Implementations must be safe for concurrent use.
type Responder interface {
	// Generate returns a generated reply for the prompt.
	// Returns an error if the backend call fails; callers on the search
	// path discard the error and continue without the reply.
	Generate(ctx context.Context, prompt string) (string, error)
}

// PlaceRecognizer returns candidate place names found in lower-cased text.
// It is consulted before the extractor's pattern fallback. Absence (a nil
// recognizer) degrades gracefully to the fallback, so implementations are
// expected to be fast local lookups, not remote calls.
type PlaceRecognizer interface {
	// Places returns zero or more candidate place names, most likely first.
	// It never fails; unrecognizable text yields an empty slice.
	Places(text string) []string
}
