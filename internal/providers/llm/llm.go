package llm

import "context"

// Provider is the generative collaborator. Callers treat it as opaque: it
// takes system instructions plus a structured prompt and returns text or an
// error. Every caller has a local fallback, so a nil Provider is a valid
// deployment configuration.
type Provider interface {
	// Complete returns the full response text for one prompt.
	Complete(ctx context.Context, system, prompt string) (string, error)
	Close() error
}
