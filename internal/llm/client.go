// Package llm holds the generative-language client used for queries the
// keyword router cannot answer.
package llm

import "context"

// Client defines the interface for generative text providers.
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
