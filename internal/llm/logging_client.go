package llm

import (
	"context"
	"time"

	"techiehelp/internal/logging"
)

// LoggingClient wraps any Client and records every call to the api log.
type LoggingClient struct {
	underlying Client
	name       string
}

// NewLoggingClient creates a logging wrapper around an existing client.
func NewLoggingClient(underlying Client, name string) *LoggingClient {
	return &LoggingClient{underlying: underlying, name: name}
}

// CompleteWithSystem delegates to the wrapped client. Errors pass through untouched.
func (c *LoggingClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	logging.APIDebug("[%s] request: system_len=%d user_len=%d", c.name, len(systemPrompt), len(userPrompt))

	resp, err := c.underlying.CompleteWithSystem(ctx, systemPrompt, userPrompt)
	elapsed := time.Since(start)
	if err != nil {
		logging.APIError("[%s] failed after %v: %v", c.name, elapsed, err)
		return "", err
	}

	logging.API("[%s] completed in %v: response_len=%d", c.name, elapsed, len(resp))
	return resp, nil
}
