// Package router answers questions about TechieHelp from a fixed keyword table
// and hands everything else to the generative model.
package router

import (
	"context"
	"fmt"
	"strings"

	"techiehelp/internal/llm"
	"techiehelp/internal/logging"
)

// Preamble is the system instruction sent with every generative call.
const Preamble = "you are a friendly model"

// Router dispatches user queries.
type Router struct {
	client llm.Client
}

// New creates a router that falls back to client for unmatched queries.
func New(client llm.Client) *Router {
	return &Router{client: client}
}

// Match returns the first topic whose keyword occurs in the case-folded query.
func Match(query string) (Topic, bool) {
	folded := strings.ToLower(query)
	for _, t := range topics {
		for _, kw := range t.Keywords {
			if strings.Contains(folded, kw) {
				return t, true
			}
		}
	}
	return Topic{}, false
}

// Topics returns a copy of the canned-response table in evaluation order.
func Topics() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// Route returns the canned text for a recognised topic, or forwards the unmodified
// query to the generative model and returns its text verbatim. Remote failures
// are returned, never retried.
func (r *Router) Route(ctx context.Context, query string) (string, error) {
	if t, ok := Match(query); ok {
		logging.Routing("Matched topic %q", t.Name)
		return t.Response, nil
	}

	logging.RoutingDebug("No topic matched, delegating to model: query_len=%d", len(query))
	if r.client == nil {
		return "", fmt.Errorf("no generative client configured")
	}

	resp, err := r.client.CompleteWithSystem(ctx, Preamble, query)
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}
	return resp, nil
}
