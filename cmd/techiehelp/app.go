package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"techiehelp/internal/assistant"
	"techiehelp/internal/config"
	"techiehelp/internal/extract"
	"techiehelp/internal/llm"
	"techiehelp/internal/router"
	"techiehelp/internal/store"
)

// newAssistant wires the assistant over st. Without an API key the router
// still answers canned topics; anything else fails at call time.
func newAssistant(ctx context.Context, c *config.Config, st store.HistoryStore) (*assistant.Service, error) {
	var client llm.Client
	if c.LLM.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey: c.LLM.APIKey,
			Model:  c.LLM.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = llm.NewLoggingClient(gemini, gemini.Name())
		logger.Debug("Gemini client ready", zap.String("model", gemini.Model()))
	} else {
		logger.Warn("No Gemini API key configured; only canned topics will be answered")
	}

	return assistant.New(router.New(client), st, extract.New(nil), logger), nil
}

// openApp opens the configured store and builds the assistant. The caller
// closes the returned store.
func openApp(ctx context.Context, c *config.Config) (*assistant.Service, store.HistoryStore, error) {
	st, err := store.Open(ctx, c.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", c.Storage.Backend, err)
	}

	svc, err := newAssistant(ctx, c, st)
	if err != nil {
		_ = st.Close(ctx)
		return nil, nil, err
	}
	return svc, st, nil
}
