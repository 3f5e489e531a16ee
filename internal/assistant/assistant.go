// Package assistant ties routing, extraction, persistence and export together.
// Every answered query is persisted and written to the interaction log.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"techiehelp/internal/logging"
	"techiehelp/internal/render"
	"techiehelp/internal/store"
)

// ErrEmptyQuery is returned for blank input.
var ErrEmptyQuery = errors.New("query is empty")

// Router answers a query.
type Router interface {
	Route(ctx context.Context, query string) (string, error)
}

// Extractor turns an upload into text.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Reply is the result of one answered query.
type Reply struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Service is the assistant. It is safe for concurrent use when its
// dependencies are.
type Service struct {
	router    Router
	store     store.HistoryStore
	extractor Extractor
	logger    *zap.Logger
}

// New creates a Service. A nil logger is replaced with a no-op logger.
func New(router Router, history store.HistoryStore, extractor Extractor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		router:    router,
		store:     history,
		extractor: extractor,
		logger:    logger,
	}
}

// Ask routes query, persists the pair and logs the interaction. Any failing
// step aborts the interaction.
func (s *Service) Ask(ctx context.Context, query string) (Reply, error) {
	if strings.TrimSpace(query) == "" {
		return Reply{}, ErrEmptyQuery
	}

	start := time.Now()
	response, err := s.router.Route(ctx, query)
	if err != nil {
		s.logger.Warn("route failed", zap.Error(err))
		return Reply{}, err
	}

	rec, err := s.store.Store(ctx, query, response)
	if err != nil {
		s.logger.Error("persist failed", zap.Error(err))
		return Reply{}, fmt.Errorf("store interaction: %w", err)
	}

	logging.Interaction(query, response)
	s.logger.Debug("answered query",
		zap.String("id", rec.ID),
		zap.Int("query_len", len(query)),
		zap.Int("response_len", len(response)),
		zap.Duration("elapsed", time.Since(start)))

	return Reply{
		ID:        rec.ID,
		Query:     rec.Query,
		Response:  rec.Response,
		Timestamp: rec.Timestamp,
	}, nil
}

// Extract returns the text content of an upload.
func (s *Service) Extract(ctx context.Context, data []byte, mimeType string) (string, error) {
	text, err := s.extractor.ExtractText(ctx, data, mimeType)
	if err != nil {
		s.logger.Warn("extract failed", zap.String("mime", mimeType), zap.Error(err))
		return "", err
	}
	return text, nil
}

// History returns every stored record, most recent first.
func (s *Service) History(ctx context.Context) ([]store.ChatRecord, error) {
	return s.store.FetchHistory(ctx)
}

// ExportPDF renders text as a downloadable PDF.
func (s *Service) ExportPDF(text string) (render.Artifact, error) {
	return render.PDFArtifact(text)
}

// ExportSpreadsheet renders a query/response pair as a downloadable workbook.
func (s *Service) ExportSpreadsheet(query, response string) (render.Artifact, error) {
	return render.SpreadsheetArtifact(query, response)
}
