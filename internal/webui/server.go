// Package webui serves the browser front end and a small JSON API over the
// assistant.
package webui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"

	"techiehelp/internal/assistant"
	"techiehelp/internal/config"
	"techiehelp/internal/render"
	"techiehelp/internal/router"
	"techiehelp/internal/store"
)

//go:embed templates
var templatesFS embed.FS

const pageTitle = "TechieHelp - AI Chatbot Assistant"

// Assistant is the subset of assistant.Service the UI drives.
type Assistant interface {
	Ask(ctx context.Context, query string) (assistant.Reply, error)
	Extract(ctx context.Context, data []byte, mimeType string) (string, error)
	History(ctx context.Context) ([]store.ChatRecord, error)
	ExportPDF(text string) (render.Artifact, error)
	ExportSpreadsheet(query, response string) (render.Artifact, error)
}

// PageData feeds the index page.
type PageData struct {
	Title     string
	Query     string
	Response  string
	Extracted string
	FileName  string
	Error     string
	History   []store.ChatRecord
	Topics    []string
}

// Server routes HTTP requests to the assistant.
type Server struct {
	assistant Assistant
	cfg       config.ServerConfig
	logger    *zap.Logger
	tmpl      *template.Template
	topics    []string
}

// New parses the embedded templates and returns a ready server.
func New(a Assistant, cfg config.ServerConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = config.DefaultConfig().Server.MaxUploadBytes
	}

	funcMap := sprig.HtmlFuncMap()
	funcMap["formatMessage"] = formatMessage

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS,
		"templates/*.tmpl",
		"templates/includes/*.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var topics []string
	for _, t := range router.Topics() {
		topics = append(topics, t.Name)
	}

	return &Server{
		assistant: a,
		cfg:       cfg,
		logger:    logger,
		tmpl:      tmpl,
		topics:    topics,
	}, nil
}

// Handler returns the request multiplexer.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("POST /extract", s.handleExtract)
	mux.HandleFunc("POST /download/pdf", s.handleDownloadPDF)
	mux.HandleFunc("POST /download/xlsx", s.handleDownloadSpreadsheet)
	mux.HandleFunc("GET /api/history", s.handleAPIHistory)
	mux.HandleFunc("POST /api/ask", s.handleAPIAsk)
	return s.logRequests(mux)
}

// HTTPServer builds an http.Server bound to the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.GetReadTimeout(),
		WriteTimeout: s.cfg.GetWriteTimeout(),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status))
	})
}
