package webui

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"techiehelp/internal/assistant"
	"techiehelp/internal/extract"
	"techiehelp/internal/logging"
	"techiehelp/internal/render"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, &PageData{})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("query")
	data := &PageData{Query: query}

	reply, err := s.assistant.Ask(r.Context(), query)
	if err != nil {
		status := s.statusFor(err, "ask")
		data.Error = errorMessage(status, err)
		s.renderPage(w, r, status, data)
		return
	}

	data.Response = reply.Response
	s.renderPage(w, r, http.StatusOK, data)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.cfg.MaxUploadBytes {
		s.renderPage(w, r, http.StatusRequestEntityTooLarge, &PageData{Error: "The uploaded file is too large."})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.renderPage(w, r, status, &PageData{Error: "Please choose a PDF or image file to upload."})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.renderPage(w, r, http.StatusBadRequest, &PageData{Error: "Could not read the uploaded file."})
		return
	}

	data := &PageData{FileName: header.Filename}
	text, err := s.assistant.Extract(r.Context(), content, header.Header.Get("Content-Type"))
	if err != nil {
		status := s.statusFor(err, "extract")
		data.Error = errorMessage(status, err)
		s.renderPage(w, r, status, data)
		return
	}

	data.Extracted = text
	s.renderPage(w, r, http.StatusOK, data)
}

func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	artifact, err := s.assistant.ExportPDF(r.FormValue("response"))
	if err != nil {
		s.fail(w, err, "render pdf")
		return
	}
	writeArtifact(w, artifact)
}

func (s *Server) handleDownloadSpreadsheet(w http.ResponseWriter, r *http.Request) {
	artifact, err := s.assistant.ExportSpreadsheet(r.FormValue("query"), r.FormValue("response"))
	if err != nil {
		s.fail(w, err, "render spreadsheet")
		return
	}
	writeArtifact(w, artifact)
}

func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.assistant.History(r.Context())
	if err != nil {
		s.writeJSONError(w, s.statusFor(err, "history"), err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

type askRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleAPIAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	reply, err := s.assistant.Ask(r.Context(), req.Query)
	if err != nil {
		s.writeJSONError(w, s.statusFor(err, "ask"), err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// statusFor maps a failure to its HTTP status and logs server-side faults.
func (s *Server) statusFor(err error, op string) int {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrUnsupportedMediaKind):
		return http.StatusUnsupportedMediaType
	case op == "ask":
		s.logger.Error("ask failed", zap.Error(err))
		logging.HTTPError("%s failed: %v", op, err)
		return http.StatusBadGateway
	default:
		s.logger.Error(op+" failed", zap.Error(err))
		logging.HTTPError("%s failed: %v", op, err)
		return http.StatusInternalServerError
	}
}

func errorMessage(status int, err error) string {
	switch status {
	case http.StatusBadRequest:
		return "Please enter a question."
	case http.StatusUnsupportedMediaType:
		return "Unsupported file type. Upload a PDF, JPG or PNG file."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (s *Server) fail(w http.ResponseWriter, err error, op string) {
	s.logger.Error(op+" failed", zap.Error(err))
	logging.HTTPError("%s failed: %v", op, err)
	http.Error(w, "Failed to "+op, http.StatusInternalServerError)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, data *PageData) {
	data.Title = pageTitle
	data.Topics = s.topics

	history, err := s.assistant.History(r.Context())
	if err != nil {
		s.logger.Warn("history unavailable", zap.Error(err))
	}
	data.History = history

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		s.logger.Error("render template", zap.Error(err))
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeArtifact(w http.ResponseWriter, a render.Artifact) {
	w.Header().Set("Content-Type", a.MIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+a.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	_, _ = w.Write(a.Data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
