package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/resume-studio/internal/collection"
	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxBodyBytes bounds request bodies; the whole collection must fit the storage quota anyway
const maxBodyBytes = 5 << 20

// keepAliveInterval is how often /events writes a comment to keep proxies from closing the stream
const keepAliveInterval = 25 * time.Second

// ListResponse is the body of GET /resumes
type ListResponse struct {
	Resumes  []types.ResumeDocument `json:"resumes"`
	Corrupt  bool                   `json:"corrupt,omitempty"`
	Problem  string                 `json:"problem,omitempty"`
	Migrated bool                   `json:"migrated,omitempty"`
}

// handleTemplates returns the template catalog
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, rendering.Templates())
}

// handleListResumes returns the collection in display order
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	loaded, err := s.reconciler.Load(r.Context())
	if err != nil {
		s.failure(w, err)
		return
	}

	resp := ListResponse{
		Resumes:  collection.Sort(loaded.Documents),
		Corrupt:  loaded.Corrupt,
		Migrated: loaded.Migrated,
	}
	if loaded.Problem != nil {
		resp.Problem = loaded.Problem.Error()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetResume returns one document
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleCreateResume creates and stores a new document.
// Query: template (defaults to the configured template), sample=true for placeholder content.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	templateID := r.URL.Query().Get("template")
	if templateID == "" {
		templateID = s.template
	}
	if templateID != "" && !types.IsKnownTemplate(templateID) {
		s.failure(w, &rendering.UnknownTemplateError{TemplateID: templateID})
		return
	}

	var doc types.ResumeDocument
	if sample, _ := strconv.ParseBool(r.URL.Query().Get("sample")); sample {
		doc = document.Sample(templateID, s.profile, s.gen)
	} else {
		doc = document.New(templateID, s.profile, s.gen)
	}

	docs, err := s.reconciler.Upsert(r.Context(), doc)
	if err != nil {
		s.failure(w, err)
		return
	}

	saved, _ := collection.Find(docs, doc.ID)
	s.jsonResponse(w, http.StatusCreated, saved)
}

// handlePutResume stores the request body as the document with the path id
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.failure(w, &ErrBadRequest{Field: "body", Message: err.Error()})
		return
	}
	if err := schemas.ValidateDocument(body); err != nil {
		s.failure(w, err)
		return
	}

	var raw types.RawDocument
	if err := json.Unmarshal(body, &raw); err != nil {
		s.failure(w, &ErrBadRequest{Field: "body", Message: err.Error()})
		return
	}
	if raw.ID != nil && *raw.ID != "" && *raw.ID != id {
		s.failure(w, &ErrBadRequest{Field: "id", Message: "body id does not match path"})
		return
	}

	doc := document.Normalize(raw, s.gen)
	doc.ID = id

	docs, err := s.reconciler.Upsert(r.Context(), doc)
	if err != nil {
		s.failure(w, err)
		return
	}

	saved, _ := collection.Find(docs, id)
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleDeleteResume removes a document
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	found := false
	_, err := s.reconciler.Apply(r.Context(), id, func(current *types.ResumeDocument) *types.ResumeDocument {
		found = current != nil
		return nil
	})
	if err != nil {
		s.failure(w, err)
		return
	}
	if !found {
		s.failure(w, &ErrNotFound{ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTogglePin flips the pinned flag and returns the updated document
func (s *Server) handleTogglePin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	docs, err := s.reconciler.TogglePin(r.Context(), id)
	if err != nil {
		s.failure(w, err)
		return
	}
	doc, ok := collection.Find(docs, id)
	if !ok {
		s.failure(w, &ErrNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleRender draws a document.
// Query: template and mode default to the document's own; format is json (layout tree), html or pdf.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookup(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	templateID := q.Get("template")
	if templateID == "" {
		templateID = doc.TemplateID
	}
	mode := doc.ThemeMode
	if m := q.Get("mode"); m != "" {
		mode = types.ThemeMode(m)
		if !mode.Valid() {
			s.failure(w, &ErrBadRequest{Field: "mode", Message: "must be light or dark"})
			return
		}
	}

	switch format := q.Get("format"); format {
	case "", "json":
		tree, err := rendering.Render(doc, templateID, mode)
		if err != nil {
			s.failure(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, tree)
	case "html":
		page, err := export.DocumentHTML(doc, templateID, mode)
		if err != nil {
			s.failure(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page) //nolint:errcheck
	case "pdf":
		if s.pdf == nil {
			s.errorResponse(w, http.StatusNotImplemented, "PDF export is not configured")
			return
		}
		pdf, err := export.DocumentPDF(r.Context(), s.pdf, doc, templateID, mode)
		if err != nil {
			s.failure(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf) //nolint:errcheck
	default:
		s.failure(w, &ErrBadRequest{Field: "format", Message: "must be json, html or pdf"})
	}
}

// handleEvents streams storage change events.
// Query: origin skips events published by that origin.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "change events are not enabled")
		return
	}
	skip := r.URL.Query().Get("origin")

	events, cancel := s.hub.Subscribe(16)
	defer cancel()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			if err := sse.WriteComment("keep-alive"); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}
			if skip != "" && event.Origin == skip {
				continue
			}
			if err := sse.WriteEvent("change", event); err != nil {
				s.logger.Debug("write SSE event", slog.Any("error", err))
				return
			}
		}
	}
}

// lookup loads the document named by the path id, writing 404 when absent
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (types.ResumeDocument, bool) {
	id := r.PathValue("id")
	loaded, err := s.reconciler.Load(r.Context())
	if err != nil {
		s.failure(w, err)
		return types.ResumeDocument{}, false
	}
	doc, ok := collection.Find(loaded.Documents, id)
	if !ok {
		s.failure(w, &ErrNotFound{ID: id})
		return types.ResumeDocument{}, false
	}
	return doc, true
}
