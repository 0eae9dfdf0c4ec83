// Package server exposes the template workflow over HTTP: upload a .docx,
// edit the discovered fields in a rendered form, download the filled
// document.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/mirsardor-ktng/documint/pkg/docxtpl"
	"github.com/mirsardor-ktng/documint/pkg/orchestrator"
	"github.com/mirsardor-ktng/documint/pkg/render"
)

// Server wires the orchestrator into HTTP handlers with in-memory sessions.
type Server struct {
	cfg      Config
	orch     *orchestrator.Orchestrator
	sessions *sessionStore
	log      *zap.Logger
}

// New builds a Server around the given orchestrator.
func New(cfg Config, orch *orchestrator.Orchestrator, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		orch:     orch,
		sessions: newSessionStore(cfg.SessionTTL),
		log:      log,
	}
}

// Routes returns the request multiplexer for the workflow.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", s.withLogging(s.handleIndex))
	mux.HandleFunc("POST /templates", s.withLogging(s.handleUpload))
	mux.HandleFunc("GET /templates/{id}", s.withLogging(s.handleForm))
	mux.HandleFunc("GET /templates/{id}/fields", s.withLogging(s.handleFields))
	mux.HandleFunc("POST /templates/{id}/fields", s.withLogging(s.handleUpdate))
	mux.HandleFunc("POST /templates/{id}/generate", s.withLogging(s.handleGenerate))
	mux.HandleFunc("POST /templates/{id}/reset", s.withLogging(s.handleReset))
	mux.HandleFunc("DELETE /templates/{id}", s.withLogging(s.handleDelete))

	return mux
}

func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

const indexPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>documint</title></head>
<body>
  <h1>Upload a template</h1>
  <form action="/templates" method="POST" enctype="multipart/form-data">
    <input type="file" name="template" accept=".docx" required>
    <button type="submit">Upload</button>
  </form>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

// handleUpload accepts a multipart .docx upload, inspects it and starts an
// editing session.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("template")
	if err != nil {
		http.Error(w, "missing template file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.log.Error("read upload", zap.Error(err))
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	s.log.Info("template uploaded",
		zap.String("name", header.Filename),
		zap.String("size", humanize.Bytes(uint64(len(data)))),
	)

	insp, err := s.orch.Inspect(r.Context(), docxtpl.SourceFromBytes(header.Filename, data))
	if err != nil {
		s.writeInspectError(w, err)
		return
	}
	if insp.Warning != nil {
		s.log.Warn("template has no placeholders", zap.String("name", header.Filename))
	}

	id := s.sessions.Put(insp.Document, insp.Model, insp.State, insp.Warning)
	http.Redirect(w, r, "/templates/"+id, http.StatusSeeOther)
}

// handleForm renders the editing form for a session.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return
	}
	s.renderForm(w, r, sess, nil)
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, sess *session, fieldErrors map[string][]string) {
	html, err := s.orch.RenderForm(r.Context(), orchestrator.RenderRequest{
		Model: sess.model,
		RenderOptions: render.RenderOptions{
			Action: "/templates/" + sess.id + "/generate",
			Method: "POST",
			Values: sess.state.Values(),
			Errors: fieldErrors,
			Title:  sess.doc.Basename(),
		},
	})
	if err != nil {
		s.log.Error("render form", zap.Error(err))
		http.Error(w, "failed to render form", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// fieldsResponse is the JSON view of a session's form.
type fieldsResponse struct {
	Template string            `json:"template"`
	Fields   []fieldJSON       `json:"fields"`
	Values   map[string]string `json:"values"`
	Warning  string            `json:"warning,omitempty"`
}

type fieldJSON struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Base     string `json:"base,omitempty"`
	Label    string `json:"label"`
	ReadOnly bool   `json:"read_only"`
	Note     string `json:"note,omitempty"`
}

// handleFields returns the discovered fields and current values as JSON.
func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return
	}

	resp := fieldsResponse{
		Template: sess.model.Template,
		Values:   sess.state.Values(),
	}
	for _, f := range sess.model.Fields {
		resp.Fields = append(resp.Fields, fieldJSON{
			Name:     f.Name,
			Kind:     string(f.Kind),
			Base:     f.Base,
			Label:    f.Label,
			ReadOnly: f.ReadOnly,
			Note:     f.Note,
		})
	}
	if sess.warning != nil {
		resp.Warning = sess.warning.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encode fields", zap.Error(err))
	}
}

// handleUpdate applies submitted values to the session state and re-renders
// the form so derived fields show their recomputed values.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	fieldErrors := make(map[string][]string)
	for _, f := range sess.model.Fields {
		if f.ReadOnly {
			continue
		}
		if !r.PostForm.Has(f.Name) {
			continue
		}
		if err := sess.state.Set(f.Name, r.PostForm.Get(f.Name)); err != nil {
			fieldErrors[f.Name] = append(fieldErrors[f.Name], err.Error())
		}
	}

	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	s.renderForm(w, r, sess, fieldErrors)
}

// handleGenerate seeds the submitted values, fills the document and streams
// it back as an attachment.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		values[name] = r.PostForm.Get(name)
	}
	sess.state.Seed(values)

	out, err := s.orch.Fill(r.Context(), sess.doc, sess.state)
	if err != nil {
		s.log.Error("generate document", zap.Error(err))
		http.Error(w, "failed to generate document", http.StatusInternalServerError)
		return
	}

	name := sess.doc.OutputName()
	s.log.Info("document generated",
		zap.String("name", name),
		zap.String("size", humanize.Bytes(uint64(len(out)))),
	)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(out)
}

// handleReset clears all entered values and shows the blank form again.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return
	}
	sess.state.Reset()
	http.Redirect(w, r, "/templates/"+sess.id, http.StatusSeeOther)
}

// handleDelete discards a session entirely.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// writeInspectError maps pipeline failures onto HTTP statuses.
func (s *Server) writeInspectError(w http.ResponseWriter, err error) {
	var corrupt *docxtpl.CorruptArchiveError
	var syntax *docxtpl.SyntaxError
	switch {
	case errors.Is(err, docxtpl.ErrInvalidFileType):
		http.Error(w, "only .docx templates are accepted", http.StatusUnsupportedMediaType)
	case errors.As(err, &corrupt):
		http.Error(w, "file is not a valid .docx archive", http.StatusBadRequest)
	case errors.As(err, &syntax):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.log.Error("inspect template", zap.Error(err))
		http.Error(w, "failed to inspect template", http.StatusInternalServerError)
	}
}
