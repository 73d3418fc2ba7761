package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"calcbox/internal/calc/units"
	toolcatalog "calcbox/internal/catalog"
	"calcbox/internal/domain"
	domaintypes "calcbox/internal/domain/types"
	"calcbox/internal/remote"
	"calcbox/internal/services/calculator"
)

const maxRunBody = 64 << 10

// CategoryInfo is one entry of GET /api/categories.
type CategoryInfo struct {
	Name  domain.Category `json:"name"`
	Icon  string          `json:"icon,omitempty"`
	Color string          `json:"color,omitempty"`
	Count int             `json:"count"`
}

// ToolDetail is the body of GET /api/tools/{slug}.
type ToolDetail struct {
	domain.ToolDescriptor
	DescriptionHTML string         `json:"description_html"`
	Route           string         `json:"route"`
	Icon            string         `json:"icon"`
	Color           string         `json:"color"`
	Runnable        bool           `json:"runnable"`
	Params          []domain.Param `json:"params,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"tools":  s.source.Current().Len(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	tools := s.source.Current().Tools()
	counts := make(map[domain.Category]int, len(tools))
	for _, t := range tools {
		counts[t.Category]++
	}

	out := []CategoryInfo{{Name: domain.CategoryAll, Count: len(tools)}}
	for _, c := range toolcatalog.Categories() {
		meta, err := toolcatalog.MetaFor(c)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out = append(out, CategoryInfo{Name: c, Icon: meta.Icon, Color: meta.Color, Count: counts[c]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, ok := domaintypes.ParseCategory(q.Get("category"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown category "+q.Get("category"))
		return
	}

	// The body is a pure function of the catalog and the URL.
	cat := s.source.Current()
	etag := cat.ETag()
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	tools := cat.Filter(q.Get("q"), category)
	if tools == nil {
		tools = []domain.ToolDescriptor{}
	}
	writeJSON(w, http.StatusOK, remote.ToolList{Category: category, Tools: tools})
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat := s.source.Current()
	t, ok := cat.Lookup(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tool "+slug)
		return
	}

	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(t.Description), &html); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	route, err := cat.Route(t.Slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	meta, err := toolcatalog.MetaFor(t.Category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	detail := ToolDetail{
		ToolDescriptor:  t,
		DescriptionHTML: html.String(),
		Route:           route,
		Icon:            meta.Icon,
		Color:           meta.Color,
	}
	if params, err := s.calculator.ToolParams(slug); err == nil {
		detail.Runnable = true
		detail.Params = params
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req remote.RunRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRunBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	out, err := s.calculator.RunTool(r.Context(), slug, req.Args)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, out)
	case errors.Is(err, toolcatalog.ErrUnknownTool):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, calculator.ErrComingSoon), errors.Is(err, calculator.ErrNotRunnable):
		writeError(w, http.StatusNotImplemented, err.Error())
	default:
		s.logger.Printf("run %s: %v", slug, err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleUnits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, units.Tables())
}

func (s *Server) handleUnitFamily(w http.ResponseWriter, r *http.Request) {
	t, err := units.Lookup(chi.URLParam(r, "family"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// writeJSON encodes v before committing the status so that an unencodable
// value becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(remote.ErrorBody{Error: "encode response: " + err.Error()})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, remote.ErrorBody{Error: msg})
}
