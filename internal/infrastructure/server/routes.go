package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

const (
	indexFile      = "index.html"
	openSearchFile = "opensearch.xml"

	openSearchContentType = "application/opensearchdescription+xml"
	htmlContentType       = "text/html; charset=utf-8"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /suggest", s.handleSuggest)
	mux.HandleFunc("GET /opensearch.xml", s.handleStatic(openSearchFile, openSearchContentType))
	mux.HandleFunc("GET /{$}", s.handleStatic(indexFile, htmlContentType))

	var h http.Handler = mux
	h = rateLimit(s.opts.RequestsPerSecond, s.opts.Burst)(h)
	return withLogging(s.logger)(h)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := queryParam(r)
	if !ok {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	target := s.currentResolver().SearchURL(r.Context(), query)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query, ok := queryParam(r)
	if !ok {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	target := s.currentResolver().SuggestURL(r.Context(), query)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleStatic serves one file from the static directory, read on every
// request so edits show up without a restart.
func (s *Server) handleStatic(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.opts.StaticDir, name)

		f, err := os.Open(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				loggerFor(r).Warn().Err(err).Str("path", path).Msg("failed to open static file")
			}
			http.NotFound(w, r)
			return
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}

// queryParam returns the q parameter. An empty value counts as present.
func queryParam(r *http.Request) (string, bool) {
	values, ok := r.URL.Query()["q"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
