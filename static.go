package main

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// mountFrontend serves the prebuilt frontend: index.html at the root and the
// remaining assets (dashboard.html, css/, js/) straight from dir. API routes
// are registered first, so nothing under /api ever falls through to here.
func mountFrontend(r chi.Router, dir string) {
	fs := http.FileServer(http.Dir(dir))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(dir, "index.html"))
	})
	r.Get("/*", fs.ServeHTTP)
}
