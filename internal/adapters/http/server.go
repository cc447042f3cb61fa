// Package http serves a generated documentation tree for local preview.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHandler returns the preview handler: the documentation tree under
// docsDir as static files plus the build metrics on /metrics.
func NewHandler(docsDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(docsDir)))

	return r
}
