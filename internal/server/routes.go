// Package server sets up the HTTP server and registers API routes.
//
// RegisterRoutes returns an http.Handler with all API endpoints for
// watermarking and metadata.
//
// Expected outputs:
// - PDF endpoints are available under /pdf and require the X-API-Key header
// - /health is public, /swagger/* is served to localhost only
// - CORS and logging middleware are enabled
package server

import (
	"crypto/subtle"
	"net"
	"net/http"

	_ "pdf-metadata-api/docs"
	"pdf-metadata-api/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// APIKeyHeader carries the internal API key.
const APIKeyHeader = "X-API-Key"

// Only allow requests from localhost to /swagger/*
func localhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, _ := net.SplitHostPort(r.RemoteAddr)
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAPIKey rejects requests whose X-API-Key does not match key.
// An empty key disables the check.
func requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(APIKeyHeader)), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", APIKeyHeader},
		ExposedHeaders: []string{"Content-Disposition"},
	}))
	r.With(localhostOnly).Get("/swagger/*", httpSwagger.WrapHandler)

	h := handlers.NewAPIHandler(s.UploadDir, s.MaxUploadSize, s.Resolver, s.Stamper)
	r.Get("/health", h.Health)
	r.Route("/pdf", func(api chi.Router) {
		api.Use(requireAPIKey(s.APIKey))
		api.Post("/watermark", h.Watermark)
		api.Post("/metadata/get", h.GetMetadata)
		api.Post("/metadata/set", h.SetMetadata)
	})

	return r
}
