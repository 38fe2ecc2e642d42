// Package server provides the HTTP server setup for the metadata API.
//
// NewServer creates and configures the HTTP server, the watermark image
// resolver, the provenance stamper and the scratch upload directory.
//
// Expected outputs:
// - Server listens on the configured port (default 3000)
// - Stale scratch files are swept periodically
//
// Usage:
//
//	server := server.NewServer(config.Load())
//	server.ListenAndServe()
//
// See internal/server/routes.go for route registration.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pdf-metadata-api/internal/config"
	"pdf-metadata-api/internal/images"
	"pdf-metadata-api/internal/logging"
	"pdf-metadata-api/internal/pdf"
	"pdf-metadata-api/internal/workspace"
)

// Scratch files older than this belong to requests that can no longer be running.
const staleScratchAge = 10 * time.Minute

type Server struct {
	port          int
	APIKey        string
	UploadDir     string
	MaxUploadSize int64
	Resolver      *images.Resolver
	Stamper       *pdf.Stamper
}

func newServer(cfg config.Config) *Server {
	return &Server{
		port:          cfg.Port,
		APIKey:        cfg.APIKey,
		UploadDir:     cfg.UploadDir,
		MaxUploadSize: cfg.MaxUploadSize,
		Resolver:      images.NewResolver(images.NewFetcher(cfg.ImageFetchTimeout)),
		Stamper:       pdf.NewStamper(cfg.Branding),
	}
}

func NewServer(cfg config.Config) *http.Server {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logging.Logger().Error("creating upload directory", "dir", cfg.UploadDir, "error", err)
	}

	srv := newServer(cfg)
	if srv.APIKey == "" {
		logging.Logger().Warn("INTERNAL_API_KEY is not set, /pdf routes accept unauthenticated requests")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", srv.port),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := context.WithCancel(context.Background())
	server.RegisterOnShutdown(stop)
	go sweepScratch(ctx, srv.UploadDir, staleScratchAge)

	return server
}

// sweepScratch removes scratch files left behind by crashed requests every
// interval until ctx is done.
func sweepScratch(ctx context.Context, dir string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			workspace.Sweep(dir, interval)
		}
	}
}
