// Package main API.
//
// pdf-metadata-api provides a REST API for watermarking PDF files and for
// reading and writing their document metadata.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//	Host: localhost:3000
//
//	Consumes:
//	- multipart/form-data
//
//	Produces:
//	- application/json
//	- application/pdf
//
// swagger:meta
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-metadata-api/internal/config"
	"pdf-metadata-api/internal/logging"
	"pdf-metadata-api/internal/server"
	"pdf-metadata-api/internal/workspace"
)

func gracefulShutdown(apiServer *http.Server, done chan bool, cleanupFunc func()) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	if cleanupFunc != nil {
		log.Println("Cleaning scratch directory")
		cleanupFunc()
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	cfg := config.Load()
	logging.SetLogger(logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel))

	cleanupScratch := func() { workspace.Sweep(cfg.UploadDir, 0) }

	// Remove scratch files left over from a previous run
	cleanupScratch()

	log.Printf("Starting server on port %d", cfg.Port)

	server := server.NewServer(cfg)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(server, done, cleanupScratch)

	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Println("Graceful shutdown complete.")
}
