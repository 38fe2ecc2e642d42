// Package config reads the service configuration from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-metadata-api/internal/pdf"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port              int
	APIKey            string
	UploadDir         string
	MaxUploadSize     int64
	ImageFetchTimeout time.Duration
	LogLevel          string
	LogFormat         string
	Branding          pdf.Branding
}

func Load() Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 3000
	}

	maxMB, err := strconv.Atoi(os.Getenv("MAX_UPLOAD_MB"))
	if err != nil || maxMB <= 0 {
		maxMB = 50
	}

	timeout, err := time.ParseDuration(os.Getenv("IMAGE_FETCH_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	branding := pdf.DefaultBranding()
	override(&branding.Producer, "PROVENANCE_PRODUCER")
	override(&branding.Creator, "PROVENANCE_CREATOR")
	override(&branding.Title, "PROVENANCE_TITLE")
	override(&branding.Comment, "PROVENANCE_COMMENT")

	return Config{
		Port:              port,
		APIKey:            strings.TrimSpace(os.Getenv("INTERNAL_API_KEY")),
		UploadDir:         envOr("UPLOAD_DIR", "uploads"),
		MaxUploadSize:     int64(maxMB) * 1024 * 1024,
		ImageFetchTimeout: timeout,
		LogLevel:          envOr("LOG_LEVEL", "info"),
		LogFormat:         envOr("LOG_FORMAT", "text"),
		Branding:          branding,
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
