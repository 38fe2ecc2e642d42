package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "INTERNAL_API_KEY", "UPLOAD_DIR", "MAX_UPLOAD_MB", "IMAGE_FETCH_TIMEOUT", "PROVENANCE_TITLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, 3000, cfg.Port)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(50*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, 10*time.Second, cfg.ImageFetchTimeout)
	assert.Equal(t, "Metadata-API Document", cfg.Branding.Title)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("INTERNAL_API_KEY", " secret ")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("IMAGE_FETCH_TIMEOUT", "2s")
	t.Setenv("PROVENANCE_PRODUCER", "Acme PDF")

	cfg := Load()
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, 2*time.Second, cfg.ImageFetchTimeout)
	assert.Equal(t, "Acme PDF", cfg.Branding.Producer)
	assert.Equal(t, "Metadata-API", cfg.Branding.Creator)
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	assert.Equal(t, 3000, Load().Port)
}
