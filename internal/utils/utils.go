// Package utils provides utility functions for scratch file naming.
//
// Functions:
//   - SanitizeFilename: Returns a name safe to create under the upload directory.
//     Input: string (filename)
//     Output: string (sanitized filename, at most 100 bytes, extension kept)
//   - GenerateUUID: Returns a new UUID string.
//     Output: string (UUID)
package utils

import (
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

const maxFilenameLen = 100

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func SanitizeFilename(name string) string {
	safe := unsafeChars.ReplaceAllString(filepath.Base(name), "_")
	if len(safe) <= maxFilenameLen {
		return safe
	}
	ext := filepath.Ext(safe)
	if len(ext) >= maxFilenameLen {
		return safe[:maxFilenameLen]
	}
	return safe[:maxFilenameLen-len(ext)] + ext
}

func GenerateUUID() string {
	return uuid.New().String()
}
