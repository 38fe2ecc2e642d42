// Package workspace tracks the scratch files a single request writes to disk.
//
// Types:
//   - Workspace: Files written for one request, removed by Cleanup.
//
// Expected outputs:
// - File names are unique (<prefix>-<uuid><ext>)
// - Cleanup removes every file the workspace created
// - Sweep only touches names Save could have produced
//
// Workspaces are never shared between requests.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pdf-metadata-api/internal/utils"

	"github.com/google/uuid"
)

type Workspace struct {
	Dir   string
	Files []string
	Mutex sync.Mutex
}

func New(dir string) *Workspace {
	return &Workspace{
		Dir:   dir,
		Files: []string{},
	}
}

// Save writes data to a new file named after prefix and ext and returns its path.
func (w *Workspace) Save(prefix, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", err
	}
	name := utils.SanitizeFilename(fmt.Sprintf("%s-%s%s", prefix, utils.GenerateUUID(), ext))
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	w.AddFile(path)
	return path, nil
}

func (w *Workspace) AddFile(path string) {
	w.Mutex.Lock()
	defer w.Mutex.Unlock()
	w.Files = append(w.Files, path)
}

func (w *Workspace) GetFiles() []string {
	w.Mutex.Lock()
	defer w.Mutex.Unlock()
	return append([]string(nil), w.Files...)
}

func (w *Workspace) Cleanup() {
	w.Mutex.Lock()
	defer w.Mutex.Unlock()
	for _, file := range w.Files {
		os.Remove(file)
	}
	w.Files = nil
}

// IsScratchName reports whether name has the <prefix>-<uuid><ext> shape Save uses.
func IsScratchName(name string) bool {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) < 38 || base[len(base)-37] != '-' {
		return false
	}
	_, err := uuid.Parse(base[len(base)-36:])
	return err == nil
}

// Sweep removes scratch files in dir older than maxAge. A zero maxAge removes
// all of them. Files with any other name are left alone.
func Sweep(dir string, maxAge time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsScratchName(entry.Name()) {
			continue
		}
		if maxAge > 0 {
			info, err := entry.Info()
			if err != nil || time.Since(info.ModTime()) < maxAge {
				continue
			}
		}
		_ = os.Remove(filepath.Join(dir, entry.Name()))
	}
}
