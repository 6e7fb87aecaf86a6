package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"NewsMap/internal/ports"
)

// ThemeFile is a single-slot, file-backed memory of the theme chosen by
// the previous run. No history depth, no cross-process coordination:
// each run reads the slot at the start and overwrites it at the end.
type ThemeFile struct {
	path string
}

var _ ports.ThemeStore = (*ThemeFile)(nil)

// NewThemeFile points the store at its backing file.
func NewThemeFile(path string) *ThemeFile {
	return &ThemeFile{path: path}
}

// Load returns the remembered theme, or "" when the slot is empty or
// the file does not exist yet.
func (t *ThemeFile) Load() string {
	raw, err := os.ReadFile(t.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Save overwrites the slot with the theme chosen this run.
func (t *ThemeFile) Save(theme string) error {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil
	}

	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme dir: %w", err)
		}
	}

	if err := os.WriteFile(t.path, []byte(theme+"\n"), 0o644); err != nil {
		return fmt.Errorf("write theme file: %w", err)
	}

	return nil
}
