package page

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"NewsMap/internal/domain"
)

const archiveStampLayout = "20060102-150405"

// Site owns the on-disk layout of generated artifacts: the page files
// at the root, rasters under images/, timestamped copies under archive/.
type Site struct {
	dir        string
	imagesDir  string
	archiveDir string
	logger     *slog.Logger
}

// NewSite creates the directory layout lazily on first write.
func NewSite(dir, imagesDir, archiveDir string, logger *slog.Logger) *Site {
	if dir == "" {
		dir = "."
	}
	if imagesDir == "" {
		imagesDir = "images"
	}
	if archiveDir == "" {
		archiveDir = "archive"
	}
	return &Site{dir: dir, imagesDir: imagesDir, archiveDir: archiveDir, logger: logger}
}

// Dir returns the site root.
func (s *Site) Dir() string {
	return s.dir
}

// WritePage persists a page file at the site root.
func (s *Site) WritePage(filename string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create site dir: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", filename, err)
	}

	s.info("page written", "file", filename)
	return nil
}

// WriteImage validates the raster payload, persists it under images/,
// and returns the page-relative reference path.
func (s *Site) WriteImage(name string, img *domain.RenderedImage) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", fmt.Errorf("no image payload")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}

	dir := filepath.Join(s.dir, s.imagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}

	s.info("image saved", "file", name, "format", format, "width", cfg.Width, "height", cfg.Height)
	return filepath.ToSlash(filepath.Join(s.imagesDir, name)), nil
}

// Archive copies the page and image under timestamp-qualified names so
// past runs stay browsable next to the latest output.
func (s *Site) Archive(pageFile, imageName string, now time.Time) error {
	dir := filepath.Join(s.dir, s.archiveDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	stamp := now.UTC().Format(archiveStampLayout)

	if err := s.archiveCopy(filepath.Join(s.dir, pageFile), dir, pageFile, stamp); err != nil {
		return err
	}
	if imageName != "" {
		src := filepath.Join(s.dir, s.imagesDir, imageName)
		if err := s.archiveCopy(src, dir, imageName, stamp); err != nil {
			return err
		}
	}

	s.info("run archived", "stamp", stamp)
	return nil
}

func (s *Site) archiveCopy(src, dstDir, name, stamp string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s for archive: %w", name, err)
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	dst := filepath.Join(dstDir, fmt.Sprintf("%s-%s%s", base, stamp, ext))

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("archive %s: %w", name, err)
	}

	return nil
}

func (s *Site) info(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}
