package page

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsMap/internal/domain"
)

var galleryTmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

type galleryEntry struct {
	Href  string
	Title string
	When  string
}

type galleryView struct {
	Entries []galleryEntry
}

// RebuildGallery regenerates the gallery index from scratch by scanning
// the archive directory newest-first. The gallery is always a full
// rebuild, never an incremental append.
func (s *Site) RebuildGallery(galleryFile string) error {
	if galleryFile == "" {
		galleryFile = "gallery.html"
	}

	entries, err := s.scanArchive()
	if err != nil {
		return err
	}

	view := galleryView{Entries: make([]galleryEntry, 0, len(entries))}
	for _, entry := range entries {
		view.Entries = append(view.Entries, galleryEntry{
			Href:  filepath.ToSlash(filepath.Join(s.archiveDir, entry.PageFile)),
			Title: entry.Title,
			When:  entry.Timestamp.UTC().Format("2 Jan 2006 15:04 UTC"),
		})
	}

	var buf strings.Builder
	if err := galleryTmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}

	if err := s.WritePage(galleryFile, []byte(buf.String())); err != nil {
		return err
	}

	s.info("gallery rebuilt", "entries", len(view.Entries))
	return nil
}

// scanArchive lists archived pages, extracting each page's heading for
// the gallery caption and its timestamp from the file name.
func (s *Site) scanArchive() ([]domain.ArchiveEntry, error) {
	dir := filepath.Join(s.dir, s.archiveDir)

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var entries []domain.ArchiveEntry
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".html") {
			continue
		}

		stamp, ok := parseArchiveStamp(file.Name())
		if !ok {
			continue
		}

		entries = append(entries, domain.ArchiveEntry{
			PageFile:  file.Name(),
			Title:     s.archivedPageTitle(filepath.Join(dir, file.Name())),
			Timestamp: stamp,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].PageFile < entries[j].PageFile
	})

	return entries, nil
}

// parseArchiveStamp recovers the timestamp suffix written by Archive.
func parseArchiveStamp(name string) (time.Time, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) < len(archiveStampLayout) {
		return time.Time{}, false
	}

	stamp := base[len(base)-len(archiveStampLayout):]
	parsed, err := time.ParseInLocation(archiveStampLayout, stamp, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

func (s *Site) archivedPageTitle(path string) string {
	fallback := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fallback
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return fallback
	}

	return title
}
