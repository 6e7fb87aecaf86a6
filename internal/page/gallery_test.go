package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsMap/internal/domain"
)

func writeArchivePage(t *testing.T, dir, name, heading string) {
	t.Helper()

	html := "<html><head><title>t</title></head><body><h1>" + heading + "</h1></body></html>"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(html), 0o644); err != nil {
		t.Fatalf("write archive page: %v", err)
	}
}

func TestRebuildGalleryNewestFirst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	site := NewSite(root, "images", "archive", nil)

	archiveDir := filepath.Join(root, "archive")
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		t.Fatalf("mkdir archive: %v", err)
	}

	writeArchivePage(t, archiveDir, "index-20250101-120000.html", "NewsMap: Old Run")
	writeArchivePage(t, archiveDir, "index-20250301-120000.html", "NewsMap: New Run")
	writeArchivePage(t, archiveDir, "index-20250201-120000.html", "NewsMap: Middle Run")
	writeArchivePage(t, archiveDir, "nostamp.html", "Ignored")

	if err := site.RebuildGallery("gallery.html"); err != nil {
		t.Fatalf("rebuild gallery: %v", err)
	}

	f, err := os.Open(filepath.Join(root, "gallery.html"))
	if err != nil {
		t.Fatalf("open gallery: %v", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatalf("parse gallery: %v", err)
	}

	var titles []string
	doc.Find(".entry a").Each(func(i int, sel *goquery.Selection) {
		titles = append(titles, strings.TrimSpace(sel.Text()))
	})

	want := []string{"NewsMap: New Run", "NewsMap: Middle Run", "NewsMap: Old Run"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(titles), titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("entry %d: got %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestRebuildGalleryEmptyArchive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	site := NewSite(root, "images", "archive", nil)

	if err := site.RebuildGallery("gallery.html"); err != nil {
		t.Fatalf("rebuild gallery without archive dir: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "gallery.html"))
	if err != nil {
		t.Fatalf("read gallery: %v", err)
	}
	if !strings.Contains(string(data), "No archived pages yet.") {
		t.Fatal("empty gallery is missing its placeholder entry")
	}
}

func TestRebuildGalleryIsFullRegeneration(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	site := NewSite(root, "images", "archive", nil)

	archiveDir := filepath.Join(root, "archive")
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		t.Fatalf("mkdir archive: %v", err)
	}

	writeArchivePage(t, archiveDir, "index-20250101-120000.html", "First")
	if err := site.RebuildGallery("gallery.html"); err != nil {
		t.Fatalf("first rebuild: %v", err)
	}

	if err := os.Remove(filepath.Join(archiveDir, "index-20250101-120000.html")); err != nil {
		t.Fatalf("remove archived page: %v", err)
	}
	writeArchivePage(t, archiveDir, "index-20250102-120000.html", "Second")

	if err := site.RebuildGallery("gallery.html"); err != nil {
		t.Fatalf("second rebuild: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "gallery.html"))
	if err != nil {
		t.Fatalf("read gallery: %v", err)
	}
	if strings.Contains(string(data), "First") {
		t.Fatal("gallery still lists a removed archive entry")
	}
	if !strings.Contains(string(data), "Second") {
		t.Fatal("gallery is missing the new archive entry")
	}
}

func TestParseArchiveStamp(t *testing.T) {
	t.Parallel()

	stamp, ok := parseArchiveStamp("index-20250301-120000.html")
	if !ok {
		t.Fatal("expected a parsable stamp")
	}
	want := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	if !stamp.Equal(want) {
		t.Fatalf("got %v, want %v", stamp, want)
	}

	if _, ok := parseArchiveStamp("index.html"); ok {
		t.Fatal("expected no stamp for unqualified name")
	}
	if _, ok := parseArchiveStamp("x.html"); ok {
		t.Fatal("expected no stamp for short name")
	}
}

func TestArchiveCopiesPageAndImage(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	site := NewSite(root, "images", "archive", nil)

	if err := site.WritePage("index.html", []byte("<html><h1>Run</h1></html>")); err != nil {
		t.Fatalf("write page: %v", err)
	}
	img := &domain.RenderedImage{Data: tinyPNG(t), MimeType: "image/png"}
	if _, err := site.WriteImage("index.png", img); err != nil {
		t.Fatalf("write image: %v", err)
	}

	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	if err := site.Archive("index.html", "index.png", now); err != nil {
		t.Fatalf("archive: %v", err)
	}

	for _, name := range []string{"index-20250301-120000.html", "index-20250301-120000.png"} {
		if _, err := os.Stat(filepath.Join(root, "archive", name)); err != nil {
			t.Errorf("expected archived file %s: %v", name, err)
		}
	}
}
