package page

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"NewsMap/internal/domain"
)

func testStories(n int) []domain.Story {
	stories := make([]domain.Story, 0, n)
	for i := 1; i <= n; i++ {
		stories = append(stories, domain.Story{
			ID:          i,
			Title:       "Story " + strconv.Itoa(i),
			Source:      "Source " + strconv.Itoa(i),
			URL:         "https://example.org/" + strconv.Itoa(i),
			Description: "Description " + strconv.Itoa(i),
			Rationale:   "Hook " + strconv.Itoa(i),
		})
	}
	return stories
}

func buildDoc(t *testing.T, data []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse generated page: %v", err)
	}
	return doc
}

func TestBuildMarkerPanelBijection(t *testing.T) {
	t.Parallel()

	stories := testStories(5)
	locations := []domain.Location{
		{ID: 1, X: 10, Y: 10},
		{ID: 2, X: 50, Y: 50},
		{ID: 3, X: 90, Y: 90},
		{ID: 4, X: 25, Y: 70},
		{ID: 5, X: 75, Y: 30},
	}

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, locations)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := buildDoc(t, data)

	markers := doc.Find(".news-marker")
	if markers.Length() != 5 {
		t.Fatalf("expected 5 markers, got %d", markers.Length())
	}
	if panels := doc.Find(".summary-box"); panels.Length() != 5 {
		t.Fatalf("expected 5 panels, got %d", panels.Length())
	}

	seen := map[string]bool{}
	markers.Each(func(i int, marker *goquery.Selection) {
		id, ok := marker.Attr("data-story")
		if !ok {
			t.Errorf("marker %d has no story id", i)
			return
		}
		if seen[id] {
			t.Errorf("duplicate marker for story %s", id)
		}
		seen[id] = true

		if number := strings.TrimSpace(marker.Find(".marker-number").Text()); number != id {
			t.Errorf("marker %s renders number %q", id, number)
		}
		if marker.Find(".summary-box").Length() != 1 {
			t.Errorf("marker %s does not contain exactly one panel", id)
		}
	})

	for i := 1; i <= 5; i++ {
		if !seen[strconv.Itoa(i)] {
			t.Errorf("no marker for story %d", i)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	stories := testStories(4)
	locations := []domain.Location{{ID: 2, X: 33.3, Y: 66.6}}

	builder := NewBuilder()

	first, err := builder.Build("Front Page", "images/index.png", stories, locations)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := builder.Build("Front Page", "images/index.png", stories, locations)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("two builds of identical inputs differ")
	}
}

func TestBuildFallbackLocation(t *testing.T) {
	t.Parallel()

	stories := testStories(3)
	locations := []domain.Location{
		{ID: 1, X: 10, Y: 20},
		{ID: 2, X: 40, Y: 60},
	}

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, locations)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := buildDoc(t, data)

	marker := doc.Find(`.news-marker[data-story="3"]`)
	if marker.Length() != 1 {
		t.Fatalf("expected exactly one marker for story 3, got %d", marker.Length())
	}

	style, _ := marker.Attr("style")
	if !strings.Contains(style, "left: 75%") || !strings.Contains(style, "top: 85%") {
		t.Fatalf("story 3 did not get the fan-out fallback, style=%q", style)
	}
}

func TestBuildRationaleFallback(t *testing.T) {
	t.Parallel()

	stories := testStories(2)
	stories[1].Rationale = ""

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := buildDoc(t, data)

	hint := doc.Find(`.news-marker[data-story="2"] .mnemonic-hint`).Text()
	if !strings.Contains(hint, domain.PlaceholderRationale) {
		t.Fatalf("expected placeholder rationale, got %q", hint)
	}

	hint = doc.Find(`.news-marker[data-story="1"] .mnemonic-hint`).Text()
	if !strings.Contains(hint, "Hook 1") {
		t.Fatalf("expected real rationale, got %q", hint)
	}
}

func TestBuildTruncatesDescription(t *testing.T) {
	t.Parallel()

	stories := testStories(1)
	stories[0].Description = strings.Repeat("a", 200)

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := buildDoc(t, data)

	desc := strings.TrimSpace(doc.Find(".summary-box p").Text())
	if want := strings.Repeat("a", 140) + "..."; desc != want {
		t.Fatalf("expected truncated description of %d chars, got %d", len(want), len(desc))
	}
}

func TestBuildPopupClasses(t *testing.T) {
	t.Parallel()

	stories := testStories(3)
	locations := []domain.Location{
		{ID: 1, X: 10, Y: 10},
		{ID: 2, X: 50, Y: 50},
		{ID: 3, X: 90, Y: 90},
	}

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, locations)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := buildDoc(t, data)

	cases := map[string][]string{
		"1": {"popup-down", "popup-left"},
		"2": {"popup-up", "popup-center"},
		"3": {"popup-up", "popup-right"},
	}

	for id, wantClasses := range cases {
		box := doc.Find(`.news-marker[data-story="` + id + `"] .summary-box`)
		class, _ := box.Attr("class")
		for _, want := range wantClasses {
			if !strings.Contains(class, want) {
				t.Errorf("story %s: expected class %q in %q", id, want, class)
			}
		}
	}
}

func TestBuildEscapesUntrustedText(t *testing.T) {
	t.Parallel()

	stories := []domain.Story{{
		ID:          1,
		Title:       `<script>alert("x")</script>`,
		Source:      "S",
		URL:         "https://example.org/1",
		Description: "d",
		Rationale:   "r",
	}}

	data, err := NewBuilder().Build("Front Page", "images/index.png", stories, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if bytes.Contains(data, []byte(`<script>alert`)) {
		t.Fatal("model/feed text was not escaped")
	}
}

func TestFallbackLocationFansOut(t *testing.T) {
	t.Parallel()

	total := 3
	seenX := map[float64]bool{}
	for id := 1; id <= total; id++ {
		loc := fallbackLocation(id, total)
		if loc.Y != fallbackY {
			t.Fatalf("id %d: expected y=%v, got %v", id, fallbackY, loc.Y)
		}
		if loc.X <= 0 || loc.X >= 100 {
			t.Fatalf("id %d: x out of range: %v", id, loc.X)
		}
		if seenX[loc.X] {
			t.Fatalf("id %d: fan-out produced duplicate x=%v", id, loc.X)
		}
		seenX[loc.X] = true
	}
}
