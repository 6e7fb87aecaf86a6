package page

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"NewsMap/internal/domain"
)

const (
	descriptionLimit = 140
	fallbackY        = 85.0
)

// Builder renders the interactive section page: one positioned marker
// and one detail panel per story, over the rendered scene image.
type Builder struct {
	tmpl *template.Template
}

// NewBuilder parses the page template once.
func NewBuilder() *Builder {
	return &Builder{tmpl: template.Must(template.New("page").Parse(pageTemplate))}
}

type markerView struct {
	ID          int
	X           string
	Y           string
	VClass      string
	HClass      string
	Title       string
	Source      string
	Rationale   string
	Description string
	URL         string
}

type pageView struct {
	SectionName string
	ImagePath   string
	Markers     []markerView
}

// Build produces the page bytes. Output is deterministic for identical
// inputs: every story yields exactly one marker and one panel, using
// the matched location or the ordinal fan-out fallback.
func (b *Builder) Build(sectionName, imagePath string, stories []domain.Story, locations []domain.Location) ([]byte, error) {
	view := pageView{
		SectionName: sectionName,
		ImagePath:   imagePath,
		Markers:     make([]markerView, 0, len(stories)),
	}

	for _, story := range stories {
		loc := locationFor(story.ID, len(stories), locations)

		rationale := story.Rationale
		if rationale == "" {
			rationale = domain.PlaceholderRationale
		}

		view.Markers = append(view.Markers, markerView{
			ID:          story.ID,
			X:           formatPercent(loc.X),
			Y:           formatPercent(loc.Y),
			VClass:      verticalClass(loc.Y),
			HClass:      horizontalClass(loc.X),
			Title:       story.Title,
			Source:      story.Source,
			Rationale:   rationale,
			Description: truncate(story.Description, descriptionLimit),
			URL:         story.URL,
		})
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	return buf.Bytes(), nil
}

// locationFor matches by id (linear scan), falling back to an ordinal
// horizontal fan-out along the lower band so that several unlocated
// markers never stack on one point.
func locationFor(id, total int, locations []domain.Location) domain.Location {
	for _, loc := range locations {
		if loc.ID == id {
			return loc
		}
	}
	return fallbackLocation(id, total)
}

func fallbackLocation(id, total int) domain.Location {
	if total <= 0 {
		total = 1
	}
	return domain.Location{
		ID: id,
		X:  100 * float64(id) / float64(total+1),
		Y:  fallbackY,
	}
}

// verticalClass opens the panel away from the nearest page edge.
func verticalClass(y float64) string {
	if y < 40 {
		return "popup-down"
	}
	return "popup-up"
}

func horizontalClass(x float64) string {
	switch {
	case x < 20:
		return "popup-left"
	case x > 80:
		return "popup-right"
	default:
		return "popup-center"
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
