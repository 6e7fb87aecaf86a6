package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"NewsMap/internal/domain"
	"NewsMap/internal/ports"
)

// Locator asks the vision model where each mnemonic ended up in the
// rendered image. The stage is soft-optional: every failure path
// returns an empty list and the page builder falls back to
// deterministic placement.
type Locator struct {
	client *Client
	logger *slog.Logger
}

var _ ports.MnemonicLocator = (*Locator)(nil)

// NewLocator wires the shared Gemini client.
func NewLocator(client *Client, logger *slog.Logger) *Locator {
	return &Locator{client: client, logger: logger}
}

// Locate returns centre-point percentage coordinates per element id.
// Elements without an id are skipped; coordinates are clamped to 0-100.
func (l *Locator) Locate(ctx context.Context, image *domain.RenderedImage, elements []domain.StoryElement) []domain.Location {
	if image == nil || len(image.Data) == 0 {
		return nil
	}

	prompt := buildLocatePrompt(elements)
	if prompt == "" {
		return nil
	}

	if err := l.client.wait(ctx); err != nil {
		l.warn("wait for api cooldown", "error", err)
		return nil
	}

	mime := image.MimeType
	if mime == "" {
		mime = "image/png"
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image.Data, mime),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := l.client.genai.Models.GenerateContent(ctx,
		l.client.cfg.VisionModel,
		contents,
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		l.warn("vision analysis failed", "error", err)
		return nil
	}

	locations := parseLocations(resp.Text())

	if l.logger != nil {
		l.logger.Info("mnemonics located", "requested", len(elements), "found", len(locations))
	}

	return locations
}

func buildLocatePrompt(elements []domain.StoryElement) string {
	items := make([]string, 0, len(elements))
	for _, el := range elements {
		if el.ID <= 0 {
			continue
		}
		items = append(items, fmt.Sprintf("ID %d: %s (Look in: %s)", el.ID, el.VisualCue, el.Zone))
	}
	if len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Look at this illustration. Find the location of specific objects.\n")
	sb.WriteString("I have provided HINTS for where each object is located.\n\nList:\n")
	sb.WriteString(strings.Join(items, "\n"))
	sb.WriteString(`

For EACH ID:
1. Locate the object.
2. Return the (x, y) coordinates of the CENTER of that object.
3. Calculate x and y as PERCENTAGES (0 to 100) from the top-left corner.

Return JSON only:
{
    "locations": [
        { "id": 1, "x": 10, "y": 20 }
    ]
}
`)

	return sb.String()
}

// parseLocations treats the reply as untrusted: parse failures yield an
// empty list, entries without an id are dropped, values are clamped.
func parseLocations(text string) []domain.Location {
	cleaned := stripJSONFences(text)
	if cleaned == "" {
		return nil
	}

	var payload struct {
		Locations []domain.Location `json:"locations"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil
	}

	out := make([]domain.Location, 0, len(payload.Locations))
	for _, loc := range payload.Locations {
		if loc.ID <= 0 {
			continue
		}
		loc.X = clampPercent(loc.X)
		loc.Y = clampPercent(loc.Y)
		out = append(out, loc)
	}

	return out
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (l *Locator) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
