package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"NewsMap/internal/domain"
	"NewsMap/internal/ports"
)

// Renderer asks the image model to draw the scene as a single unified
// composition and extracts the first inline raster payload.
type Renderer struct {
	client *Client
	logger *slog.Logger
}

var _ ports.SceneRenderer = (*Renderer)(nil)

// NewRenderer wires the shared Gemini client.
func NewRenderer(client *Client, logger *slog.Logger) *Renderer {
	return &Renderer{client: client, logger: logger}
}

// Render submits the visual brief. A response without an inline image
// payload counts as the model declining and fails the section.
func (r *Renderer) Render(ctx context.Context, concept *domain.SceneConcept) (*domain.RenderedImage, error) {
	if concept == nil {
		return nil, fmt.Errorf("no concept to render")
	}

	prompt := buildImagePrompt(concept)

	if err := r.client.wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for api cooldown: %w", err)
	}

	resp, err := r.client.genai.Models.GenerateContent(ctx,
		r.client.cfg.ImageModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseModalities: []string{"IMAGE"}},
	)
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	img := firstInlineImage(resp)
	if img == nil {
		return nil, fmt.Errorf("model returned no inline image")
	}

	if r.logger != nil {
		r.logger.Info("scene rendered", "bytes", len(img.Data), "mime", img.MimeType)
	}

	return img, nil
}

func buildImagePrompt(concept *domain.SceneConcept) string {
	var sb strings.Builder

	sb.WriteString("A high-quality, FULL COLOR digital illustration of a SINGLE, UNIFIED SCENE.\n")
	sb.WriteString("Format: Standard 4:3 Landscape aspect ratio (TV format).\n")
	sb.WriteString("Style: Educational medical illustration style (like a biology textbook or 'Sketchy Medical').\n")
	sb.WriteString("Colors: VIVID, HIGH SATURATION, FULL COLOR.\n")
	sb.WriteString("NEGATIVE PROMPT: NO floating objects, NO hovering items, NO text, NO words, NO letters, NO numbers, NO labels, NO signage, NO writing. NO comic book panels, NO grid, NO collage.\n\n")

	fmt.Fprintf(&sb, "Setting: %s\n\n", concept.SettingDescription)
	fmt.Fprintf(&sb, "Integrate these %d distinct objects seamlessly into the scene:\n", len(concept.Elements))

	for _, el := range concept.Elements {
		fmt.Fprintf(&sb, "- Located in the %s: %s (Integrated into the environment, NO TEXT)\n", el.Zone, el.VisualCue)
	}

	sb.WriteString("\nEnsure all objects are grounded (resting on surfaces or held by characters). Consistent lighting.")

	return sb.String()
}

// firstInlineImage walks the candidates for the first inline payload.
func firstInlineImage(resp *genai.GenerateContentResponse) *domain.RenderedImage {
	if resp == nil {
		return nil
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &domain.RenderedImage{Data: part.InlineData.Data, MimeType: mime}
		}
	}

	return nil
}
