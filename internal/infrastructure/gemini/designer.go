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

// Designer asks the text model to invent the memory-palace concept for
// one section. It is stateless: the previous theme flows in through the
// avoidTheme parameter and the chosen theme flows out on the concept.
type Designer struct {
	client *Client
	logger *slog.Logger
}

var _ ports.SceneDesigner = (*Designer)(nil)

// NewDesigner wires the shared Gemini client.
func NewDesigner(client *Client, logger *slog.Logger) *Designer {
	return &Designer{client: client, logger: logger}
}

// Design requests a scene concept as strict JSON and validates its
// shape. Any failure is total: the caller skips the section.
func (d *Designer) Design(ctx context.Context, stories []domain.Story, theme, avoidTheme string) (*domain.SceneConcept, error) {
	if len(stories) == 0 {
		return nil, fmt.Errorf("no stories to design for")
	}

	prompt := buildConceptPrompt(stories, theme, avoidTheme)

	if err := d.client.wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for api cooldown: %w", err)
	}

	resp, err := d.client.genai.Models.GenerateContent(ctx,
		d.client.cfg.TextModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("generate concept: %w", err)
	}

	concept, err := parseConcept(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("parse concept: %w", err)
	}

	if d.logger != nil {
		d.logger.Info("scene concept designed",
			"theme", concept.ThemeName,
			"elements", len(concept.Elements))
	}

	return concept, nil
}

func buildConceptPrompt(stories []domain.Story, theme, avoidTheme string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Here are exactly %d headlines:\n", len(stories))
	for _, story := range stories {
		fmt.Fprintf(&sb, "Story %d: %s\n", story.ID, story.Title)
	}

	sb.WriteString("\nCreate a \"Memory Palace\" scene.\n")
	if theme != "" {
		fmt.Fprintf(&sb, "Theme: %s\n", theme)
	} else {
		sb.WriteString("Theme: invent a vivid, concrete setting of your own choosing and name it in \"theme_name\".\n")
	}
	if avoidTheme != "" {
		fmt.Fprintf(&sb, "The previous run used the theme %q. Choose something clearly different.\n", avoidTheme)
	}

	sb.WriteString(`
Task:
1. Invent a cohesive setting based on the theme.
2. For EACH story, invent a Visual Mnemonic Symbol.
   - RULE 1 (Grounding): The object must sit on something or be held. NO floating.
   - RULE 2 (Connection): Use PUNS, SOUND-ALIKES, or LITERAL VISUALS.
     - Bad: "A scale" for Justice Dept (Too abstract).
     - Good: "A jar of ICE" for an ISIS story (Sound-alike).
     - Good: "A Bull" for a stock market rally (Literal/Iconic).
3. Provide a short "mnemonic_explanation" for why you chose that symbol.
4. Tag each element with an "assigned_zone" from this list:
`)
	fmt.Fprintf(&sb, "   %s\n", strings.Join(domain.Zones, ", "))

	sb.WriteString(`
Return JSON format only:
{
    "theme_name": "Short name of the chosen theme",
    "setting_description": "A detailed description of the setting...",
    "story_elements": [
        {
            "id": 1,
            "visual_cue": "A large Bull sleeping on a park bench",
            "mnemonic_explanation": "Bull represents the Bull Market; Sleeping suggests the market is dormant.",
            "assigned_zone": "Foreground Left"
        }
    ]
}
`)

	return sb.String()
}

// parseConcept unwraps, parses, and shape-checks the model reply. A
// single-element array wrapping the object is tolerated.
func parseConcept(text string) (*domain.SceneConcept, error) {
	cleaned := stripJSONFences(text)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response")
	}

	var concept domain.SceneConcept
	if err := json.Unmarshal([]byte(cleaned), &concept); err != nil {
		var wrapped []domain.SceneConcept
		if arrErr := json.Unmarshal([]byte(cleaned), &wrapped); arrErr != nil || len(wrapped) != 1 {
			return nil, fmt.Errorf("unmarshal concept: %w", err)
		}
		concept = wrapped[0]
	}

	if strings.TrimSpace(concept.SettingDescription) == "" {
		return nil, fmt.Errorf("concept is missing setting_description")
	}

	elements := concept.Elements[:0]
	for _, el := range concept.Elements {
		if el.ID <= 0 {
			continue
		}
		elements = append(elements, el)
	}
	concept.Elements = elements

	if len(concept.Elements) == 0 {
		return nil, fmt.Errorf("concept has no usable story_elements")
	}

	return &concept, nil
}
