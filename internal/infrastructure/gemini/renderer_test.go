package gemini

import (
	"strings"
	"testing"

	"google.golang.org/genai"

	"NewsMap/internal/domain"
)

func TestBuildImagePrompt(t *testing.T) {
	t.Parallel()

	concept := &domain.SceneConcept{
		SettingDescription: "A busy park on a sunny day.",
		Elements: []domain.StoryElement{
			{ID: 1, VisualCue: "A bull on a bench", Zone: "Foreground Left"},
			{ID: 2, VisualCue: "A jar of ice", Zone: "Background Center"},
		},
	}

	prompt := buildImagePrompt(concept)

	for _, want := range []string{
		"SINGLE, UNIFIED SCENE",
		"4:3 Landscape",
		"NO text",
		"Setting: A busy park on a sunny day.",
		"these 2 distinct objects",
		"Located in the Foreground Left: A bull on a bench",
		"Located in the Background Center: A jar of ice",
		"Consistent lighting",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q", want)
		}
	}
}

func TestFirstInlineImage(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "here is your image"},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 0x50}}},
					},
				},
			},
		},
	}

	img := firstInlineImage(resp)
	if img == nil {
		t.Fatal("expected an image, got nil")
	}
	if img.MimeType != "image/png" || len(img.Data) != 2 {
		t.Fatalf("unexpected image: %+v", img)
	}
}

func TestFirstInlineImageDefaultsMime(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{InlineData: &genai.Blob{Data: []byte{1}}},
					},
				},
			},
		},
	}

	img := firstInlineImage(resp)
	if img == nil {
		t.Fatal("expected an image, got nil")
	}
	if img.MimeType != "image/png" {
		t.Fatalf("expected default mime image/png, got %q", img.MimeType)
	}
}

func TestFirstInlineImageDeclined(t *testing.T) {
	t.Parallel()

	cases := map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{}}},
		"text only": {Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "cannot draw that"}}}},
		}},
		"empty payload": {Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{}}}}},
		}},
	}

	for name, resp := range cases {
		if img := firstInlineImage(resp); img != nil {
			t.Errorf("%s: expected nil, got %+v", name, img)
		}
	}
}
