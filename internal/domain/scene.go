package domain

// Zones is the coarse placement vocabulary offered to the text model.
// Zone labels are hints for the renderer and locator, not coordinates.
var Zones = []string{
	"Foreground Left", "Foreground Center", "Foreground Right",
	"Midground Far Left", "Midground Left", "Midground Right", "Midground Far Right",
	"Background Left", "Background Center", "Background Right",
}

// StoryElement is one visual mnemonic invented for a headline.
// JSON tags match the shape requested from the text model.
type StoryElement struct {
	ID        int    `json:"id"`
	VisualCue string `json:"visual_cue"`
	Rationale string `json:"mnemonic_explanation"`
	Zone      string `json:"assigned_zone"`
}

// SceneConcept is the text model's structured description of the
// memory-palace scene for one section run. Read-only once produced.
type SceneConcept struct {
	SettingDescription string         `json:"setting_description"`
	ThemeName          string         `json:"theme_name,omitempty"`
	Narrative          string         `json:"narrative,omitempty"`
	Elements           []StoryElement `json:"story_elements"`
}

// ElementByID finds the mnemonic element for a story id. Linear scan;
// element lists never exceed a page worth of headlines.
func (c *SceneConcept) ElementByID(id int) (StoryElement, bool) {
	for _, el := range c.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return StoryElement{}, false
}

// Location is a centre-point for one element, as percentages of the
// rendered image's width and height.
type Location struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// RenderedImage is the raster payload extracted from the image model.
type RenderedImage struct {
	Data     []byte
	MimeType string
}
