package domain

// Placeholder values used when the feed returns fewer usable articles
// than a section requested, or when a field is absent upstream.
const (
	PlaceholderTitle       = "More Content Coming Soon"
	PlaceholderSource      = "System"
	PlaceholderURL         = "#"
	PlaceholderDescription = "Waiting for more headlines to populate."
	PlaceholderRationale   = "Visual mnemonic for this story."

	DefaultTitle       = "Unknown Title"
	DefaultSource      = "Unknown Source"
	DefaultDescription = "No description available."
)

// Story is one headline slot on the generated page. IDs are 1-based
// ordinal positions and stay dense regardless of feed scarcity.
type Story struct {
	ID          int
	Title       string
	Source      string
	URL         string
	Description string
	Rationale   string
}

// PlaceholderStory pads the headline list up to the requested count.
func PlaceholderStory(id int) Story {
	return Story{
		ID:          id,
		Title:       PlaceholderTitle,
		Source:      PlaceholderSource,
		URL:         PlaceholderURL,
		Description: PlaceholderDescription,
	}
}
