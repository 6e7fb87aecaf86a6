package ports

import (
	"context"

	"NewsMap/internal/domain"
)

// StorySource returns exactly count stories with ids 1..count. Feed
// errors are absorbed by the implementation: missing articles are
// padded with placeholder records, so downstream stages always receive
// a fixed-size, densely-indexed list.
type StorySource interface {
	FetchTop(ctx context.Context, category string, count int) []domain.Story
}

// SceneDesigner asks a text model to invent the memory-palace concept.
// An error means the section must be skipped.
type SceneDesigner interface {
	Design(ctx context.Context, stories []domain.Story, theme, avoidTheme string) (*domain.SceneConcept, error)
}

// SceneRenderer asks an image model to draw the scene. An error means
// the model declined and the section must be skipped.
type SceneRenderer interface {
	Render(ctx context.Context, concept *domain.SceneConcept) (*domain.RenderedImage, error)
}

// MnemonicLocator asks a vision model for centre-point percentage
// coordinates. This stage is soft-optional: any failure yields an
// empty list and consumers fall back to deterministic placement.
type MnemonicLocator interface {
	Locate(ctx context.Context, image *domain.RenderedImage, elements []domain.StoryElement) []domain.Location
}

// ThemeStore is the single-slot memory of the previously chosen theme,
// shared between independent process runs.
type ThemeStore interface {
	Load() string
	Save(theme string) error
}

// RunRepository persists section run outcomes for history/audit.
type RunRepository interface {
	SaveRun(ctx context.Context, rec domain.RunRecord) error
}

// Publisher pushes generated artifacts to an external sink (e.g. git).
type Publisher interface {
	Sync(ctx context.Context, message string) error
}
