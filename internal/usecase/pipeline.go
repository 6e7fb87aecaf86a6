package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"NewsMap/internal/config"
	"NewsMap/internal/domain"
	"NewsMap/internal/page"
	"NewsMap/internal/ports"
	"NewsMap/internal/source"
)

// PipelineDeps wires all driven adapters into the generation pipeline.
// Themes, Repository, and Publisher are optional and may stay nil.
type PipelineDeps struct {
	Registry    *source.Registry
	Designer    ports.SceneDesigner
	Renderer    ports.SceneRenderer
	Locator     ports.MnemonicLocator
	Themes      ports.ThemeStore
	Repository  ports.RunRepository
	Publisher   ports.Publisher
	Site        *page.Site
	Builder     *page.Builder
	Sections    []config.SectionConfig
	GalleryFile string
	SyncMessage string
	Logger      *slog.Logger
	Now         func() time.Time
}

// Pipeline runs the five-stage generation once per configured section.
type Pipeline struct {
	deps PipelineDeps
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Pipeline{deps: deps}
}

// Run processes every configured section in order. A failed section is
// logged and skipped; it never aborts the remaining sections or the
// process. The optional git sync happens once, after all sections.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, section := range p.deps.Sections {
		p.processSection(ctx, section)
	}

	if p.deps.Publisher != nil {
		if err := p.deps.Publisher.Sync(ctx, p.deps.SyncMessage); err != nil {
			p.warn("git sync failed", "error", err)
		}
	}

	return nil
}

func (p *Pipeline) processSection(ctx context.Context, section config.SectionConfig) {
	log := p.sectionLogger(section.Name)
	log.Info("processing section", "category", section.Category, "stories", section.StoryCount)

	sourceName := section.Source
	if sourceName == "" {
		sourceName = "newsapi"
	}
	src, err := p.deps.Registry.Resolve(sourceName)
	if err != nil {
		log.Error("cannot resolve story source", "source", sourceName, "error", err)
		return
	}

	stories := src.FetchTop(ctx, section.Category, section.StoryCount)
	if len(stories) == 0 {
		log.Warn("section has no stories, skipping")
		return
	}

	avoidTheme := ""
	if p.deps.Themes != nil {
		avoidTheme = p.deps.Themes.Load()
	}

	concept, err := p.deps.Designer.Design(ctx, stories, section.Theme, avoidTheme)
	if err != nil {
		log.Warn("concept generation failed, skipping section", "error", err)
		p.recordRun(ctx, skippedRun(section, ""))
		return
	}

	mergeRationales(stories, concept)

	img, err := p.deps.Renderer.Render(ctx, concept)
	if err != nil {
		log.Warn("image generation failed, skipping section", "error", err)
		p.recordRun(ctx, skippedRun(section, chosenTheme(section, concept)))
		return
	}

	imageName := imageFileName(section.Filename)
	imagePath, err := p.deps.Site.WriteImage(imageName, img)
	if err != nil {
		log.Warn("cannot save image, skipping section", "error", err)
		p.recordRun(ctx, skippedRun(section, chosenTheme(section, concept)))
		return
	}

	locations := p.deps.Locator.Locate(ctx, img, concept.Elements)

	pageBytes, err := p.deps.Builder.Build(section.Name, imagePath, stories, locations)
	if err != nil {
		log.Error("page rendering failed", "error", err)
		return
	}

	if err := p.deps.Site.WritePage(section.Filename, pageBytes); err != nil {
		log.Error("cannot write page", "error", err)
		return
	}

	if err := p.deps.Site.Archive(section.Filename, imageName, p.deps.Now()); err != nil {
		log.Warn("archive failed", "error", err)
	}
	if err := p.deps.Site.RebuildGallery(p.deps.GalleryFile); err != nil {
		log.Warn("gallery rebuild failed", "error", err)
	}

	theme := chosenTheme(section, concept)
	if p.deps.Themes != nil {
		if err := p.deps.Themes.Save(theme); err != nil {
			log.Warn("cannot persist theme", "error", err)
		}
	}

	p.recordRun(ctx, domain.RunRecord{
		Section:      section.Name,
		PageFile:     section.Filename,
		ImageFile:    imageName,
		Theme:        theme,
		StoryCount:   section.StoryCount,
		LocatedCount: len(locations),
		Status:       domain.StatusComplete,
	})

	log.Info("section complete", "page", section.Filename, "located", len(locations))
}

// mergeRationales attaches each element's explanation to its story so
// the page builder can render the memory hook. Stories without a
// matching element keep an empty rationale; the builder substitutes
// the documented placeholder.
func mergeRationales(stories []domain.Story, concept *domain.SceneConcept) {
	for i := range stories {
		if el, ok := concept.ElementByID(stories[i].ID); ok {
			stories[i].Rationale = el.Rationale
		}
	}
}

func chosenTheme(section config.SectionConfig, concept *domain.SceneConcept) string {
	if concept != nil && concept.ThemeName != "" {
		return concept.ThemeName
	}
	return section.Theme
}

func imageFileName(pageFile string) string {
	return strings.TrimSuffix(pageFile, ".html") + ".png"
}

func skippedRun(section config.SectionConfig, theme string) domain.RunRecord {
	return domain.RunRecord{
		Section:    section.Name,
		PageFile:   section.Filename,
		Theme:      theme,
		StoryCount: section.StoryCount,
		Status:     domain.StatusSkipped,
	}
}

func (p *Pipeline) recordRun(ctx context.Context, rec domain.RunRecord) {
	if p.deps.Repository == nil {
		return
	}

	if err := p.deps.Repository.SaveRun(ctx, rec); err != nil {
		p.warn("cannot record run", "section", rec.Section, "error", err)
	}
}

func (p *Pipeline) sectionLogger(name string) *slog.Logger {
	if p.deps.Logger != nil {
		return p.deps.Logger.With("section", name)
	}
	return slog.Default()
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.deps.Logger != nil {
		p.deps.Logger.Warn(msg, args...)
	}
}
