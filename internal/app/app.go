package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	"NewsMap/internal/config"
	"NewsMap/internal/infrastructure/gemini"
	"NewsMap/internal/infrastructure/memory"
	"NewsMap/internal/infrastructure/news"
	"NewsMap/internal/infrastructure/storage"
	"NewsMap/internal/infrastructure/vcs"
	"NewsMap/internal/page"
	"NewsMap/internal/ports"
	"NewsMap/internal/source"
	"NewsMap/internal/usecase"
)

// Application wires configs to the generation pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	db       *sql.DB
}

// New builds a runnable application instance. The run repository and
// git publisher stay nil unless configured.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	registry := source.NewRegistry()
	registry.Register("newsapi", news.NewClient(
		cfg.News.APIKey,
		cfg.News.BaseURL,
		cfg.News.Country,
		cfg.News.PageSize,
		baseLogger.With("component", "news"),
	))

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		TextModel:   cfg.Gemini.TextModel,
		ImageModel:  cfg.Gemini.ImageModel,
		VisionModel: cfg.Gemini.VisionModel,
		CallSpacing: cfg.Gemini.CallSpacing,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini: %w", err)
	}

	site := page.NewSite(cfg.Output.SiteDir, cfg.Output.ImagesDir, cfg.Output.ArchiveDir,
		baseLogger.With("component", "site"))

	var db *sql.DB
	var repository ports.RunRepository
	if cfg.Database.DSN != "" {
		db, err = storage.Open(cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open run history db: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	var publisher ports.Publisher
	if cfg.Git.Enabled {
		publisher = vcs.NewGitPublisher(cfg.Output.SiteDir, baseLogger.With("component", "git"))
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Registry:    registry,
		Designer:    gemini.NewDesigner(client, baseLogger.With("component", "designer")),
		Renderer:    gemini.NewRenderer(client, baseLogger.With("component", "renderer")),
		Locator:     gemini.NewLocator(client, baseLogger.With("component", "locator")),
		Themes:      memory.NewThemeFile(filepath.Join(cfg.Output.SiteDir, cfg.Output.ThemeFile)),
		Repository:  repository,
		Publisher:   publisher,
		Site:        site,
		Builder:     page.NewBuilder(),
		Sections:    cfg.Sections,
		GalleryFile: cfg.Output.GalleryFile,
		SyncMessage: cfg.Git.Message,
		Logger:      baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline, db: db}, nil
}

// Run performs a single pipeline execution over all sections.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}
	return a.pipeline.Run(ctx)
}

// Close releases the optional database handle.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
