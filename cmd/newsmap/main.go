package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"NewsMap/internal/app"
	"NewsMap/internal/config"
	"NewsMap/internal/infrastructure/storage"
	"NewsMap/internal/logging"
	"NewsMap/internal/page"
)

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newsmap",
		Short:         "Generate an illustrated memory-palace page from today's headlines",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newGenerateCmd(), newGalleryCmd(), newHistoryCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run the full headline-to-page pipeline over all configured sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level)

			if cfg.Gemini.APIKey == "" {
				return fmt.Errorf("GOOGLE_API_KEY is not set; the Gemini API is required")
			}
			if cfg.News.APIKey == "" {
				logger.Warn("NEWS_API_KEY is not set; sections will contain placeholder stories only")
			}

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				logger.Error("wiring failed", "error", err)
				return err
			}
			defer application.Close()

			if err := application.Run(ctx); err != nil {
				logger.Error("generation stopped", "error", err)
				return err
			}

			logger.Info("generation complete")
			return nil
		},
	}
}

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Regenerate the gallery index from the archive directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level)

			site := page.NewSite(cfg.Output.SiteDir, cfg.Output.ImagesDir, cfg.Output.ArchiveDir,
				logger.With("component", "site"))

			return site.RebuildGallery(cfg.Output.GalleryFile)
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent run records from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			if cfg.Database.DSN == "" {
				return fmt.Errorf("run history requires DATABASE_DSN to be configured")
			}

			db, err := storage.Open(cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewPostgresRepository(db)
			records, err := repo.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			for _, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-12s theme=%q stories=%d located=%d\n",
					rec.Section, rec.Status, rec.Theme, rec.StoryCount, rec.LocatedCount)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to print")
	return cmd
}
