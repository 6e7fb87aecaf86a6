package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "NEWSMAP_CONFIG"
	newsAPIKeyEnv   = "NEWS_API_KEY"
	googleAPIKeyEnv = "GOOGLE_API_KEY"
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	textModelEnv    = "NEWSMAP_TEXT_MODEL"
	imageModelEnv   = "NEWSMAP_IMAGE_MODEL"
	siteDirEnv      = "NEWSMAP_SITE_DIR"
	databaseDSNEnv  = "DATABASE_DSN"
	gitSyncEnv      = "NEWSMAP_GIT_SYNC"
	logLevelEnv     = "NEWSMAP_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig   `yaml:"logging"`
	News     NewsConfig      `yaml:"news"`
	Gemini   GeminiConfig    `yaml:"gemini"`
	Output   OutputConfig    `yaml:"output"`
	Database DatabaseConfig  `yaml:"database"`
	Git      GitConfig       `yaml:"git"`
	Sections []SectionConfig `yaml:"sections"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NewsConfig describes how to reach the headline feed.
type NewsConfig struct {
	APIKey   string `yaml:"apiKey"`
	BaseURL  string `yaml:"baseUrl"`
	Country  string `yaml:"country"`
	PageSize int    `yaml:"pageSize"`
}

// GeminiConfig selects the generative models and call spacing.
type GeminiConfig struct {
	APIKey      string        `yaml:"apiKey"`
	TextModel   string        `yaml:"textModel"`
	ImageModel  string        `yaml:"imageModel"`
	VisionModel string        `yaml:"visionModel"`
	CallSpacing time.Duration `yaml:"callSpacing"`
}

// OutputConfig places generated artifacts on disk.
type OutputConfig struct {
	SiteDir     string `yaml:"siteDir"`
	ImagesDir   string `yaml:"imagesDir"`
	ArchiveDir  string `yaml:"archiveDir"`
	GalleryFile string `yaml:"galleryFile"`
	ThemeFile   string `yaml:"themeFile"`
}

// DatabaseConfig describes the optional run-history Postgres store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// GitConfig toggles the optional commit/push of generated artifacts.
type GitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Message string `yaml:"message"`
}

// SectionConfig describes one page to generate.
type SectionConfig struct {
	Name       string `yaml:"name"`
	Filename   string `yaml:"filename"`
	Source     string `yaml:"source"`
	Category   string `yaml:"category"`
	Theme      string `yaml:"theme"`
	StoryCount int    `yaml:"storyCount"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. A .env file in the working directory is honored first.
func Load() Config {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sections) == 0 {
		cfg.Sections = defaultConfig().Sections
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(newsAPIKeyEnv); v != "" {
		c.News.APIKey = v
	}

	if v := os.Getenv(googleAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	} else if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(textModelEnv); v != "" {
		c.Gemini.TextModel = v
	}

	if v := os.Getenv(imageModelEnv); v != "" {
		c.Gemini.ImageModel = v
	}

	if v := os.Getenv(siteDirEnv); v != "" {
		c.Output.SiteDir = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(gitSyncEnv); v == "1" || v == "true" {
		c.Git.Enabled = true
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.News.APIKey != "" {
		base.News.APIKey = override.News.APIKey
	}
	if override.News.BaseURL != "" {
		base.News.BaseURL = override.News.BaseURL
	}
	if override.News.Country != "" {
		base.News.Country = override.News.Country
	}
	if override.News.PageSize > 0 {
		base.News.PageSize = override.News.PageSize
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.TextModel != "" {
		base.Gemini.TextModel = override.Gemini.TextModel
	}
	if override.Gemini.ImageModel != "" {
		base.Gemini.ImageModel = override.Gemini.ImageModel
	}
	if override.Gemini.VisionModel != "" {
		base.Gemini.VisionModel = override.Gemini.VisionModel
	}
	if override.Gemini.CallSpacing > 0 {
		base.Gemini.CallSpacing = override.Gemini.CallSpacing
	}

	if override.Output.SiteDir != "" {
		base.Output.SiteDir = override.Output.SiteDir
	}
	if override.Output.ImagesDir != "" {
		base.Output.ImagesDir = override.Output.ImagesDir
	}
	if override.Output.ArchiveDir != "" {
		base.Output.ArchiveDir = override.Output.ArchiveDir
	}
	if override.Output.GalleryFile != "" {
		base.Output.GalleryFile = override.Output.GalleryFile
	}
	if override.Output.ThemeFile != "" {
		base.Output.ThemeFile = override.Output.ThemeFile
	}

	if override.Database.DSN != "" {
		base.Database.DSN = override.Database.DSN
	}

	if override.Git.Enabled {
		base.Git.Enabled = true
	}
	if override.Git.Message != "" {
		base.Git.Message = override.Git.Message
	}

	if len(override.Sections) > 0 {
		base.Sections = override.Sections
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		News: NewsConfig{
			BaseURL:  "https://newsapi.org/v2",
			Country:  "us",
			PageSize: 15,
		},
		Gemini: GeminiConfig{
			TextModel:   "gemini-2.5-flash",
			ImageModel:  "gemini-2.5-flash-image",
			VisionModel: "gemini-2.5-flash",
			CallSpacing: 2 * time.Second,
		},
		Output: OutputConfig{
			SiteDir:     ".",
			ImagesDir:   "images",
			ArchiveDir:  "archive",
			GalleryFile: "gallery.html",
			ThemeFile:   ".last_theme",
		},
		Git: GitConfig{Message: "Update generated NewsMap pages"},
		Sections: []SectionConfig{
			{
				Name:       "Front Page",
				Filename:   "index.html",
				Source:     "newsapi",
				StoryCount: 10,
				Theme:      "A busy contemporary City Park on a sunny day. Wide open green spaces, detailed, organic, lively.",
			},
		},
	}
}
