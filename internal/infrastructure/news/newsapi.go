package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"NewsMap/internal/domain"
	"NewsMap/internal/ports"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client fetches top headlines from NewsAPI and guarantees the padded,
// densely-indexed story list every downstream stage relies on.
type Client struct {
	apiKey   string
	baseURL  string
	country  string
	pageSize int
	client   *http.Client
	logger   *slog.Logger
}

var _ ports.StorySource = (*Client)(nil)

// NewClient wires an HTTP client; country defaults to us, pageSize to 15.
func NewClient(apiKey, baseURL, country string, pageSize int, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if country == "" {
		country = "us"
	}
	if pageSize <= 0 {
		pageSize = 15
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		country:  country,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 20 * time.Second},
		logger:   logger,
	}
}

// FetchTop returns exactly count stories with ids 1..count. Feed errors
// are logged and treated as zero results, triggering full padding.
func (c *Client) FetchTop(ctx context.Context, category string, count int) []domain.Story {
	if count < 0 {
		count = 0
	}

	stories := make([]domain.Story, 0, count)

	articles, err := c.topHeadlines(ctx, category)
	if err != nil {
		c.warn("news api error", "category", category, "error", err)
	} else {
		for _, art := range articles {
			if len(stories) >= count {
				break
			}
			stories = append(stories, toStory(len(stories)+1, art))
		}
	}

	for len(stories) < count {
		stories = append(stories, domain.PlaceholderStory(len(stories)+1))
	}

	return stories
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type headlinesResponse struct {
	Status   string       `json:"status"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

func (c *Client) topHeadlines(ctx context.Context, category string) ([]apiArticle, error) {
	endpoint, err := url.Parse(c.baseURL + "/top-headlines")
	if err != nil {
		return nil, fmt.Errorf("invalid base url %s: %w", c.baseURL, err)
	}

	query := endpoint.Query()
	query.Set("country", c.country)
	query.Set("pageSize", strconv.Itoa(c.pageSize))
	if category != "" {
		query.Set("category", category)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsMap/1.0")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request headlines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned %s", resp.Status)
	}

	var payload headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode headlines: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %s: %s", payload.Code, payload.Message)
	}

	return payload.Articles, nil
}

func toStory(id int, art apiArticle) domain.Story {
	story := domain.Story{
		ID:          id,
		Title:       art.Title,
		Source:      art.Source.Name,
		URL:         art.URL,
		Description: art.Description,
	}

	if story.Title == "" {
		story.Title = domain.DefaultTitle
	}
	if story.Source == "" {
		story.Source = domain.DefaultSource
	}
	if story.URL == "" {
		story.URL = domain.PlaceholderURL
	}
	if story.Description == "" {
		story.Description = domain.DefaultDescription
	}

	return story
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
