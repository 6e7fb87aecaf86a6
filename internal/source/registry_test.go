package source

import (
	"context"
	"testing"

	"NewsMap/internal/domain"
	"NewsMap/internal/ports"
)

type staticSource struct {
	stories []domain.Story
}

var _ ports.StorySource = (*staticSource)(nil)

func (s *staticSource) FetchTop(ctx context.Context, category string, count int) []domain.Story {
	return s.stories
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	src := &staticSource{stories: []domain.Story{{ID: 1, Title: "t"}}}
	reg.Register("newsapi", src)

	resolved, err := reg.Resolve("newsapi")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != ports.StorySource(src) {
		t.Fatal("resolved a different source")
	}
}

func TestRegistryResolveMissing(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if _, err := reg.Resolve("rss"); err == nil {
		t.Fatal("expected error for unregistered source")
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &staticSource{}
	second := &staticSource{}
	reg.Register("newsapi", first)
	reg.Register("newsapi", second)

	resolved, err := reg.Resolve("newsapi")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved != ports.StorySource(second) {
		t.Fatal("registration did not replace the previous source")
	}
}
