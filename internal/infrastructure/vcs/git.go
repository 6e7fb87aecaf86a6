package vcs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"NewsMap/internal/ports"
)

// GitPublisher stages, commits, and pushes the generated site directory.
// Failures here are reported to the caller, which only logs them: a
// failed push must never fail the generation run.
type GitPublisher struct {
	dir    string
	logger *slog.Logger
}

var _ ports.Publisher = (*GitPublisher)(nil)

// NewGitPublisher targets the working tree that holds the artifacts.
func NewGitPublisher(dir string, logger *slog.Logger) *GitPublisher {
	return &GitPublisher{dir: dir, logger: logger}
}

// Sync runs add/commit/push in sequence. A commit with nothing staged
// is treated as success.
func (g *GitPublisher) Sync(ctx context.Context, message string) error {
	if message == "" {
		message = "Update generated pages"
	}

	steps := [][]string{
		{"add", "-A"},
		{"commit", "-m", message},
		{"push"},
	}

	for _, args := range steps {
		out, err := g.run(ctx, args)
		if err != nil {
			if args[0] == "commit" && bytes.Contains(out, []byte("nothing to commit")) {
				if g.logger != nil {
					g.logger.Info("git sync: nothing to commit")
				}
				return nil
			}
			return fmt.Errorf("git %s: %w: %s", args[0], err, bytes.TrimSpace(out))
		}
	}

	if g.logger != nil {
		g.logger.Info("git sync complete", "dir", g.dir)
	}

	return nil
}

func (g *GitPublisher) run(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	return cmd.CombinedOutput()
}
