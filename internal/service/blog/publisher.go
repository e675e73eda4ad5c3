package blog

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// GitPublisher commits and pushes generated site files. Every step is best
// effort: a site checkout without a remote, or an offline machine, still
// keeps the post locally.
type GitPublisher struct {
	dir    string
	logger *zap.Logger
}

// NewGitPublisher publishes from the given site directory.
func NewGitPublisher(dir string, logger *zap.Logger) *GitPublisher {
	return &GitPublisher{dir: dir, logger: logger}
}

// Publish stages the paths, commits, and pushes.
func (p *GitPublisher) Publish(ctx context.Context, paths []string, title string) error {
	if err := p.git(ctx, "status", "--porcelain"); err != nil {
		p.logger.Warn("site dir is not a git repository, skipping publish")
		return nil
	}

	for _, path := range paths {
		if err := p.git(ctx, "add", path); err != nil {
			return fmt.Errorf("git add %s: %w", path, err)
		}
	}

	if err := p.git(ctx, "commit", "-m", "blog: add new post: "+title); err != nil {
		if strings.Contains(err.Error(), "nothing to commit") {
			p.logger.Info("nothing to commit")
			return nil
		}
		return fmt.Errorf("git commit: %w", err)
	}

	if err := p.git(ctx, "push"); err != nil {
		p.logger.Warn("git push failed, commit kept locally", zap.Error(err))
		return nil
	}

	p.logger.Info("post published", zap.String("title", title))
	return nil
}

func (p *GitPublisher) git(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", p.dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%v: %s", err, msg)
		}
		return err
	}
	return nil
}
