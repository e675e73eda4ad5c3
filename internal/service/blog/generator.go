// Package blog generates SEO-optimized, internally-linked posts for the
// marketing site's blog and publishes them as static HTML.
package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	blogmodel "github.com/bunniesplumbing/chat-gateway/internal/model/blog"
)

var (
	// ErrDailyLimit signals the day's post quota is already met.
	ErrDailyLimit = errors.New("blog: daily post limit reached")
	// ErrDuplicateSlug signals the generated title collides with a
	// published post.
	ErrDuplicateSlug = errors.New("blog: slug already published")
	// ErrMalformedContent signals the model's response was not the
	// expected JSON shape.
	ErrMalformedContent = errors.New("blog: model returned malformed content")
)

// Generation bounds. The article call needs far more room than the chat
// endpoint's reply cap; the topic call needs almost none.
const (
	articleMaxTokens   = 4000
	articleTemperature = 0.7
	topicMaxTokens     = 100
	topicTemperature   = 0.9
)

// PostStore tracks published posts.
type PostStore interface {
	SavePost(ctx context.Context, p *blogmodel.Post) error
	RecentPosts(ctx context.Context, limit int) ([]blogmodel.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	PostsCreatedSince(ctx context.Context, t time.Time) (int, error)
}

// Publisher pushes the changed site files out after a post is written.
type Publisher interface {
	Publish(ctx context.Context, paths []string, title string) error
}

// Generator produces one post per Run call.
type Generator struct {
	chatModel   model.BaseChatModel
	store       PostStore
	publisher   Publisher
	siteDir     string
	postsPerDay int
	logger      *zap.Logger

	now  func() time.Time
	pick func(n int) int
}

// Config wires a Generator.
type Config struct {
	ChatModel model.BaseChatModel
	Store     PostStore
	// Publisher may be nil; the post then stays local.
	Publisher Publisher
	// SiteDir is the site root holding blog.html and the posts/ directory.
	SiteDir     string
	PostsPerDay int
	Logger      *zap.Logger
}

// NewGenerator creates a post generator.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		chatModel:   cfg.ChatModel,
		store:       cfg.Store,
		publisher:   cfg.Publisher,
		siteDir:     cfg.SiteDir,
		postsPerDay: cfg.PostsPerDay,
		logger:      cfg.Logger,
		now:         time.Now,
		pick:        rand.IntN,
	}
}

// Run generates, writes, and tracks one post. A met daily quota or a slug
// collision returns a sentinel without touching the site.
func (g *Generator) Run(ctx context.Context) (*blogmodel.Post, error) {
	now := g.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := g.store.PostsCreatedSince(ctx, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("count today's posts: %w", err)
	}
	if count >= g.postsPerDay {
		return nil, ErrDailyLimit
	}

	recent, err := g.store.RecentPosts(ctx, 30)
	if err != nil {
		return nil, fmt.Errorf("load recent posts: %w", err)
	}

	topic := g.pickTopic(recent)
	if topic == "" {
		topic, err = g.freshTopic(ctx, recent)
		if err != nil {
			return nil, err
		}
	}
	g.logger.Info("topic selected", zap.String("topic", topic))

	content, err := g.generateContent(ctx, topic, recent)
	if err != nil {
		return nil, err
	}

	postSlug := slug.Make(content.Title)
	exists, err := g.store.SlugExists(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, postSlug)
	}

	postPath := filepath.Join(g.siteDir, "posts", postSlug+".html")
	page, err := renderPostPage(content, postSlug, now)
	if err != nil {
		return nil, fmt.Errorf("render post: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(postPath), 0o755); err != nil {
		return nil, fmt.Errorf("create posts dir: %w", err)
	}
	if err := os.WriteFile(postPath, page, 0o644); err != nil {
		return nil, fmt.Errorf("write post: %w", err)
	}

	indexPath := filepath.Join(g.siteDir, "blog.html")
	if err := insertBlogCard(indexPath, content, postSlug, now); err != nil {
		return nil, fmt.Errorf("update blog index: %w", err)
	}

	post := &blogmodel.Post{
		Slug:            postSlug,
		Title:           content.Title,
		Topic:           topic,
		Category:        content.Category,
		MetaDescription: content.MetaDescription,
	}
	if err := g.store.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("track post: %w", err)
	}

	if g.publisher != nil {
		if err := g.publisher.Publish(ctx, []string{postPath, indexPath}, content.Title); err != nil {
			g.logger.Warn("publish failed, post written locally", zap.Error(err))
		}
	}

	links := strings.Count(content.Body, `href="../`)
	if links < 2 {
		g.logger.Warn("post has few internal links", zap.Int("links", links))
	}
	g.logger.Info("post generated",
		zap.String("slug", postSlug),
		zap.String("category", content.Category),
		zap.Int("internal_links", links))
	return post, nil
}

// pickTopic returns an unused seed topic, or "" when every one has been
// published already.
func (g *Generator) pickTopic(recent []blogmodel.Post) string {
	used := make(map[string]bool, len(recent)*2)
	for _, p := range recent {
		used[p.Topic] = true
		used[p.Slug] = true
	}

	var available []string
	for _, t := range knowledge.BlogTopics {
		if !used[t] && !used[slug.Make(t)] {
			available = append(available, t)
		}
	}
	if len(available) == 0 {
		return ""
	}
	return available[g.pick(len(available))]
}

func (g *Generator) freshTopic(ctx context.Context, recent []blogmodel.Post) (string, error) {
	g.logger.Info("seed topics exhausted, asking the model for a fresh one")

	resp, err := g.chatModel.Generate(ctx, freshTopicMessages(recent),
		model.WithTemperature(topicTemperature),
		model.WithMaxTokens(topicMaxTokens))
	if err != nil {
		return "", fmt.Errorf("generate topic: %w", err)
	}

	topic := strings.Trim(strings.TrimSpace(resp.Content), `"`)
	if topic == "" {
		return "", fmt.Errorf("%w: empty topic", ErrMalformedContent)
	}
	return topic, nil
}

func (g *Generator) generateContent(ctx context.Context, topic string, recent []blogmodel.Post) (*blogmodel.Content, error) {
	resp, err := g.chatModel.Generate(ctx, articleMessages(topic, recent),
		model.WithTemperature(articleTemperature),
		model.WithMaxTokens(articleMaxTokens))
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	var content blogmodel.Content
	if err := json.Unmarshal([]byte(stripFences(resp.Content)), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
	}

	for field, value := range map[string]string{
		"title":            content.Title,
		"meta_description": content.MetaDescription,
		"excerpt":          content.Excerpt,
		"category":         content.Category,
		"content":          content.Body,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedContent, field)
		}
	}
	return &content, nil
}

// stripFences tolerates a model that wraps its JSON in a markdown code
// block despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
