// Command bloggen generates SEO blog posts for the marketing site, either
// once or on a daily schedule.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/config"
	"github.com/bunniesplumbing/chat-gateway/internal/service/blog"
	"github.com/bunniesplumbing/chat-gateway/internal/store"
)

func main() {
	now := flag.Bool("now", false, "generate one post immediately instead of running the scheduler")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if !cfg.AI.Enabled() {
		logger.Fatal("OPENAI_API_KEY is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		logger.Fatal("failed to initialize chat model", zap.Error(err))
	}

	db, err := store.New(cfg.Booking.DBPath)
	if err != nil {
		logger.Fatal("failed to open post tracker", zap.Error(err))
	}
	defer db.Close()

	generator := blog.NewGenerator(blog.Config{
		ChatModel:   chatModel,
		Store:       db,
		Publisher:   blog.NewGitPublisher(cfg.Blog.SiteDir, logger),
		SiteDir:     cfg.Blog.SiteDir,
		PostsPerDay: cfg.Blog.PostsPerDay,
		Logger:      logger,
	})

	if *now {
		generate(ctx, generator, logger)
		return
	}

	c := cron.New()
	for _, spec := range cfg.Blog.Schedule {
		if _, err := c.AddFunc(spec, func() { generate(ctx, generator, logger) }); err != nil {
			logger.Fatal("invalid schedule spec", zap.String("spec", spec), zap.Error(err))
		}
	}

	logger.Info("blog generator scheduled",
		zap.Strings("schedule", cfg.Blog.Schedule),
		zap.Int("posts_per_day", cfg.Blog.PostsPerDay))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("blog generator stopped")
}

func generate(ctx context.Context, generator *blog.Generator, logger *zap.Logger) {
	post, err := generator.Run(ctx)
	switch {
	case errors.Is(err, blog.ErrDailyLimit):
		logger.Info("daily post limit reached, skipping")
	case errors.Is(err, blog.ErrDuplicateSlug):
		logger.Warn("generated a duplicate slug, skipping", zap.Error(err))
	case err != nil:
		logger.Error("post generation failed", zap.Error(err))
	default:
		logger.Info("post generated", zap.String("slug", post.Slug), zap.String("title", post.Title))
	}
}
