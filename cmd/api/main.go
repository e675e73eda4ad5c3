package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/config"
	"github.com/bunniesplumbing/chat-gateway/internal/handler"
	bookinghandler "github.com/bunniesplumbing/chat-gateway/internal/handler/booking"
	chathandler "github.com/bunniesplumbing/chat-gateway/internal/handler/chat"
	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	bookingservice "github.com/bunniesplumbing/chat-gateway/internal/service/booking"
	"github.com/bunniesplumbing/chat-gateway/internal/service/completion"
	"github.com/bunniesplumbing/chat-gateway/internal/service/ratelimit"
	"github.com/bunniesplumbing/chat-gateway/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	// Rate-window store: Redis when configured, process memory otherwise.
	var windowStore ratelimit.Store
	if cfg.Redis.Enabled() {
		redisStore, err := ratelimit.NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisStore.Close()
		windowStore = redisStore
		logger.Info("rate windows stored in redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		windowStore = ratelimit.NewMemoryStore()
		logger.Info("rate windows stored in memory")
	}
	limiter := ratelimit.New(windowStore, cfg.Chat.RateLimit, logger)

	// Completion gateway. Without a credential the handler still runs and
	// serves the phone-number fallback on every message.
	var gateway *completion.Gateway
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			logger.Warn("failed to initialize chat model, serving fallbacks only", zap.Error(err))
		} else {
			gateway = completion.New(chatModel, logger)
			logger.Info("completion gateway initialized", zap.String("model", cfg.AI.Model))
		}
	} else {
		logger.Warn("OPENAI_API_KEY not configured, serving fallbacks only")
	}

	chatHandler := chathandler.New(limiter, gateway, knowledge.SystemPrompt, cfg.Chat.MaxHistoryTurns, logger)

	// Booking collaborator; the chat core does not depend on it.
	var bookingHandler *bookinghandler.Handler
	db, err := store.New(cfg.Booking.DBPath)
	if err != nil {
		logger.Warn("booking storage unavailable, /api/booking disabled", zap.Error(err))
	} else {
		defer db.Close()
		var mailer bookingservice.Mailer
		if smtpMailer := bookingservice.NewSMTPMailer(cfg.Booking); smtpMailer != nil {
			mailer = smtpMailer
		} else {
			logger.Info("SMTP not configured, booking emails disabled")
		}
		bookingSvc := bookingservice.NewService(db, mailer, logger)
		bookingHandler = bookinghandler.New(bookingSvc, logger)
	}

	router := handler.NewRouter(chatHandler, bookingHandler, logger)

	startServer(ctx, logger, cfg.Server, router)
}

func startServer(ctx context.Context, logger *zap.Logger, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("chat gateway listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
