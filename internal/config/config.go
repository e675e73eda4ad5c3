package config

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server  ServerConfig
	Chat    ChatConfig
	AI      AIConfig
	Redis   RedisConfig
	Booking BookingConfig
	Blog    BlogConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	blog, err := loadBlogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Chat:    chat,
		AI:      ai,
		Redis:   loadRedisConfig(),
		Booking: loadBookingConfig(),
		Blog:    blog,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ChatConfig holds the tunable limits of the chat endpoint.
type ChatConfig struct {
	// RateLimit is the max admitted requests per session per trailing hour.
	RateLimit int
	// MaxHistoryTurns bounds the conversation window sent upstream; one
	// turn is a user message plus the assistant reply.
	MaxHistoryTurns int
}

func loadChatConfig() (ChatConfig, error) {
	cfg := ChatConfig{
		RateLimit:       20,
		MaxHistoryTurns: 10,
	}

	if v, err := parseOptionalIntEnv("CHAT_RATE_LIMIT"); err != nil {
		return ChatConfig{}, err
	} else if v != nil {
		if *v < 1 {
			return ChatConfig{}, fmt.Errorf("CHAT_RATE_LIMIT must be >= 1, got %d", *v)
		}
		cfg.RateLimit = *v
	}

	if v, err := parseOptionalIntEnv("CHAT_MAX_HISTORY"); err != nil {
		return ChatConfig{}, err
	} else if v != nil {
		if *v < 0 {
			return ChatConfig{}, fmt.Errorf("CHAT_MAX_HISTORY must be >= 0, got %d", *v)
		}
		cfg.MaxHistoryTurns = *v
	}

	return cfg, nil
}

// AIConfig describes the upstream completion API.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// Enabled reports whether the upstream credential is configured.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// Upstream call bounds: one attempt, 10s to connect, 30s overall.
const (
	upstreamConnectTimeout = 10 * time.Second
	upstreamTotalTimeout   = 30 * time.Second
)

// NewChatModel builds the eino chat model used for completions.
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	maxTokens := c.MaxTokens
	temperature := float32(c.Temperature)

	httpClient := &http.Client{
		Timeout: upstreamTotalTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: upstreamConnectTimeout}).DialContext,
		},
	}

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		Timeout:     upstreamTotalTimeout,
		HTTPClient:  httpClient,
	})
}

func loadAIConfig() (AIConfig, error) {
	cfg := AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		MaxTokens:   500,
		Temperature: 0.7,
	}

	if v, err := parseOptionalIntEnv("CHAT_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if v != nil {
		cfg.MaxTokens = *v
	}

	if v, err := parseOptionalFloatEnv("CHAT_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if v != nil {
		cfg.Temperature = *v
	}

	return cfg, nil
}

// RedisConfig describes the optional shared rate-window store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was provided.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func loadRedisConfig() RedisConfig {
	db := 0
	if v, err := parseOptionalIntEnv("REDIS_DB"); err == nil && v != nil {
		db = *v
	}
	return RedisConfig{
		Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

// BookingConfig describes booking persistence and notification email.
type BookingConfig struct {
	DBPath       string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	AdminEmail   string
	FromEmail    string
}

// MailEnabled reports whether notification emails can be sent.
func (c BookingConfig) MailEnabled() bool {
	return c.SMTPHost != "" && c.AdminEmail != "" && c.FromEmail != ""
}

func loadBookingConfig() BookingConfig {
	return BookingConfig{
		DBPath:       getEnvOrDefault("DB_PATH", "./data/bookings.db"),
		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUsername: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		AdminEmail:   getEnvOrDefault("ADMIN_EMAIL", "bunniesplumbing408@gmail.com"),
		FromEmail:    getEnvOrDefault("FROM_EMAIL", "noreply@bunniesplumbing.com"),
	}
}

// BlogConfig describes the scheduled blog post generator.
type BlogConfig struct {
	// SiteDir is the static-site checkout holding blog.html and posts/.
	SiteDir     string
	PostsPerDay int
	// Schedule holds cron specs for the generator daemon.
	Schedule []string
}

func loadBlogConfig() (BlogConfig, error) {
	cfg := BlogConfig{
		SiteDir:     getEnvOrDefault("BLOG_SITE_DIR", "."),
		PostsPerDay: 2,
		Schedule:    []string{"0 8 * * *", "0 18 * * *"},
	}

	if v, err := parseOptionalIntEnv("BLOG_POSTS_PER_DAY"); err != nil {
		return BlogConfig{}, err
	} else if v != nil {
		if *v < 1 {
			return BlogConfig{}, fmt.Errorf("BLOG_POSTS_PER_DAY must be >= 1, got %d", *v)
		}
		cfg.PostsPerDay = *v
	}

	if raw := strings.TrimSpace(os.Getenv("BLOG_SCHEDULE")); raw != "" {
		var specs []string
		for _, spec := range strings.Split(raw, ",") {
			if spec = strings.TrimSpace(spec); spec != "" {
				specs = append(specs, spec)
			}
		}
		if len(specs) == 0 {
			return BlogConfig{}, fmt.Errorf("invalid BLOG_SCHEDULE value: %q", raw)
		}
		cfg.Schedule = specs
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
