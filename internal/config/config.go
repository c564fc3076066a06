package config

import (
	"errors"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
)

// placeholderAPIKey is the value shipped in the sample .env file.
const placeholderAPIKey = "YOUR_API_KEY_HERE"

// ErrMissingAPIKey is returned by every query when no usable YouTube API key
// is configured. No upstream call is attempted in that case.
var ErrMissingAPIKey = errors.New("YouTube API key is not configured. Set YOUTUBE_API_KEY in .env")

type Config struct {
	Port        string
	LogLevel    string
	Environment string
	CORSOrigins string

	YouTube YouTubeConfig
	Cache   CacheConfig
	LLM     LLMConfig
}

// YouTubeConfig holds the upstream Data API settings.
type YouTubeConfig struct {
	APIKey   string
	Endpoint string // empty = library default
	Timeout  time.Duration
	RPS      float64 // upstream requests per second; 0 disables throttling
}

// CacheConfig controls the optional Redis category taxonomy cache.
type CacheConfig struct {
	RedisURL    string
	CategoryTTL time.Duration // 0 disables caching
}

// LLMConfig holds the narrative summary collaborator settings.
type LLMConfig struct {
	APIBase     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        env.Str("PORT", "3000"),
		LogLevel:    env.Str("LOG_LEVEL", "info"),
		Environment: env.Str("ENVIRONMENT", "development"),
		CORSOrigins: env.Str("CORS_ORIGINS", "*"),
		YouTube: YouTubeConfig{
			APIKey:   strings.TrimSpace(env.Str("YOUTUBE_API_KEY", "")),
			Endpoint: env.Str("YOUTUBE_API_BASE", ""),
			Timeout:  time.Duration(env.Int("UPSTREAM_TIMEOUT_SEC", 10)) * time.Second,
			RPS:      env.Float("UPSTREAM_RPS", 10),
		},
		Cache: CacheConfig{
			RedisURL:    env.Str("REDIS_URL", ""),
			CategoryTTL: time.Duration(env.Int("CATEGORY_CACHE_TTL_SEC", 0)) * time.Second,
		},
		LLM: LLMConfig{
			APIBase:     env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
			APIKey:      env.Str("LLM_API_KEY", ""),
			Model:       env.Str("LLM_MODEL", "gemini-2.5-flash"),
			Temperature: env.Float("LLM_TEMPERATURE", 0.4),
			MaxTokens:   env.Int("LLM_MAX_TOKENS", 2048),
		},
	}
}

// ValidateCredential reports whether the YouTube API key is usable.
// A missing key and the sample placeholder are both rejected.
func (c *Config) ValidateCredential() error {
	key := c.YouTube.APIKey
	if key == "" || key == placeholderAPIKey {
		return ErrMissingAPIKey
	}
	return nil
}

// SummaryEnabled reports whether a text-generation collaborator is configured.
func (c *Config) SummaryEnabled() bool {
	return c.LLM.APIKey != "" && c.LLM.APIBase != ""
}

// CategoryCacheEnabled reports whether the Redis taxonomy cache should be used.
func (c *Config) CategoryCacheEnabled() bool {
	return c.Cache.RedisURL != "" && c.Cache.CategoryTTL > 0
}
