package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	DatabaseURL string

	GeminiAPIKey  string
	GeminiModels  []string
	GeminiDriver  string
	GeminiBaseURL string

	SerpAPIKey     string
	SerpAPIBaseURL string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	RazorpayBaseURL       string

	SessionSecret string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SearchCacheTTL time.Duration

	NATSURL string

	UpstreamTimeout time.Duration
	AIRatePerMinute int
	CORSOrigins     []string
	TrustedProxies  []string
}

// Load reads .env when it exists and then the process environment. Secrets
// are never required here: endpoints that need a missing secret fail on use.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Port: getEnvString("PORT", "8080"),
		Env:  getEnvString("APP_ENV", "prod"),

		DatabaseURL: getEnvString("DATABASE_URL", "sqlite://internhunt.db"),

		GeminiAPIKey:  getEnvString("GEMINI_API_KEY", ""),
		GeminiModels:  getEnvList("GEMINI_MODELS", []string{"gemini-2.0-flash", "gemini-1.5-flash"}),
		GeminiDriver:  getEnvString("GEMINI_DRIVER", "genai"),
		GeminiBaseURL: getEnvString("GEMINI_BASE_URL", ""),

		SerpAPIKey:     getEnvString("SERPAPI_KEY", ""),
		SerpAPIBaseURL: getEnvString("SERPAPI_BASE_URL", "https://serpapi.com"),

		RazorpayKeyID:         getEnvString("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:     getEnvString("RAZORPAY_KEY_SECRET", ""),
		RazorpayWebhookSecret: getEnvString("RAZORPAY_WEBHOOK_SECRET", ""),
		RazorpayBaseURL:       getEnvString("RAZORPAY_BASE_URL", "https://api.razorpay.com"),

		SessionSecret: getEnvString("SESSION_JWT_SECRET", ""),

		RedisAddr:      getEnvString("REDIS_ADDR", ""),
		RedisPassword:  getEnvString("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		SearchCacheTTL: getEnvDuration("SEARCH_CACHE_TTL", 15*time.Minute),

		NATSURL: getEnvString("NATS_URL", ""),

		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		AIRatePerMinute: getEnvInt("AI_RATE_PER_MINUTE", 30),
		CORSOrigins:     getEnvList("CORS_ORIGINS", nil),
		TrustedProxies:  getEnvList("TRUSTED_PROXIES", nil),
	}, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
