package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	ExaBase       string
	ExaKey        string
	OpenAIKey     string
	OpenAIModel   string
	SearchLimit   int
	SearchTimeout time.Duration
	CacheTTL      time.Duration
	RateLimit     int
	RateWindow    time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		ExaBase:       env("EXA_BASE_URL", "https://api.exa.ai"),
		ExaKey:        env("EXA_API_KEY", ""),
		OpenAIKey:     env("OPENAI_API_KEY", ""),
		OpenAIModel:   env("OPENAI_MODEL", "gpt-4o-mini"),
		SearchLimit:   atoi("SEARCH_RESULT_LIMIT", 8),
		SearchTimeout: time.Duration(atoi("SEARCH_TIMEOUT_MS", 4000)) * time.Millisecond,
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RateLimit:     atoi("RATE_LIMIT_REQUESTS", 10),
		RateWindow:    time.Duration(atoi("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
	if c.ExaKey == "" {
		log.Warn().Msg("EXA_API_KEY is empty")
	}
	if c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty; intent extraction will use the rule-based fallback only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
