package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	DBDriver        string
	PostgresURL     string
	SQLitePath      string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	Timezone        string
	CORSOrigins     []string
	RateLimitMax    int
	RateLimitWindow time.Duration

	AI AIConfig

	// Problems lists environment values Load rejected in favour of a default.
	// They are logged once the logger is built.
	Problems []string
}

type AIConfig struct {
	Provider             string
	GeminiAPIKey         string
	GeminiModel          string
	OpenAIAPIKey         string
	OpenAIModel          string
	SentimentAPIURL      string
	RecommendationAPIURL string
	Timeout              time.Duration
}

// Load reads configuration from the environment with defaults.
// Callers load a .env file (godotenv) before calling Load.
func Load() Config {
	var env envReader
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		PostgresURL:     os.Getenv("POSTGRES_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "aura.db"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "aura"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Timezone:        getEnv("TIMEZONE", "Local"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		RateLimitMax:    env.Int("RATE_LIMIT_MAX", 100),
		RateLimitWindow: env.Duration("RATE_LIMIT_WINDOW", 15*time.Minute),
	}

	cfg.AI = AIConfig{
		Provider:             strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		SentimentAPIURL:      getEnv("SENTIMENT_API_URL", "https://jayachandru001-mood-pred-api.hf.space"),
		RecommendationAPIURL: getEnv("RECOMMENDATION_API_URL", "https://jayachandru001-mood-based-activity-recommendation.hf.space"),
		Timeout:              env.Duration("AI_TIMEOUT", 15*time.Second),
	}

	if _, err := loadLocation(cfg.Timezone); err != nil {
		env.reject("TIMEZONE", cfg.Timezone, "using local time")
	}

	cfg.Problems = env.problems
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves Timezone, falling back to the server's local zone.
func (c Config) Location() *time.Location {
	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type envReader struct {
	problems []string
}

func (r *envReader) reject(key, value, fallback string) {
	r.problems = append(r.problems, fmt.Sprintf("invalid %s=%q, %s", key, value, fallback))
}

// Int reads a positive integer.
func (r *envReader) Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		r.reject(key, v, fmt.Sprintf("using %d", def))
		return def
	}
	return n
}

// Duration reads a positive time.ParseDuration value.
func (r *envReader) Duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.reject(key, v, fmt.Sprintf("using %s", def))
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
