package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Gemini         GeminiConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret string
}

// GeminiConfig drives the narrative generator. An empty APIKey disables the
// external service and every narrative comes from the fallback templates.
type GeminiConfig struct {
	APIKey        string
	PrimaryModel  string
	FallbackModel string
	Timeout       time.Duration
	Temperature   float32
}

type RecommendationConfig struct {
	DefaultLimit  int
	MaxLimit      int
	Workers       int
	LLMRatePerSec float64
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the process environment. A .env file in the working directory,
// when present, fills variables that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()
	return loadFromEnv()
}

func loadFromEnv() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    optDefault("LOG_LEVEL", "info"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:      parseDuration(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:        int32(parseInt(opt("DB_POOL_MAX_CONNS"), 10)),
		PoolMinConns:        int32(parseInt(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime: parseDuration(opt("DB_POOL_MAX_CONN_LIFETIME"), time.Hour),
		PoolMaxConnIdleTime: parseDuration(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 30*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       parseInt(opt("REDIS_DB"), 0),
		TTL:      parseDuration(opt("REDIS_TTL"), 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_ACCESS_SECRET"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:        opt("GEMINI_API_KEY"),
		PrimaryModel:  optDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		FallbackModel: optDefault("GEMINI_FALLBACK_MODEL", "gemini-2.0-flash"),
		Timeout:       parseDuration(opt("GEMINI_TIMEOUT"), 30*time.Second),
		Temperature:   float32(parseFloat(opt("GEMINI_TEMPERATURE"), 0.4)),
	}

	cfg.Recommendation = RecommendationConfig{
		DefaultLimit:  parseInt(opt("RECOMMENDATION_DEFAULT_LIMIT"), 10),
		MaxLimit:      parseInt(opt("RECOMMENDATION_MAX_LIMIT"), 50),
		Workers:       parseInt(opt("RECOMMENDATION_WORKERS"), 4),
		LLMRatePerSec: parseFloat(opt("RECOMMENDATION_LLM_RPS"), 2),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// parseDuration accepts Go duration strings ("15s") or a bare number of seconds.
func parseDuration(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return def
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func parseFloat(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}
