package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	LogLevel              string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	CacheTTL              time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool
	Grading               grading.Limits
}

// LoadDotEnv loads variables from the given files (".env" when none are given)
// without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// LoadFromEnv loads configuration from environment variables. Values that fail
// to parse fall back to their defaults.
func LoadFromEnv() *Config {
	defaults := grading.DefaultLimits()

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		DBPath:                getEnv("DB_PATH", ":memory:"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             getEnv("REDIS_ADDR", ""),
		CacheTTL:              getDuration("CACHE_TTL", 10*time.Minute),
		GRPCPort:              getInt("GRPC_PORT", 50051),
		GRPCReflectionEnabled: getBool("GRPC_REFLECTION_ENABLED", false),
		Grading: grading.Limits{
			MaxEvaluations:     getInt("GRADE_MAX_EVALUATIONS", defaults.MaxEvaluations),
			MinScore:           getFloat("GRADE_MIN_SCORE", defaults.MinScore),
			MaxScore:           getFloat("GRADE_MAX_SCORE", defaults.MaxScore),
			MaxFinalGrade:      getFloat("GRADE_MAX_FINAL", defaults.MaxFinalGrade),
			DefaultExtraPoints: getFloat("GRADE_EXTRA_POINTS", defaults.DefaultExtraPoints),
			MinAttendance:      getFloat("GRADE_MIN_ATTENDANCE", defaults.MinAttendance),
		},
	}
}

// Validate checks the values that cannot fall back silently.
func (c *Config) Validate() error {
	if err := c.Grading.Validate(); err != nil {
		return fmt.Errorf("grading limits: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.AppEnv == "production" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
