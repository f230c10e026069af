package config

import (
	"intakeflow/internal/apierr"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	HTTPPort    string
	RedisAddr   string
	SessionTTL  time.Duration
	CORSOrigins []string
	LogLevel    string
	Store       StoreConfig
}

// StoreConfig selects and configures the intake store
type StoreConfig struct {
	Backend         string
	SupabaseURL     string
	SupabaseAnonKey string
	JWTSecret       string
	PostgresDSN     string
	MongoURI        string
	MongoDB         string
}

// Load reads .env (if present) and the process environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		RedisAddr:   strings.TrimPrefix(getEnv("REDIS_ADDR", "localhost:6379"), "redis://"),
		SessionTTL:  getDuration("SESSION_TTL", 2*time.Hour),
		CORSOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Backend:         strings.ToLower(getEnv("STORE_BACKEND", BackendSupabase)),
			SupabaseURL:     getEnv("SUPABASE_URL", os.Getenv("VITE_SUPABASE_URL")),
			SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", os.Getenv("VITE_SUPABASE_ANON_KEY")),
			JWTSecret:       os.Getenv("SUPABASE_JWT_SECRET"),
			PostgresDSN:     os.Getenv("POSTGRES_DSN"),
			MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDB:         getEnv("MONGO_DB", "intakeflow"),
		},
	}
}

// Validate checks that the selected backend has what it needs to connect
func (c StoreConfig) Validate() error {
	switch c.Backend {
	case BackendSupabase:
		if c.SupabaseURL == "" {
			return notConfigured("SUPABASE_URL is not configured")
		}
		if c.SupabaseAnonKey == "" {
			return notConfigured("SUPABASE_ANON_KEY is not configured")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return notConfigured("POSTGRES_DSN is not configured")
		}
	case BackendMongo:
		if c.MongoURI == "" {
			return notConfigured("MONGO_URI is not configured")
		}
	default:
		return notConfigured("unknown STORE_BACKEND " + c.Backend)
	}
	return nil
}

func notConfigured(msg string) error {
	return apierr.New(apierr.CodeEnvNotConfigured, apierr.WithMessage(msg))
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultVal
}

func getList(key string, defaultVal []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
