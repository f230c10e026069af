package config

import (
	"intakeflow/internal/apierr"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"HTTP_PORT", "REDIS_ADDR", "SESSION_TTL", "STORE_BACKEND", "SUPABASE_URL", "VITE_SUPABASE_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, BackendSupabase, cfg.Store.Backend)
	assert.Empty(t, cfg.Store.SupabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REDIS_ADDR", "redis://cache:6380")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("VITE_SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com ,")

	cfg := Load()
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "https://demo.supabase.co", cfg.Store.SupabaseURL)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.CORSOrigins)
}

func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StoreConfig
		wantErr string
	}{
		{"supabase ok", StoreConfig{Backend: BackendSupabase, SupabaseURL: "u", SupabaseAnonKey: "k"}, ""},
		{"supabase no url", StoreConfig{Backend: BackendSupabase, SupabaseAnonKey: "k"}, "SUPABASE_URL is not configured"},
		{"supabase no key", StoreConfig{Backend: BackendSupabase, SupabaseURL: "u"}, "SUPABASE_ANON_KEY is not configured"},
		{"postgres no dsn", StoreConfig{Backend: BackendPostgres}, "POSTGRES_DSN is not configured"},
		{"mongo ok", StoreConfig{Backend: BackendMongo, MongoURI: "mongodb://x"}, ""},
		{"unknown", StoreConfig{Backend: "sqlite"}, "unknown STORE_BACKEND sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			apiErr, ok := apierr.As(err)
			require.True(t, ok)
			assert.Equal(t, apierr.CodeEnvNotConfigured, apiErr.Code)
			assert.Equal(t, tt.wantErr, apiErr.Message)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
