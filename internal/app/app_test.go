package app

import (
	"context"
	"intakeflow/internal/apierr"
	"intakeflow/internal/config"
	"intakeflow/internal/service"
	"intakeflow/internal/supabase"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewIdentityResolver(t *testing.T) {
	sb, err := supabase.New(supabase.Config{URL: "https://demo.supabase.co", AnonKey: "anon"})
	require.NoError(t, err)

	assert.IsType(t, &service.TokenAuth{}, NewIdentityResolver(config.StoreConfig{JWTSecret: "s"}, sb))
	assert.IsType(t, &service.RemoteAuth{}, NewIdentityResolver(config.StoreConfig{}, sb))
	assert.IsType(t, service.AnonymousAuth{}, NewIdentityResolver(config.StoreConfig{}, nil))
}

func TestOpenStore_Supabase(t *testing.T) {
	store, err := OpenStore(context.Background(), config.StoreConfig{
		Backend:         config.BackendSupabase,
		SupabaseURL:     "https://demo.supabase.co/",
		SupabaseAnonKey: "anon",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, store.Repo)
	assert.IsType(t, &service.RemoteAuth{}, store.Auth)
	assert.NoError(t, store.Close(context.Background()))
}

func TestOpenStore_NotConfigured(t *testing.T) {
	_, err := OpenStore(context.Background(), config.StoreConfig{Backend: config.BackendSupabase}, zap.NewNop())
	assert.Equal(t, apierr.CodeEnvNotConfigured, apierr.CodeOf(err))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "bogus"} {
		logger, err := NewLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}
}
