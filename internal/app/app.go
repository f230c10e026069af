package app

import (
	"context"
	"errors"
	"fmt"
	"intakeflow/internal/cache"
	"intakeflow/internal/config"
	"intakeflow/internal/repository"
	"intakeflow/internal/service"
	"intakeflow/internal/supabase"
	"intakeflow/internal/transport/rest"
	"intakeflow/internal/transport/ws"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

// Store is a connected intake backend plus the identity resolver that
// goes with it
type Store struct {
	Repo    repository.IntakeRepo
	Auth    service.IdentityResolver
	Backend string

	closers []func(context.Context) error
}

// Close releases the backend connections
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	return errors.Join(errs...)
}

// App holds the wired services of the HTTP server
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   *Store
	Redis   *redis.Client
	Intakes *service.IntakeService
	Wizard  *service.WizardService
	Hub     *ws.Hub
}

// NewLogger builds the process logger for a LOG_LEVEL value
func NewLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}

// OpenStore connects the intake backend selected by cfg
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := &Store{Backend: cfg.Backend}

	var sb *supabase.Client
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		client, err := supabase.New(supabase.Config{
			URL:     cfg.SupabaseURL,
			AnonKey: cfg.SupabaseAnonKey,
			Logger:  logger,
		})
		if err != nil {
			return nil, err
		}
		sb = client
	}

	switch cfg.Backend {
	case config.BackendSupabase:
		store.Repo = repository.NewPostgRESTIntakeRepo(sb)

	case config.BackendPostgres:
		db, err := repository.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		store.closers = append(store.closers, func(context.Context) error { return db.Close() })

		repo := repository.NewPostgresIntakeRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			store.Close(ctx)
			return nil, fmt.Errorf("failed to prepare postgres schema: %w", err)
		}
		store.Repo = repo

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		store.closers = append(store.closers, client.Disconnect)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			store.Close(ctx)
			return nil, fmt.Errorf("failed to ping mongodb: %w", err)
		}
		store.Repo = repository.NewMongoIntakeRepo(client.Database(cfg.MongoDB))
	}

	store.Auth = NewIdentityResolver(cfg, sb)
	logger.Info("intake store ready", zap.String("backend", cfg.Backend))
	return store, nil
}

// NewIdentityResolver prefers local JWT verification, then the backend's
// auth service, and falls back to treating every caller as anonymous
func NewIdentityResolver(cfg config.StoreConfig, sb *supabase.Client) service.IdentityResolver {
	switch {
	case cfg.JWTSecret != "":
		return service.NewTokenAuth(cfg.JWTSecret)
	case sb != nil:
		return service.NewRemoteAuth(sb)
	default:
		return service.AnonymousAuth{}
	}
}

// New connects every backend and wires the services
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		store.Close(ctx)
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	hub := ws.NewHub(logger)
	intakes := service.NewIntakeService(store.Repo, store.Auth, logger)
	wizard := service.NewWizardService(cache.NewSessionCache(rdb, cfg.SessionTTL), intakes, logger)

	// wsHub implements service.Broadcaster
	wizard.SetBroadcaster(hub)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Redis:   rdb,
		Intakes: intakes,
		Wizard:  wizard,
		Hub:     hub,
	}, nil
}

// Handler returns the HTTP handler for the API
func (a *App) Handler() http.Handler {
	return rest.NewRouter(&rest.Container{
		IntakeService: a.Intakes,
		WizardService: a.Wizard,
		WSHub:         a.Hub,
		CORSOrigins:   a.Config.CORSOrigins,
		Logger:        a.Logger,
	})
}

// Close releases redis and the intake backend
func (a *App) Close(ctx context.Context) error {
	return errors.Join(a.Redis.Close(), a.Store.Close(ctx))
}
