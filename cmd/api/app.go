package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/cache"
	"github.com/harentsoaR/carewave-api/internal/config"
	"github.com/harentsoaR/carewave-api/internal/handlers"
	"github.com/harentsoaR/carewave-api/internal/services"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/store/gormstore"
	"github.com/harentsoaR/carewave-api/internal/store/memstore"
	"github.com/harentsoaR/carewave-api/internal/store/mongostore"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

// logOutput receives every log line.
var logOutput io.Writer = os.Stdout

// setupLogger configures the global zerolog logger: console output in
// development, JSON in production.
func setupLogger(env, logLevel string) {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(logOutput).With().Timestamp().Logger()
	if env != "production" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}
	log.Logger = logger
}

// loadConfig installs the logger from APP_ENV and LOG_LEVEL, then reads the
// rest of the configuration.
func loadConfig() *config.Config {
	setupLogger(config.LogSettings())
	return config.Load()
}

// openStore connects to the backend selected by DB_DRIVER. When migrate is
// set the schema (or indexes) are brought up to date first.
func openStore(ctx context.Context, cfg *config.Config, migrate bool) (*store.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres, config.DriverSQLite:
		open := gormstore.OpenPostgres
		if cfg.DBDriver == config.DriverSQLite {
			open = gormstore.OpenSQLite
		}
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", cfg.DBDriver)
		}
		db, err := open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := gormstore.Migrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")
		return gormstore.New(db), nil

	case config.DriverMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if migrate {
			if err := mongostore.EnsureIndexes(ctx, db); err != nil {
				_ = client.Disconnect(ctx)
				return nil, err
			}
		}
		log.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")
		return mongostore.New(client, db), nil

	case config.DriverMemory:
		log.Warn().Msg("using the in-memory store; data is lost on exit")
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}

// openCache returns a Redis cache when REDIS_ADDR is set and reachable, and a
// no-op cache otherwise.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, func() error) {
	if cfg.RedisAddr == "" {
		return cache.Noop{}, func() error { return nil }
	}
	r, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("stats cache disabled")
		return cache.Noop{}, func() error { return nil }
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	return r, r.Close
}

func newAuthService(s *store.Store, cfg *config.Config) *services.AuthService {
	return services.NewAuthService(s.Users, utils.NewTokenManager(cfg.JWTSecret))
}

// newHandler wires every service over s.
func newHandler(s *store.Store, c cache.Cache, cfg *config.Config, tokens *utils.TokenManager) *handlers.Handler {
	notifier := services.NewNotificationService(cfg.SMTP)
	if !notifier.Enabled() {
		log.Info().Msg("SMTP_HOST is not set; email delivery is disabled")
	}

	patients := services.NewPatientService(s)
	appointments := services.NewAppointmentService(s, notifier, time.Now)
	billing := services.NewBillingService(s, notifier)
	stats := services.NewStatsService(s.Stats, c, cfg.StatsCacheTTL, time.Now)
	stats.Watch(patients, appointments, billing)

	return &handlers.Handler{
		Auth:         services.NewAuthService(s.Users, tokens),
		Patients:     patients,
		Appointments: appointments,
		Staff:        services.NewStaffService(s),
		Inventory:    services.NewInventoryService(s),
		Billing:      billing,
		Todos:        services.NewTodoService(s),
		Stats:        stats,
	}
}
