package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/utils"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"

	defaultEnv      = "development"
	defaultLogLevel = "info"
)

type Config struct {
	Env      string
	Port     string
	APIURL   string
	LogLevel string

	DBDriver      string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string

	JWTSecret   string
	CORSOrigins []string
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty means the peer address is the client.
	TrustedProxies []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StatsCacheTTL time.Duration

	SMTP SMTPConfig

	LoginRateLimit int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether an SMTP host has been configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// LogSettings loads .env (if present) and returns APP_ENV and LOG_LEVEL, so a
// logger can be installed before Load reports anything.
func LogSettings() (env, level string) {
	_ = godotenv.Load()
	return getEnv("APP_ENV", defaultEnv), getEnv("LOG_LEVEL", defaultLogLevel)
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", defaultEnv),
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "carewave"),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:8080")),

		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		StatsCacheTTL: getEnvDuration("STATS_CACHE_TTL", 30*time.Second),

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "billing@carewave.com"),
		},

		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 10),
	}
	cfg.APIURL = getEnv("API_URL", "http://localhost:"+cfg.Port)

	if cfg.DBDriver == DriverSQLite && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "carewave.db"
	}

	if cfg.JWTSecret == "" {
		secret, err := utils.GeneratePassword(48)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to generate JWT secret")
		}
		cfg.JWTSecret = secret
		log.Warn().Msg("JWT_SECRET is NOT SET. Using a random secret; tokens will not survive a restart.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
