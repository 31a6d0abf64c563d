package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	HealthCheck HealthCheckConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Log         LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

// HealthCheckConfig drives both the one-shot probe CLI and the standalone
// monitor. Defaults mirror common container runtime health check settings.
type HealthCheckConfig struct {
	// Target is the base URL of the service process under supervision.
	Target string
	// Interval is the pause between consecutive probe ticks.
	Interval time.Duration
	// Timeout bounds a single probe; exceeding it counts as a failure.
	Timeout time.Duration
	// StartPeriod is the grace window after launch during which probe
	// results are discarded.
	StartPeriod time.Duration
	// Retries is the number of consecutive failures required to mark the
	// target unhealthy.
	Retries int
	// RecoverySuccesses is the number of consecutive successes required to
	// return to healthy. Container runtimes recover on a single success.
	RecoverySuccesses int
	// ListenAddr is where the monitor serves its own state and metrics.
	ListenAddr string
}

type StorageConfig struct {
	// Backend selects the order repository: "memory" or "postgres".
	Backend string
	// CacheTTL applies to the Redis read cache when Redis is enabled.
	CacheTTL time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		HealthCheck: HealthCheckConfig{
			Target:            getEnv("HEALTHCHECK_TARGET", "http://localhost:8000"),
			Interval:          getDurationEnv("HEALTHCHECK_INTERVAL", 30*time.Second),
			Timeout:           getDurationEnv("HEALTHCHECK_TIMEOUT", 3*time.Second),
			StartPeriod:       getDurationEnv("HEALTHCHECK_START_PERIOD", 5*time.Second),
			Retries:           getIntEnv("HEALTHCHECK_RETRIES", 3),
			RecoverySuccesses: getIntEnv("HEALTHCHECK_RECOVERY_SUCCESSES", 1),
			ListenAddr:        getEnv("MONITOR_LISTEN_ADDR", "0.0.0.0:8001"),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "memory"),
			CacheTTL: getDurationEnv("ORDER_CACHE_TTL", 3*time.Minute),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "orders_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:      getBoolEnv("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.HealthCheck.Retries < 1 {
		return nil, fmt.Errorf("HEALTHCHECK_RETRIES must be at least 1, got %d", cfg.HealthCheck.Retries)
	}
	if cfg.HealthCheck.RecoverySuccesses < 1 {
		return nil, fmt.Errorf("HEALTHCHECK_RECOVERY_SUCCESSES must be at least 1, got %d", cfg.HealthCheck.RecoverySuccesses)
	}
	if cfg.Storage.Backend != "memory" && cfg.Storage.Backend != "postgres" {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (expected memory or postgres)", cfg.Storage.Backend)
	}

	// Build database DSN
	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Bare numbers are treated as seconds, matching container runtime
		// health check options.
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
