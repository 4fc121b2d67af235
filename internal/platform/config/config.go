package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	TokenTTL      time.Duration
	CatalogPath   string
	PostgresDSN   string
	Redis         RedisConfig
	HistoryLimit  int
	AlertSummaryN int
}

// RedisConfig configures the optional Redis connection used for the token
// revocation list.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("FARMGUARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("FARMGUARD_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      24 * time.Hour,
		CatalogPath:   os.Getenv("FARMGUARD_CATALOG_PATH"),
		PostgresDSN:   os.Getenv("FARMGUARD_DB_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("FARMGUARD_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		HistoryLimit:  5,
		AlertSummaryN: 3,
	}
}
