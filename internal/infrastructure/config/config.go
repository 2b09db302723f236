package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string `env:"PORT,        default=8080"`
	Env          string `env:"ENV,         default=development"`
	JWTSecret    string `env:"JWT_SECRET,  required"`
	LogLevel     string `env:"LOG_LEVEL,   default=info"`
	BcryptCost   int    `env:"BCRYPT_COST, default=10"`
	AuditWorkers int    `env:"AUDIT_WORKERS, default=4"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     int    `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=ratings"`
	Password string `env:"DB_PASSWORD, default=ratings"`
	Database string `env:"DB_NAME,     default=store_ratings"`
	UseSSL   bool   `env:"DB_SSL,      default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
