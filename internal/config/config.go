package config

import "github.com/caarlos0/env/v10"

// Config centralizes service configuration, loaded from the environment.
type Config struct {
	HTTPPort              string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL           string `env:"DATABASE_URL,required"`
	CatalogPath           string `env:"CATALOG_PATH"`
	JWTSecret             string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes   int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	RedisAddr             string `env:"REDIS_ADDR"`
	RedisPassword         string `env:"REDIS_PASSWORD"`
	RedisDB               int    `env:"REDIS_DB" envDefault:"0"`
	ResultCacheTTLMinutes int    `env:"RESULT_CACHE_TTL_MINUTES" envDefault:"60"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
