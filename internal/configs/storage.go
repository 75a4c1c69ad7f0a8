package configs

import "time"

type PostgreConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"sooquk_dashboard"`
}

type MigrationConfig struct {
	Path string `env:"MIGRATION_PATH" envDefault:"file://db/migrations"`
}

type RedisConfig struct {
	Host          string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port          string        `env:"REDIS_PORT" envDefault:"6379"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB" envDefault:"0"`
	QueryCacheTTL time.Duration `env:"QUERY_CACHE_TTL" envDefault:"1m"`
}
