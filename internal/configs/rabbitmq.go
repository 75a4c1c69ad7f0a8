package configs

import "time"

// URL left empty disables queueing; broadcasts are then delivered inline.
type RabbitMQConfig struct {
	URL            string        `env:"RABBITMQ_URL"`
	Exchange       string        `env:"RABBITMQ_EXCHANGE" envDefault:"dashboard.events"`
	MaxRetries     int           `env:"RABBITMQ_MAX_RETRIES" envDefault:"5"`
	RetryDelay     time.Duration `env:"RABBITMQ_RETRY_DELAY" envDefault:"2s"`
	PrefetchCount  int           `env:"RABBITMQ_PREFETCH_COUNT" envDefault:"10"`
	ReconnectDelay time.Duration `env:"RABBITMQ_RECONNECT_DELAY" envDefault:"5s"`
}
