package configs

import "time"

type ServerConfig struct {
	Port           string        `env:"SERVER_PORT,required"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	JWTSecret      string        `env:"JWT_SECRET"`
	Audience       string        `env:"JWT_AUDIENCE"`
	ShutdownGrace  time.Duration `env:"SHUTDOWN_GRACE" envDefault:"10s"`
}

type BackendConfig struct {
	BaseURL         string        `env:"BACKEND_BASE_URL,required"`
	Timeout         time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
	ServiceEmail    string        `env:"BACKEND_SERVICE_EMAIL"`
	ServicePassword string        `env:"BACKEND_SERVICE_PASSWORD"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sooquk_session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	Secure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
	LoginPath  string        `env:"LOGIN_PATH" envDefault:"/login"`
}

type I18nConfig struct {
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
}
