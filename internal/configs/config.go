package configs

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Server    ServerConfig
	Backend   BackendConfig
	Session   SessionConfig
	I18n      I18nConfig
	Postgre   PostgreConfig
	Migration MigrationConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
}

func LoadConfig(log *logrus.Logger) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := LoadSections(log, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSections parses only the given config structs. Workers use it so they do not
// require the web server's settings.
func LoadSections(log *logrus.Logger, sections ...interface{}) error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file loaded, reading configuration from the environment only.")
	}

	for _, section := range sections {
		if err := env.Parse(section); err != nil {
			return err
		}
	}

	log.Info("Configuration loaded.")
	return nil
}
