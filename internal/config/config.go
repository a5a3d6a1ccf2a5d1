package config

import (
	"github.com/caarlos0/env/v11"

	"promotrack/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection holding the ledgers and
	// the directory tables.
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`
	Kafka configs.Kafka    `envPrefix:"KAFKA_"`
	Geo   configs.Geo      `envPrefix:"GEO_"`

	Fraud    configs.Fraud    `envPrefix:"FRAUD_"`
	Tracking configs.Tracking `envPrefix:"TRACKING_"`
	Reward   configs.Reward   `envPrefix:"REWARD_"`
	Cache    configs.Cache    `envPrefix:"CACHE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
