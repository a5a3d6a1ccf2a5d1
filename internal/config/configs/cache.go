package configs

import "time"

// Cache configures the read-through cache kept in Redis. A zero TTL
// disables caching for that namespace.
type Cache struct {
	SettingsTTL time.Duration `env:"SETTINGS_TTL" envDefault:"5m"`
	StatsTTL    time.Duration `env:"STATS_TTL" envDefault:"1m"`
	// FetchTimeout bounds a fetch shared by concurrent misses. It runs
	// detached from the request that started it.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
}
