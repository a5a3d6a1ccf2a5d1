package configs

// Redis configures the shared counter store and cache. Addr accepts either
// a redis:// URL or a host:port pair.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"0"`
	// KeyPrefix namespaces every counter store key.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"promotrack:"`
}
