package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// TrustProxy enables reading the client IP from CF-Connecting-IP and
	// X-Forwarded-For, and the visitor ip, fingerprint and country fields
	// of tracking request bodies. Enable it only behind a proxy or forwarder
	// that overwrites them.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
	// RateLimit is the number of requests one client IP may send per
	// RateWindow to the tracking endpoints. Zero disables the limiter.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
