package configs

import "time"

// Geo configures the optional HTTP geolocation service. An empty URL
// disables geolocation; the fraud detector then relies on the edge country
// hint only.
type Geo struct {
	// URL is the lookup endpoint; the IP is appended as a path segment.
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"150ms"`
	// RateLimit bounds outgoing lookups per second. Burst allows short
	// spikes above it.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"50"`
	Burst     int     `env:"BURST" envDefault:"10"`
	// BreakerFailures consecutive failures open the circuit for
	// BreakerTimeout.
	BreakerFailures uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerTimeout  time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
}
