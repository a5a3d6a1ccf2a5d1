package configs

import "time"

// Tracking configures click recording and conversion attribution.
type Tracking struct {
	// CounterBackend selects the counter store: "redis" or "memory".
	CounterBackend    string        `env:"COUNTER_BACKEND" envDefault:"redis"`
	UniqueWindow      time.Duration `env:"UNIQUE_WINDOW" envDefault:"24h"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`
	AttributionWindow time.Duration `env:"ATTRIBUTION_WINDOW" envDefault:"24h"`
	MaxAttributions   int           `env:"MAX_ATTRIBUTIONS" envDefault:"10"`
	// ConversionEvent is the trigger event evaluated for attributed
	// conversions.
	ConversionEvent string `env:"CONVERSION_EVENT" envDefault:"user_registration"`
	// SweepInterval is how often the memory counter store drops expired
	// keys.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}
