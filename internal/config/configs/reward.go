package configs

import "time"

// Reward configures the reward rule engine.
type Reward struct {
	// GlobalDailyCap limits rewards per user per server per day across all
	// settings. Zero disables the cap.
	GlobalDailyCap  int64         `env:"GLOBAL_DAILY_CAP" envDefault:"10"`
	DefaultCooldown time.Duration `env:"DEFAULT_COOLDOWN" envDefault:"1h"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"500ms"`
}
