package configs

import "time"

// Kafka configures the distribution signal producer. An empty Brokers list
// disables publishing; approved rewards are then only logged.
type Kafka struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"rewards.distribution"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
}

// Enabled reports whether at least one broker is configured.
func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
