package configs

import "time"

// Fraud holds the fraud detector thresholds. See fraud.Config for their
// meaning.
type Fraud struct {
	MaxClicksPerIPPerDay    int64         `env:"MAX_CLICKS_PER_IP_PER_DAY" envDefault:"10"`
	MaxClicksPerIPPerHour   int64         `env:"MAX_CLICKS_PER_IP_PER_HOUR" envDefault:"30"`
	BurstThreshold          int           `env:"BURST_THRESHOLD" envDefault:"5"`
	BurstWindow             time.Duration `env:"BURST_WINDOW" envDefault:"5m"`
	TimingVarianceThreshold float64       `env:"TIMING_VARIANCE_THRESHOLD" envDefault:"0.5"`
	MinIndicators           int           `env:"MIN_INDICATORS" envDefault:"2"`
	EscalationThreshold     int64         `env:"ESCALATION_THRESHOLD" envDefault:"5"`
	BlockDuration           time.Duration `env:"BLOCK_DURATION" envDefault:"24h"`
	Whitelist               []string      `env:"WHITELIST" envSeparator:","`
	BotSignatures           []string      `env:"BOT_SIGNATURES" envSeparator:"," envDefault:"bot,crawler,spider,curl,wget,python-requests,scrapy,headless,phantom,selenium,puppeteer"`
	SuspiciousReferrers     []string      `env:"SUSPICIOUS_REFERRERS" envSeparator:"," envDefault:"localhost,127.0.0.1,example.com,test.,staging.,dev."`
	// Timeout bounds the fraud checks of one request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"300ms"`
}
