package fraud

import "time"

// Config holds the tunable heuristics of the detector. Every threshold is
// configuration; none of them is known to be optimal.
type Config struct {
	// MaxClicksPerIPPerDay caps clicks from one IP on one promotion per UTC
	// day. Zero disables the cap.
	MaxClicksPerIPPerDay int64
	// MaxClicksPerIPPerHour caps clicks from one IP across all promotions
	// per UTC hour. Zero disables the cap.
	MaxClicksPerIPPerHour int64

	// BurstThreshold is the number of clicks from one IP on one promotion
	// inside BurstWindow that fires the burst indicator.
	BurstThreshold int
	BurstWindow    time.Duration
	// TimingVarianceThreshold is the variance, in seconds squared, of
	// consecutive click intervals below which timing counts as scripted.
	TimingVarianceThreshold float64
	// MinIndicators is the number of simultaneous pattern indicators that
	// blocks a click.
	MinIndicators int

	// EscalationThreshold is the number of rejections within a day after
	// which an IP is blocked for BlockDuration.
	EscalationThreshold int64
	BlockDuration       time.Duration

	// SessionTimeout bounds how long an IP keeps its user-agent and locale
	// pair for the session consistency check.
	SessionTimeout time.Duration
	// GeoTimeout bounds a single geolocation lookup.
	GeoTimeout time.Duration

	// Whitelist holds IPs or CIDR prefixes that bypass every check.
	Whitelist           []string
	BotSignatures       []string
	SuspiciousReferrers []string
}

// DefaultConfig returns the detector defaults.
func DefaultConfig() Config {
	return Config{
		MaxClicksPerIPPerDay:    10,
		MaxClicksPerIPPerHour:   30,
		BurstThreshold:          5,
		BurstWindow:             5 * time.Minute,
		TimingVarianceThreshold: 0.5,
		MinIndicators:           2,
		EscalationThreshold:     5,
		BlockDuration:           24 * time.Hour,
		SessionTimeout:          30 * time.Minute,
		GeoTimeout:              150 * time.Millisecond,
		BotSignatures: []string{
			"bot", "crawler", "spider", "curl", "wget", "python-requests",
			"scrapy", "headless", "phantom", "selenium", "puppeteer",
		},
		SuspiciousReferrers: []string{
			"localhost", "127.0.0.1", "example.com", "test.", "staging.", "dev.",
		},
	}
}
