// Package fraud classifies click and conversion requests before they are
// recorded. Heuristics are independent; state lives in the counter store
// under deterministic keys so that every process shares it.
package fraud

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
	"promotrack/internal/metrics"
)

// Reason explains why a request was rejected.
type Reason string

const (
	ReasonIPBlocked          Reason = "ip_blocked"
	ReasonBotUserAgent       Reason = "bot_user_agent"
	ReasonSuspiciousReferrer Reason = "suspicious_referrer"
	ReasonDailyIPCap         Reason = "daily_ip_cap"
	ReasonHourlyIPCap        Reason = "hourly_ip_cap"
	ReasonClickPattern       Reason = "click_pattern"
)

// Indicator is one signal of the click-pattern score.
type Indicator string

const (
	IndicatorBurst           Indicator = "burst"
	IndicatorSessionMismatch Indicator = "session_mismatch"
	IndicatorGeoMismatch     Indicator = "geo_mismatch"
	IndicatorRegularTiming   Indicator = "regular_timing"
)

// Verdict is the decision for one request. Indicators lists the pattern
// indicators that fired, also when they were not enough to block.
type Verdict struct {
	Allowed     bool
	Whitelisted bool
	Reason      Reason
	Indicators  []Indicator
	// Geo is the location resolved while checking, if any.
	Geo *domain.Geo
}

const (
	failureWindow = 24 * time.Hour
	suspectWindow = 24 * time.Hour
	countryMemory = 24 * time.Hour
)

// Detector evaluates the fraud heuristics against the counter store.
type Detector struct {
	store     port.CounterStore
	geo       port.Geolocator
	cfg       Config
	whitelist []netip.Prefix
	logger    *slog.Logger
	now       func() time.Time
}

// Option customises a Detector.
type Option func(*Detector)

// WithClock replaces the wall clock used for time buckets and windows.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

// NewDetector creates a detector. geo may be nil, in which case only the
// visitor's country hint feeds the geographic indicator. Whitelist entries
// must be IP addresses or CIDR prefixes.
func NewDetector(store port.CounterStore, geo port.Geolocator, cfg Config, logger *slog.Logger, opts ...Option) (*Detector, error) {
	if cfg.MinIndicators <= 0 {
		cfg.MinIndicators = 2
	}
	if cfg.BurstWindow <= 0 {
		cfg.BurstWindow = 5 * time.Minute
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = 30 * time.Minute
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = 24 * time.Hour
	}
	whitelist, err := parseWhitelist(cfg.Whitelist)
	if err != nil {
		return nil, err
	}
	d := &Detector{
		store:     store,
		geo:       geo,
		cfg:       cfg,
		whitelist: whitelist,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Check classifies a click on promotionID. It returns an error only when the
// counter store fails on a check that guards a limit; every other failure
// degrades the affected heuristic to "not triggered".
func (d *Detector) Check(ctx context.Context, promotionID int64, v domain.VisitorContext) (Verdict, error) {
	ip := domain.NormalizeIP(v.IP)
	if d.whitelisted(ip) {
		return Verdict{Allowed: true, Whitelisted: true}, nil
	}
	verdict, rejected, err := d.screen(ctx, ip, v.UserAgent)
	if err != nil || rejected {
		return verdict, err
	}
	if d.suspiciousReferrer(v.Referrer) {
		return d.reject(ctx, ip, ReasonSuspiciousReferrer, nil), nil
	}

	now := d.now().UTC()
	if ip != "" {
		reason, err := d.checkCaps(ctx, promotionID, ip, now)
		if err != nil {
			return Verdict{}, err
		}
		if reason != "" {
			return d.reject(ctx, ip, reason, nil), nil
		}
	}

	indicators, geo := d.patternIndicators(ctx, promotionID, ip, v, now)
	if len(indicators) >= d.cfg.MinIndicators {
		verdict := d.reject(ctx, ip, ReasonClickPattern, indicators)
		verdict.Geo = geo
		return verdict, nil
	}
	if len(indicators) > 0 {
		d.trackSuspect(ctx, ip, indicators)
	}
	return Verdict{Allowed: true, Indicators: indicators, Geo: geo}, nil
}

// CheckConversion applies the identity checks (whitelist, block list, bot
// signature) to a conversion request. Rate caps and pattern indicators are
// click-only.
func (d *Detector) CheckConversion(ctx context.Context, v domain.VisitorContext) (Verdict, error) {
	ip := domain.NormalizeIP(v.IP)
	if d.whitelisted(ip) {
		return Verdict{Allowed: true, Whitelisted: true}, nil
	}
	verdict, rejected, err := d.screen(ctx, ip, v.UserAgent)
	if err != nil || rejected {
		return verdict, err
	}
	return Verdict{Allowed: true}, nil
}

// Unblock removes ip from the block list and resets its failure counter.
func (d *Detector) Unblock(ctx context.Context, ip string) error {
	addr := domain.NormalizeIP(ip)
	if addr == "" {
		return domain.Validation("invalid ip %q", ip)
	}
	if err := d.store.Delete(ctx, blockKey(addr), failKey(addr)); err != nil {
		return domain.Dependency("unblock ip", err)
	}
	d.logger.Info("ip unblocked", slog.String("ip", addr))
	return nil
}

// screen runs the block list and bot signature checks shared by clicks and
// conversions.
func (d *Detector) screen(ctx context.Context, ip, userAgent string) (Verdict, bool, error) {
	if ip != "" {
		_, blocked, err := d.store.Get(ctx, blockKey(ip))
		if err != nil {
			return Verdict{}, false, domain.Dependency("fraud block list", err)
		}
		if blocked {
			return d.reject(ctx, ip, ReasonIPBlocked, nil), true, nil
		}
	}
	if d.isBot(userAgent) {
		return d.reject(ctx, ip, ReasonBotUserAgent, nil), true, nil
	}
	return Verdict{}, false, nil
}

func (d *Detector) checkCaps(ctx context.Context, promotionID int64, ip string, now time.Time) (Reason, error) {
	if limit := d.cfg.MaxClicksPerIPPerDay; limit > 0 {
		n, err := d.store.Increment(ctx, dayKey(promotionID, ip, now), 1, 24*time.Hour)
		if err != nil {
			return "", domain.Dependency("daily ip cap", err)
		}
		if n > limit {
			return ReasonDailyIPCap, nil
		}
	}
	if limit := d.cfg.MaxClicksPerIPPerHour; limit > 0 {
		n, err := d.store.Increment(ctx, hourKey(ip, now), 1, time.Hour)
		if err != nil {
			return "", domain.Dependency("hourly ip cap", err)
		}
		if n > limit {
			return ReasonHourlyIPCap, nil
		}
	}
	return "", nil
}

// reject builds a rejection and escalates the IP. A blocked IP is not
// escalated again so that its block expires on schedule.
func (d *Detector) reject(ctx context.Context, ip string, reason Reason, indicators []Indicator) Verdict {
	metrics.FraudRejectionsTotal.WithLabelValues(string(reason)).Inc()
	d.logger.Info("request rejected",
		slog.String("reason", string(reason)),
		slog.String("ip", ip),
		slog.Any("indicators", indicators),
	)
	if ip != "" && reason != ReasonIPBlocked {
		d.escalate(ctx, ip, reason)
	}
	return Verdict{Allowed: false, Reason: reason, Indicators: indicators}
}

func (d *Detector) escalate(ctx context.Context, ip string, reason Reason) {
	if d.cfg.EscalationThreshold <= 0 {
		return
	}
	n, err := d.store.Increment(ctx, failKey(ip), 1, failureWindow)
	if err != nil {
		d.logger.Warn("fraud escalation counter failed", slog.String("ip", ip), slog.Any("error", err))
		return
	}
	if n < d.cfg.EscalationThreshold {
		return
	}
	if err = d.store.Set(ctx, blockKey(ip), string(reason), d.cfg.BlockDuration); err != nil {
		d.logger.Warn("fraud block failed", slog.String("ip", ip), slog.Any("error", err))
		return
	}
	metrics.FraudEscalationsTotal.Inc()
	d.logger.Warn("ip blocked",
		slog.String("ip", ip),
		slog.Int64("failures", n),
		slog.Duration("duration", d.cfg.BlockDuration),
	)
}

func (d *Detector) trackSuspect(ctx context.Context, ip string, indicators []Indicator) {
	if _, err := d.store.Increment(ctx, suspectKey(ip), 1, suspectWindow); err != nil {
		d.logger.Warn("fraud suspect counter failed", slog.String("ip", ip), slog.Any("error", err))
	}
	d.logger.Debug("single fraud indicator", slog.String("ip", ip), slog.Any("indicators", indicators))
}

func (d *Detector) whitelisted(ip string) bool {
	if ip == "" {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, p := range d.whitelist {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func parseWhitelist(entries []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("fraud whitelist %q: %w", e, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("fraud whitelist %q: %w", e, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

func blockKey(ip string) string   { return "fraud:block:" + ip }
func failKey(ip string) string    { return "fraud:fail:" + ip }
func suspectKey(ip string) string { return "fraud:suspect:" + ip }

func dayKey(promotionID int64, ip string, now time.Time) string {
	return fmt.Sprintf("fraud:clicks:day:%d:%s:%s", promotionID, ip, now.Format("20060102"))
}

func hourKey(ip string, now time.Time) string {
	return fmt.Sprintf("fraud:clicks:hour:%s:%s", ip, now.Format("2006010215"))
}

func recentKey(promotionID int64, ip string) string {
	return fmt.Sprintf("fraud:recent:%d:%s", promotionID, ip)
}

func ipSessionKey(ip string) string { return "fraud:ipsession:" + ip }
func ipCountryKey(ip string) string { return "fraud:ipcountry:" + ip }
