package fraud

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/fingerprint"
	"promotrack/internal/metrics"
)

// isBot reports whether the user agent matches a bot signature. An empty
// user agent is not evidence of a bot.
func (d *Detector) isBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return false
	}
	for _, sig := range d.cfg.BotSignatures {
		if sig = strings.ToLower(strings.TrimSpace(sig)); sig != "" && strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}

// suspiciousReferrer reports whether the referrer host contains a known
// placeholder or staging fragment. Unparseable referrers are ignored.
func (d *Detector) suspiciousReferrer(referrer string) bool {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return false
	}
	u, err := url.Parse(referrer)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, frag := range d.cfg.SuspiciousReferrers {
		if frag = strings.ToLower(strings.TrimSpace(frag)); frag != "" && strings.Contains(host, frag) {
			return true
		}
	}
	return false
}

// patternIndicators evaluates the click-pattern indicators. Each one is
// keyed by IP; without an IP none can fire. Store failures degrade the
// affected indicator.
func (d *Detector) patternIndicators(ctx context.Context, promotionID int64, ip string, v domain.VisitorContext, now time.Time) ([]Indicator, *domain.Geo) {
	geo := d.locate(ctx, ip, v.CountryHint)
	if ip == "" {
		return nil, geo
	}

	var out []Indicator
	times, err := d.store.AppendEvent(ctx, recentKey(promotionID, ip), now, d.cfg.BurstWindow)
	if err != nil {
		d.logger.Warn("click window unavailable", slog.String("ip", ip), slog.Any("error", err))
	} else {
		if d.cfg.BurstThreshold > 0 && len(times) >= d.cfg.BurstThreshold {
			out = append(out, IndicatorBurst)
		}
		if regularTiming(times, d.cfg.TimingVarianceThreshold) {
			out = append(out, IndicatorRegularTiming)
		}
	}
	if d.sessionMismatch(ctx, ip, v) {
		out = append(out, IndicatorSessionMismatch)
	}
	if geo != nil && d.countryMismatch(ctx, ip, geo.Country) {
		out = append(out, IndicatorGeoMismatch)
	}

	for _, ind := range out {
		metrics.FraudIndicatorsTotal.WithLabelValues(string(ind)).Inc()
	}
	return out, geo
}

// sessionMismatch reports whether the IP-keyed session already holds a
// different user-agent and locale pair, then refreshes the session.
func (d *Detector) sessionMismatch(ctx context.Context, ip string, v domain.VisitorContext) bool {
	if strings.TrimSpace(v.UserAgent) == "" && strings.TrimSpace(v.AcceptLanguage) == "" {
		return false
	}
	digest := fingerprint.Digest(v.UserAgent, v.AcceptLanguage)
	key := ipSessionKey(ip)
	prev, ok, err := d.store.Get(ctx, key)
	if err != nil {
		d.logger.Warn("ip session unavailable", slog.String("ip", ip), slog.Any("error", err))
		return false
	}
	if err = d.store.Set(ctx, key, digest, d.cfg.SessionTimeout); err != nil {
		d.logger.Warn("ip session refresh failed", slog.String("ip", ip), slog.Any("error", err))
	}
	return ok && prev != digest
}

// countryMismatch reports whether the IP was last seen in another country,
// then remembers the current one.
func (d *Detector) countryMismatch(ctx context.Context, ip, country string) bool {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return false
	}
	key := ipCountryKey(ip)
	prev, ok, err := d.store.Get(ctx, key)
	if err != nil {
		d.logger.Warn("ip country unavailable", slog.String("ip", ip), slog.Any("error", err))
		return false
	}
	if err = d.store.Set(ctx, key, country, countryMemory); err != nil {
		d.logger.Warn("ip country refresh failed", slog.String("ip", ip), slog.Any("error", err))
	}
	return ok && prev != country
}

// locate resolves the visitor's location. A country hint from the edge wins;
// otherwise the geolocator is asked under its own deadline. Any failure
// yields nil and never fails the click.
func (d *Detector) locate(ctx context.Context, ip, countryHint string) *domain.Geo {
	if hint := strings.ToUpper(strings.TrimSpace(countryHint)); hint != "" {
		return &domain.Geo{Country: hint}
	}
	if d.geo == nil || ip == "" {
		return nil
	}
	if d.cfg.GeoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.GeoTimeout)
		defer cancel()
	}
	geo, err := d.geo.Locate(ctx, ip)
	if err != nil {
		metrics.GeoLookupsTotal.WithLabelValues("degraded").Inc()
		d.logger.Debug("geolocation degraded", slog.String("ip", ip), slog.Any("error", err))
		return nil
	}
	return geo
}

// regularTiming reports whether the intervals between consecutive events
// are nearly constant. At least two intervals are required.
func regularTiming(times []time.Time, threshold float64) bool {
	if len(times) < 3 || threshold <= 0 {
		return false
	}
	intervals := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		intervals = append(intervals, times[i].Sub(times[i-1]).Seconds())
	}
	return variance(intervals) < threshold
}

// variance returns the population variance of xs.
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += (x - mean) * (x - mean)
	}
	return sum / float64(len(xs))
}
