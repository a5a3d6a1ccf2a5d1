// Package attribution records accepted clicks and links later conversions
// back to them.
package attribution

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/fingerprint"
	"promotrack/internal/core/port"
	"promotrack/internal/metrics"
)

// Config bounds uniqueness, sessions and attribution.
type Config struct {
	// UniqueWindow is how far back an earlier click of the same fingerprint
	// makes a new click non-unique.
	UniqueWindow time.Duration
	// SessionTimeout is the lifetime of the fingerprint to click session.
	SessionTimeout time.Duration
	// Window is how old a click may be and still be attributed.
	Window time.Duration
	// MaxAttributions caps the clicks flipped by one conversion.
	MaxAttributions int
}

// DefaultConfig returns the attribution defaults.
func DefaultConfig() Config {
	return Config{
		UniqueWindow:    24 * time.Hour,
		SessionTimeout:  30 * time.Minute,
		Window:          24 * time.Hour,
		MaxAttributions: 10,
	}
}

// Attributor writes clicks to the ledger and attributes conversions.
type Attributor struct {
	ledger port.ClickLedger
	store  port.CounterStore
	stats  port.StatsInvalidator
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Option customises an Attributor.
type Option func(*Attributor)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(a *Attributor) { a.now = now }
}

// WithStatsInvalidator drops cached promotion statistics after every
// recorded click and every won conversion.
func WithStatsInvalidator(inv port.StatsInvalidator) Option {
	return func(a *Attributor) { a.stats = inv }
}

// NewAttributor creates an attributor. Zero config fields take their
// defaults.
func NewAttributor(ledger port.ClickLedger, store port.CounterStore, cfg Config, logger *slog.Logger, opts ...Option) *Attributor {
	def := DefaultConfig()
	if cfg.UniqueWindow <= 0 {
		cfg.UniqueWindow = def.UniqueWindow
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = def.SessionTimeout
	}
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.MaxAttributions <= 0 {
		cfg.MaxAttributions = def.MaxAttributions
	}
	a := &Attributor{ledger: ledger, store: store, cfg: cfg, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecordClick appends an accepted click on promo. The visitor has already
// passed the fraud detector; fp is its resolved fingerprint and geo its
// location, if known.
func (a *Attributor) RecordClick(ctx context.Context, promo *domain.Promotion, v domain.VisitorContext, fp string, geo *domain.Geo) (*domain.Click, error) {
	if promo == nil {
		return nil, domain.Validation("promotion is required")
	}
	now := a.now().UTC()
	if !promo.Usable(now) {
		return nil, domain.ErrInvalidPromotion
	}
	if !fingerprint.Valid(fp) {
		return nil, domain.Validation("malformed fingerprint")
	}

	click := &domain.Click{
		PromotionID: promo.ID,
		ServerID:    promo.ServerID,
		PromoterID:  promo.PromoterID,
		IP:          strings.TrimSpace(v.IP),
		Fingerprint: fp,
		UserAgent:   v.UserAgent,
		Referrer:    v.Referrer,
		UTM:         v.UTM,
		CreatedAt:   now,
	}
	if geo != nil {
		click.Country, click.City = geo.Country, geo.City
	}
	if err := a.ledger.InsertClick(ctx, click, now.Add(-a.cfg.UniqueWindow)); err != nil {
		return nil, domain.Dependency("insert click", err)
	}
	if click.IsUnique {
		metrics.UniqueClicksTotal.Inc()
	}
	a.invalidateStats(ctx, promo.ID)

	a.storeSession(ctx, fp, domain.VisitorSession{PromotionID: promo.ID, ClickID: click.ID, CreatedAt: now})
	return click, nil
}

// AttributeConversion flips the visitor's most recent unconverted clicks to
// converted for userID, at most one click per promotion. Candidates are
// looked up by fingerprint and, when none match, by IP. Every successful
// flip is returned; a click already converted by a concurrent request is
// skipped. On a ledger failure the conversions made so far are returned
// along with the error.
func (a *Attributor) AttributeConversion(ctx context.Context, userID int64, fp, ip string) ([]port.Conversion, error) {
	if userID <= 0 {
		return nil, domain.Validation("user id must be positive")
	}
	fp = strings.ToLower(strings.TrimSpace(fp))
	ip = strings.TrimSpace(ip)
	if fp != "" && !fingerprint.Valid(fp) {
		return nil, domain.Validation("malformed fingerprint")
	}
	if fp == "" && ip == "" {
		return nil, domain.Validation("fingerprint or ip is required")
	}

	now := a.now().UTC()
	candidates, err := a.candidates(ctx, fp, ip, now.Add(-a.cfg.Window))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var session *domain.VisitorSession
	if fp != "" {
		session = a.loadSession(ctx, fp)
		if session != nil {
			candidates = promote(candidates, session.ClickID)
		}
	}

	var out []port.Conversion
	attributed := make(map[int64]bool, len(candidates))
	for _, c := range candidates {
		if len(out) >= a.cfg.MaxAttributions {
			break
		}
		if attributed[c.PromotionID] {
			continue
		}
		ok, err := a.ledger.MarkConverted(ctx, c.ID, userID, now)
		if err != nil {
			return out, domain.Dependency("mark click converted", err)
		}
		if !ok {
			a.logger.Debug("click already converted", slog.Int64("click_id", c.ID))
			continue
		}
		metrics.ConversionsTotal.Inc()
		a.invalidateStats(ctx, c.PromotionID)
		attributed[c.PromotionID] = true
		out = append(out, port.Conversion{ClickID: c.ID, PromotionID: c.PromotionID})
	}

	if session != nil {
		if err = a.store.Delete(ctx, sessionKey(fp)); err != nil {
			a.logger.Warn("visitor session cleanup failed", slog.Any("error", err))
		}
	}
	return out, nil
}

func (a *Attributor) candidates(ctx context.Context, fp, ip string, since time.Time) ([]domain.Click, error) {
	if fp != "" {
		clicks, err := a.ledger.FindUnconverted(ctx, port.UnconvertedQuery{Fingerprint: fp, Since: since, Limit: a.cfg.MaxAttributions})
		if err != nil {
			return nil, domain.Dependency("find unconverted clicks", err)
		}
		if len(clicks) > 0 || ip == "" {
			return clicks, nil
		}
	}
	clicks, err := a.ledger.FindUnconverted(ctx, port.UnconvertedQuery{IP: ip, Since: since, Limit: a.cfg.MaxAttributions})
	if err != nil {
		return nil, domain.Dependency("find unconverted clicks", err)
	}
	return clicks, nil
}

func (a *Attributor) invalidateStats(ctx context.Context, promotionID int64) {
	if a.stats == nil {
		return
	}
	if err := a.stats.InvalidateStats(ctx, promotionID); err != nil {
		a.logger.Warn("promotion stats not invalidated", slog.Int64("promotion_id", promotionID), slog.Any("error", err))
	}
}

func (a *Attributor) storeSession(ctx context.Context, fp string, s domain.VisitorSession) {
	raw, err := json.Marshal(s)
	if err != nil {
		a.logger.Error("encode visitor session", slog.Any("error", err))
		return
	}
	if err = a.store.Set(ctx, sessionKey(fp), string(raw), a.cfg.SessionTimeout); err != nil {
		a.logger.Warn("visitor session not stored", slog.Any("error", err))
	}
}

func (a *Attributor) loadSession(ctx context.Context, fp string) *domain.VisitorSession {
	raw, ok, err := a.store.Get(ctx, sessionKey(fp))
	if err != nil {
		a.logger.Warn("visitor session unavailable", slog.Any("error", err))
		return nil
	}
	if !ok {
		return nil
	}
	var s domain.VisitorSession
	if err = json.Unmarshal([]byte(raw), &s); err != nil {
		a.logger.Warn("visitor session malformed", slog.Any("error", err))
		return nil
	}
	return &s
}

// promote moves the click with id to the front, keeping the order of the
// others.
func promote(clicks []domain.Click, id int64) []domain.Click {
	for i, c := range clicks {
		if c.ID != id {
			continue
		}
		if i == 0 {
			return clicks
		}
		out := make([]domain.Click, 0, len(clicks))
		out = append(out, c)
		out = append(out, clicks[:i]...)
		return append(out, clicks[i+1:]...)
	}
	return clicks
}

func sessionKey(fp string) string { return "session:" + fp }
