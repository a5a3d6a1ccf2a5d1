package fraud

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promotrack/internal/adapter/memory"
	"promotrack/internal/core/domain"
)

const (
	testIP  = "203.0.113.7"
	testUA  = "Mozilla/5.0 (X11; Linux x86_64)"
	promoID = int64(42)
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type stubGeo struct {
	geo *domain.Geo
	err error
}

func (g stubGeo) Locate(context.Context, string) (*domain.Geo, error) { return g.geo, g.err }

// failingStore fails every counter increment.
type failingStore struct{ *memory.CounterStore }

func (failingStore) Increment(context.Context, string, int64, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

// quietConfig disables the pattern indicators so that tests can enable only
// the ones they exercise.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.BurstThreshold = 0
	cfg.TimingVarianceThreshold = 0
	return cfg
}

func newDetector(t *testing.T, cfg Config) (*Detector, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	d, err := NewDetector(memory.NewCounterStore(discard), nil, cfg, discard, WithClock(c.Now))
	require.NoError(t, err)
	return d, c
}

func visitor() domain.VisitorContext {
	return domain.VisitorContext{IP: testIP, UserAgent: testUA, AcceptLanguage: "en-US"}
}

func TestCheckRejectsBotUserAgent(t *testing.T) {
	d, _ := newDetector(t, quietConfig())
	v := visitor()
	v.UserAgent = "curl/8.4.0"

	verdict, err := d.Check(context.Background(), promoID, v)
	require.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, ReasonBotUserAgent, verdict.Reason)
}

func TestCheckRejectsSuspiciousReferrer(t *testing.T) {
	d, _ := newDetector(t, quietConfig())
	v := visitor()
	v.Referrer = "https://staging.shop.io/landing"

	verdict, err := d.Check(context.Background(), promoID, v)
	require.NoError(t, err)
	assert.Equal(t, ReasonSuspiciousReferrer, verdict.Reason)

	v.Referrer = "https://news.site/article"
	verdict, err = d.Check(context.Background(), promoID, v)
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
}

func TestCheckDailyCap(t *testing.T) {
	cfg := quietConfig()
	cfg.EscalationThreshold = 0
	d, _ := newDetector(t, cfg)
	ctx := context.Background()

	for i := int64(0); i < cfg.MaxClicksPerIPPerDay; i++ {
		verdict, err := d.Check(ctx, promoID, visitor())
		require.NoError(t, err)
		require.True(t, verdict.Allowed, "click %d", i+1)
	}
	verdict, err := d.Check(ctx, promoID, visitor())
	require.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, ReasonDailyIPCap, verdict.Reason)

	// the cap is per promotion
	verdict, err = d.Check(ctx, promoID+1, visitor())
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
}

func TestCheckHourlyCapSpansPromotions(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxClicksPerIPPerDay = 0
	cfg.MaxClicksPerIPPerHour = 3
	cfg.EscalationThreshold = 0
	d, c := newDetector(t, cfg)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		verdict, err := d.Check(ctx, i, visitor())
		require.NoError(t, err)
		require.True(t, verdict.Allowed)
	}
	verdict, err := d.Check(ctx, 4, visitor())
	require.NoError(t, err)
	assert.Equal(t, ReasonHourlyIPCap, verdict.Reason)

	c.now = c.now.Add(time.Hour)
	verdict, err = d.Check(ctx, 4, visitor())
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
}

func TestCheckSingleIndicatorIsAllowed(t *testing.T) {
	d, _ := newDetector(t, quietConfig())
	ctx := context.Background()

	_, err := d.Check(ctx, promoID, visitor())
	require.NoError(t, err)

	v := visitor()
	v.UserAgent = "Mozilla/5.0 (Macintosh)"
	verdict, err := d.Check(ctx, promoID, v)
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, []Indicator{IndicatorSessionMismatch}, verdict.Indicators)
}

func TestCheckTwoIndicatorsBlock(t *testing.T) {
	cfg := quietConfig()
	cfg.BurstThreshold = 3
	cfg.TimingVarianceThreshold = 0.5
	d, c := newDetector(t, cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		verdict, err := d.Check(ctx, promoID, visitor())
		require.NoError(t, err)
		require.True(t, verdict.Allowed)
		c.now = c.now.Add(10 * time.Second)
	}
	verdict, err := d.Check(ctx, promoID, visitor())
	require.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, ReasonClickPattern, verdict.Reason)
	assert.ElementsMatch(t, []Indicator{IndicatorBurst, IndicatorRegularTiming}, verdict.Indicators)
}

func TestCheckGeoMismatchWithSessionMismatch(t *testing.T) {
	d, _ := newDetector(t, quietConfig())
	ctx := context.Background()

	v := visitor()
	v.CountryHint = "us"
	verdict, err := d.Check(ctx, promoID, v)
	require.NoError(t, err)
	require.True(t, verdict.Allowed)
	require.NotNil(t, verdict.Geo)
	assert.Equal(t, "US", verdict.Geo.Country)

	v.CountryHint = "DE"
	v.UserAgent = "Mozilla/5.0 (Windows NT 10.0)"
	verdict, err = d.Check(ctx, promoID, v)
	require.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.ElementsMatch(t, []Indicator{IndicatorSessionMismatch, IndicatorGeoMismatch}, verdict.Indicators)
}

func TestCheckGeolocatorFailureDegrades(t *testing.T) {
	c := &clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	d, err := NewDetector(memory.NewCounterStore(discard), stubGeo{err: errors.New("timeout")}, quietConfig(), discard, WithClock(c.Now))
	require.NoError(t, err)

	verdict, err := d.Check(context.Background(), promoID, visitor())
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Nil(t, verdict.Geo)
}

func TestCheckUsesGeolocator(t *testing.T) {
	c := &clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	geo := &domain.Geo{Country: "FR", City: "Lyon"}
	d, err := NewDetector(memory.NewCounterStore(discard), stubGeo{geo: geo}, quietConfig(), discard, WithClock(c.Now))
	require.NoError(t, err)

	verdict, err := d.Check(context.Background(), promoID, visitor())
	require.NoError(t, err)
	assert.Equal(t, geo, verdict.Geo)
}

func TestEscalationBlocksAndUnblock(t *testing.T) {
	cfg := quietConfig()
	cfg.EscalationThreshold = 2
	d, _ := newDetector(t, cfg)
	ctx := context.Background()

	bot := visitor()
	bot.UserAgent = "python-requests/2.31"
	for i := 0; i < 2; i++ {
		verdict, err := d.Check(ctx, promoID, bot)
		require.NoError(t, err)
		require.Equal(t, ReasonBotUserAgent, verdict.Reason)
	}

	verdict, err := d.Check(ctx, promoID, visitor())
	require.NoError(t, err)
	assert.Equal(t, ReasonIPBlocked, verdict.Reason)

	conv, err := d.CheckConversion(ctx, visitor())
	require.NoError(t, err)
	assert.Equal(t, ReasonIPBlocked, conv.Reason)

	require.NoError(t, d.Unblock(ctx, testIP))
	verdict, err = d.Check(ctx, promoID, visitor())
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
}

func TestUnblockRejectsInvalidIP(t *testing.T) {
	d, _ := newDetector(t, quietConfig())

	err := d.Unblock(context.Background(), "not-an-ip")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWhitelistBypassesChecks(t *testing.T) {
	cfg := quietConfig()
	cfg.Whitelist = []string{"203.0.113.0/24", "2001:db8::1"}
	d, _ := newDetector(t, cfg)

	bot := visitor()
	bot.UserAgent = "Googlebot/2.1"
	verdict, err := d.Check(context.Background(), promoID, bot)
	require.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.True(t, verdict.Whitelisted)
}

func TestNewDetectorRejectsBadWhitelist(t *testing.T) {
	cfg := quietConfig()
	cfg.Whitelist = []string{"10.0.0.0/33"}

	_, err := NewDetector(memory.NewCounterStore(discard), nil, cfg, discard)
	assert.Error(t, err)
}

func TestCheckCapFailureIsDependencyError(t *testing.T) {
	store := failingStore{memory.NewCounterStore(discard)}
	d, err := NewDetector(store, nil, quietConfig(), discard)
	require.NoError(t, err)

	_, err = d.Check(context.Background(), promoID, visitor())
	assert.ErrorIs(t, err, domain.ErrDependency)
}

func TestConversionSkipsRateCaps(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxClicksPerIPPerDay = 1
	d, _ := newDetector(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		verdict, err := d.CheckConversion(ctx, visitor())
		require.NoError(t, err)
		assert.True(t, verdict.Allowed)
	}
}

func TestRegularTiming(t *testing.T) {
	base := time.Unix(0, 0)
	steady := []time.Time{base, base.Add(10 * time.Second), base.Add(20 * time.Second)}
	jittery := []time.Time{base, base.Add(2 * time.Second), base.Add(30 * time.Second)}

	assert.True(t, regularTiming(steady, 0.5))
	assert.False(t, regularTiming(jittery, 0.5))
	assert.False(t, regularTiming(steady[:2], 0.5))
}
