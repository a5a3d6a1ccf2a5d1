package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promotrack/internal/config/configs"
	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
	"promotrack/internal/core/port/mocks"
)

const fp = "4f2c6a8e1b3d5f7092a4c6e8f0b2d4f6a8c0e2f4b6d8f0a2c4e6f8a0b2d4f6a8"

type fixture struct {
	tracking *mocks.MockTrackingUseCase
	rewards  *mocks.MockRewardUseCase
	handler  http.Handler
}

func newFixture(t *testing.T, cfg configs.HTTP) *fixture {
	t.Helper()
	f := &fixture{
		tracking: mocks.NewMockTrackingUseCase(t),
		rewards:  mocks.NewMockRewardUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(f.tracking, f.rewards, cfg, logger).Router()
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRedirectAccepted(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Run(func(_ context.Context, _ string, v domain.VisitorContext) {
			// proxy headers are ignored unless trusted
			assert.Equal(t, "192.0.2.1", v.IP)
			assert.Equal(t, "test-agent", v.UserAgent)
			assert.Equal(t, "en-US", v.AcceptLanguage)
			assert.Equal(t, "newsletter", v.UTM.Source)
			assert.Equal(t, fp, v.FingerprintHint)
			assert.Empty(t, v.CountryHint)
		}).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, ClickID: 1, RedirectURL: "https://discord.gg/abc123", IsUnique: true}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/r/ABC123?utm_source=newsletter", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("Cf-Ipcountry", "DE")
	req.Header.Set("X-Visitor-Fingerprint", fp)
	rec := f.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://discord.gg/abc123", rec.Header().Get("Location"))
}

func TestRedirectBehindTrustedProxy(t *testing.T) {
	f := newFixture(t, configs.HTTP{TrustProxy: true})
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Run(func(_ context.Context, _ string, v domain.VisitorContext) {
			assert.Equal(t, "203.0.113.9", v.IP)
			assert.Equal(t, "DE", v.CountryHint)
		}).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, RedirectURL: "https://discord.gg/abc123"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/r/ABC123", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("Cf-Ipcountry", "DE")
	rec := f.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRedirectRejected(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Return(&port.TrackClickResult{Outcome: port.OutcomeRejected, Reason: "bot_user_agent"}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/r/ABC123", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "bot_user_agent")
}

func TestRedirectErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"unknown code", domain.NotFound("promotion", "NOPE"), http.StatusNotFound, "not found"},
		{"paused promotion", fmt.Errorf("%w: promotion is paused", domain.ErrInvalidPromotion), http.StatusGone, "paused"},
		{"dependency", domain.Dependency("get promotion", errors.New("connection refused")), http.StatusServiceUnavailable, "Service Unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, configs.HTTP{})
			f.tracking.EXPECT().TrackClick(mock.Anything, "NOPE", mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(httptest.NewRequest(http.MethodGet, "/r/NOPE", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestTrackClickJSON(t *testing.T) {
	f := newFixture(t, configs.HTTP{TrustProxy: true})
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Run(func(_ context.Context, _ string, v domain.VisitorContext) {
			assert.Equal(t, "1.2.3.4", v.IP)
			assert.Equal(t, "forwarded-agent", v.UserAgent)
			assert.Equal(t, fp, v.FingerprintHint)
			assert.Equal(t, "NL", v.CountryHint)
			assert.Equal(t, "spring", v.UTM.Campaign)
		}).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, ClickID: 5, RedirectURL: "https://discord.gg/abc123", IsUnique: true}, nil).
		Once()

	body := `{"code":"ABC123","ip":"::ffff:1.2.3.4","user_agent":"forwarded-agent","fingerprint":"` + fp + `","country":"NL","utm":{"utm_campaign":"spring"}}`
	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "accepted", got["outcome"])
	assert.Equal(t, float64(5), got["click_id"])
	assert.Equal(t, true, got["is_unique"])
}

func TestTrackClickJSONIgnoresVisitorFieldsFromUntrustedCaller(t *testing.T) {
	f := newFixture(t, configs.HTTP{RateLimit: 100, RateWindow: time.Minute})
	const clicks = 40
	var seen []string
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Run(func(_ context.Context, _ string, v domain.VisitorContext) {
			seen = append(seen, v.IP)
			assert.Empty(t, v.FingerprintHint)
			assert.Empty(t, v.CountryHint)
			assert.Equal(t, "forwarded-agent", v.UserAgent)
		}).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, RedirectURL: "https://discord.gg/abc123"}, nil).
		Times(clicks)

	for i := 0; i < clicks; i++ {
		body := fmt.Sprintf(`{"code":"ABC123","ip":"198.51.100.%d","user_agent":"forwarded-agent","fingerprint":"%s","country":"NL"}`, i+1, fp)
		rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	require.Len(t, seen, clicks)
	for _, ip := range seen {
		// every click is counted against the TCP peer
		assert.Equal(t, "192.0.2.1", ip)
	}
}

func TestTrackClickValidation(t *testing.T) {
	tests := map[string]string{
		"missing code":    `{"ip":"1.2.3.4"}`,
		"bad ip":          `{"code":"ABC123","ip":"not-an-ip"}`,
		"bad fingerprint": `{"code":"ABC123","fingerprint":"xyz"}`,
		"malformed json":  `{"code":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, configs.HTTP{})
			rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTrackConversion(t *testing.T) {
	f := newFixture(t, configs.HTTP{TrustProxy: true})
	promo := int64(7)
	click := int64(2)
	f.tracking.EXPECT().
		TrackConversion(mock.Anything, int64(42), mock.Anything).
		Run(func(_ context.Context, _ int64, conv domain.ConversionContext) {
			assert.Equal(t, "203.0.113.9", conv.IP)
			assert.Equal(t, fp, conv.Fingerprint)
			assert.Equal(t, "user_registration", conv.Event)
			require.NotNil(t, conv.Reward.UserLevel)
			assert.Equal(t, 3, *conv.Reward.UserLevel)
		}).
		Return(&port.ConversionResult{
			Outcome:     port.OutcomeAccepted,
			Conversions: []port.Conversion{{ClickID: 2, PromotionID: 7}},
			Rewards: []domain.Reward{{
				ID: 9, ServerID: 3, UserID: 42, PromotionID: &promo, ClickID: &click, SettingID: 1,
				Type: "referral", Amount: 150, Status: domain.RewardPending,
			}},
			Errors: []port.SettingError{{PromotionID: 8, Err: "dependency failure"}},
		}, nil).
		Once()

	body := `{"user_id":42,"ip":"203.0.113.9","fingerprint":"` + fp + `","event":"user_registration","context":{"user_level":3}}`
	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/conversions", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "accepted", got["outcome"])
	assert.Equal(t, []any{map[string]any{"click_id": float64(2), "promotion_id": float64(7)}}, got["conversions"])
	rewards := got["rewards"].([]any)
	require.Len(t, rewards, 1)
	assert.Equal(t, float64(150), rewards[0].(map[string]any)["amount"])
	assert.Equal(t, "pending", rewards[0].(map[string]any)["status"])
	assert.Len(t, got["errors"], 1)
}

func TestTrackConversionFromUntrustedCaller(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	other := strings.Repeat("ab", 32)
	f.tracking.EXPECT().
		TrackConversion(mock.Anything, int64(42), mock.Anything).
		Run(func(_ context.Context, _ int64, conv domain.ConversionContext) {
			assert.Equal(t, "192.0.2.1", conv.IP)
			assert.Equal(t, fp, conv.Fingerprint)
		}).
		Return(&port.ConversionResult{Outcome: port.OutcomeAccepted}, nil).
		Once()

	body := `{"user_id":42,"ip":"203.0.113.9","fingerprint":"` + other + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversions", strings.NewReader(body))
	req.Header.Set("X-Visitor-Fingerprint", fp)
	rec := f.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrackConversionRejectedAndInvalid(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.tracking.EXPECT().
		TrackConversion(mock.Anything, int64(42), mock.Anything).
		Return(&port.ConversionResult{Outcome: port.OutcomeRejected, Reason: "ip_blocked"}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/conversions", strings.NewReader(`{"user_id":42}`)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ip_blocked", decodeBody(t, rec)["reason"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/v1/conversions", strings.NewReader(`{"user_id":0}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	f.tracking.EXPECT().
		GetStats(mock.Anything, port.StatsReq{PromotionID: 7, From: from, To: to}).
		Return(&port.StatsResp{PromotionID: 7, Clicks: 2, UniqueClicks: 1, Conversions: 1}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/promotions/7/stats?from=2024-03-01&to=2024-03-02T12:00:00Z", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"promotion_id":7,"clicks":2,"unique_clicks":1,"conversions":1}`, rec.Body.String())
}

func TestStatsBadParams(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	for _, target := range []string{
		"/api/v1/promotions/abc/stats",
		"/api/v1/promotions/0/stats",
		"/api/v1/promotions/7/stats?from=yesterday",
		"/api/v1/promotions/7/stats?to=03/02/2024",
	} {
		rec := f.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestPreview(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.rewards.EXPECT().
		EvaluateReward(mock.Anything, int64(1), int64(42), mock.Anything).
		Return(&port.PreviewResult{SettingID: 1, Eligible: true, Amount: 150, Multiplier: 1.5, Bonuses: []string{"first_time"}}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/reward-settings/1/preview", strings.NewReader(`{"user_id":42}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"setting_id":1,"eligible":true,"amount":150,"multiplier":1.5,"bonuses":["first_time"]}`, rec.Body.String())
}

func TestProcessRewards(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.rewards.EXPECT().
		ProcessPromotionReward(mock.Anything, int64(7), int64(42), mock.Anything).
		Return(&port.ProcessResult{
			Rewards: []domain.Reward{{ID: 9, SettingID: 1, Amount: 100, Status: domain.RewardApproved}},
			Skipped: []port.SkippedSetting{{SettingID: 2, Reason: "cooldown"}},
		}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/promotions/7/rewards", strings.NewReader(`{"user_id":42}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Len(t, got["rewards"], 1)
	assert.Equal(t, []any{map[string]any{"setting_id": float64(2), "reason": "cooldown"}}, got["skipped"])
}

func TestTransitions(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.rewards.EXPECT().
		TransitionReward(mock.Anything, int64(9), domain.RewardApproved, "").
		Return(&domain.Reward{ID: 9, Status: domain.RewardApproved}, nil).
		Once()
	f.rewards.EXPECT().
		TransitionReward(mock.Anything, int64(9), domain.RewardFailed, "wallet offline").
		Return(&domain.Reward{ID: 9, Status: domain.RewardFailed}, nil).
		Once()
	f.rewards.EXPECT().
		TransitionReward(mock.Anything, int64(9), domain.RewardCancelled, "").
		Return(nil, domain.Conflict("reward %d cannot move from %s to %s", 9, domain.RewardDistributed, domain.RewardCancelled)).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/rewards/9/approve", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", decodeBody(t, rec)["status"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/v1/rewards/9/fail", strings.NewReader(`{"reason":"wallet offline"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "failed", decodeBody(t, rec)["status"])

	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/v1/rewards/9/cancel", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodPost, "/api/v1/rewards/9/explode", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecalculate(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.rewards.EXPECT().
		RecalculateReward(mock.Anything, int64(9), mock.Anything).
		Run(func(_ context.Context, _ int64, patch domain.EvaluationContext) {
			assert.Equal(t, 4, patch.ReferralChainLength)
		}).
		Return(&domain.Reward{ID: 9, Amount: 140, Status: domain.RewardPending}, nil).
		Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/rewards/9/recalculate", strings.NewReader(`{"context":{"referral_chain_length":4}}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(140), decodeBody(t, rec)["amount"])
}

func TestInvalidateAndUnblock(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	f.rewards.EXPECT().InvalidateRewardSettings(mock.Anything, int64(3)).Return(nil).Once()
	f.tracking.EXPECT().UnblockIP(mock.Anything, "203.0.113.9").Return(nil).Once()

	rec := f.do(httptest.NewRequest(http.MethodPost, "/api/v1/servers/3/reward-settings/invalidate", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodDelete, "/api/v1/fraud/blocks/203.0.113.9", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(httptest.NewRequest(http.MethodDelete, "/api/v1/fraud/blocks/nope", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackingRoutesAreRateLimited(t *testing.T) {
	f := newFixture(t, configs.HTTP{RateLimit: 2, RateWindow: time.Minute})
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, RedirectURL: "https://discord.gg/abc123"}, nil).
		Twice()

	for i := 0; i < 2; i++ {
		rec := f.do(httptest.NewRequest(http.MethodGet, "/r/ABC123", nil))
		require.Equal(t, http.StatusFound, rec.Code)
	}
	rec := f.do(httptest.NewRequest(http.MethodGet, "/r/ABC123", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// another client has its own budget
	f.tracking.EXPECT().
		TrackClick(mock.Anything, "ABC123", mock.Anything).
		Return(&port.TrackClickResult{Outcome: port.OutcomeAccepted, RedirectURL: "https://discord.gg/abc123"}, nil).
		Once()
	req := httptest.NewRequest(http.MethodGet, "/r/ABC123", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec = f.do(req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, configs.HTTP{})
	rec := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		trust   bool
		remote  string
		headers map[string]string
		want    string
	}{
		{"peer", false, "192.0.2.1:1234", nil, "192.0.2.1"},
		{"untrusted headers ignored", false, "192.0.2.1:1234", map[string]string{"X-Forwarded-For": "203.0.113.9"}, "192.0.2.1"},
		{"cloudflare first", true, "10.0.0.1:1234", map[string]string{"Cf-Connecting-Ip": "198.51.100.7", "X-Forwarded-For": "203.0.113.9"}, "198.51.100.7"},
		{"left-most forwarded", true, "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "garbage, 203.0.113.9, 10.0.0.2"}, "203.0.113.9"},
		{"real ip", true, "10.0.0.1:1234", map[string]string{"X-Real-Ip": "203.0.113.10"}, "203.0.113.10"},
		{"mapped v4", false, "[::ffff:192.0.2.5]:80", nil, "192.0.2.5"},
		{"v6", false, "[2001:db8::1]:80", nil, "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trust))
		})
	}
}
