package cache

import (
	"context"
	"strconv"
	"time"

	"promotrack/internal/core/port"
)

// ClickLedger caches promotion statistics in front of another
// port.ClickLedger. It implements port.StatsInvalidator; cached statistics
// of a promotion are dropped when it is invalidated and expire after ttl
// otherwise. Writes pass through.
type ClickLedger struct {
	port.ClickLedger
	cache *Cache
	ttl   time.Duration
}

// NewClickLedger wraps next. A zero ttl disables caching.
func NewClickLedger(next port.ClickLedger, cache *Cache, ttl time.Duration) *ClickLedger {
	return &ClickLedger{ClickLedger: next, cache: cache, ttl: ttl}
}

// GetStats returns cached statistics for the exact request window. Windows
// are truncated to the day, matching the aggregates they are read from.
func (l *ClickLedger) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	key := strconv.FormatInt(req.PromotionID, 10) + ":" +
		req.From.UTC().Format(time.DateOnly) + ":" + req.To.UTC().Format(time.DateOnly)
	return load(ctx, l.cache, "stats", statsGeneration(req.PromotionID), key, l.ttl, func(ctx context.Context) (*port.StatsResp, error) {
		return l.ClickLedger.GetStats(ctx, req)
	})
}

// InvalidateStats drops every cached statistics window of the promotion.
func (l *ClickLedger) InvalidateStats(ctx context.Context, promotionID int64) error {
	return l.cache.Bump(ctx, statsGeneration(promotionID))
}

func statsGeneration(promotionID int64) string {
	return "stats:" + strconv.FormatInt(promotionID, 10)
}
