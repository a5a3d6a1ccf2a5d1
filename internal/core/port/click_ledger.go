package port

import (
	"context"
	"time"

	"promotrack/internal/core/domain"
)

// ClickLedger is the append-only click store. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe; in
// particular MarkConverted is a compare-and-set, never a read-then-write.
type ClickLedger interface {
	// InsertClick appends click, setting its ID, CreatedAt and IsUnique. The
	// click is unique when no earlier click with the same fingerprint exists
	// for the promotion since uniqueSince. Daily click aggregates are
	// updated in the same transaction.
	InsertClick(ctx context.Context, click *domain.Click, uniqueSince time.Time) error
	// FindUnconverted returns the most recent unconverted clicks matching
	// the query, newest first.
	FindUnconverted(ctx context.Context, q UnconvertedQuery) ([]domain.Click, error)
	// MarkConverted flips the click to converted for userID. It reports
	// false, without error, when the click was already converted. The daily
	// conversion aggregate is updated in the same transaction.
	MarkConverted(ctx context.Context, clickID, userID int64, at time.Time) (bool, error)
	// GetStats returns aggregated click statistics for a promotion.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsInvalidator drops cached statistics of a promotion after one of its
// clicks was recorded or converted.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context, promotionID int64) error
}

// UnconvertedQuery selects attribution candidates. Fingerprint takes
// precedence; IP is used only when Fingerprint is empty.
type UnconvertedQuery struct {
	Fingerprint string
	IP          string
	Since       time.Time
	Limit       int
}

// StatsReq selects the daily aggregates of one promotion in [From, To].
type StatsReq struct {
	PromotionID int64
	From        time.Time
	To          time.Time
}

// StatsResp contains aggregated click counts for a promotion.
type StatsResp struct {
	PromotionID  int64 `json:"promotion_id"`
	Clicks       int64 `json:"clicks"`
	UniqueClicks int64 `json:"unique_clicks"`
	Conversions  int64 `json:"conversions"`
}
