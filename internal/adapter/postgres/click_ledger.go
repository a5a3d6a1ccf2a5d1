package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// ClickLedger implements port.ClickLedger using pgxpool for PostgreSQL.
type ClickLedger struct {
	pool *pgxpool.Pool
}

// NewClickLedger returns a new ledger instance.
func NewClickLedger(pool *pgxpool.Pool) *ClickLedger {
	return &ClickLedger{pool: pool}
}

// inTx runs fn in a read-committed transaction, committing when fn succeeds.
func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

// InsertClick appends the click. Concurrent inserts for the same promotion
// and fingerprint are serialised with a transaction-scoped advisory lock so
// that exactly one of them is unique. The daily aggregate is upserted in the
// same transaction.
func (l *ClickLedger) InsertClick(ctx context.Context, click *domain.Click, uniqueSince time.Time) error {
	utm, err := json.Marshal(click.UTM)
	if err != nil {
		return err
	}
	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now().UTC()
	}
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
			lockKey(click.PromotionID, click.Fingerprint))
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, `
            INSERT INTO clicks
                (promotion_id, server_id, promoter_id, ip, fingerprint, user_agent, referrer, utm, country, city, is_unique, created_at)
            SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                   NOT EXISTS (
                       SELECT 1 FROM clicks
                       WHERE promotion_id = $1 AND fingerprint = $5 AND created_at >= $11
                   ),
                   $12
            RETURNING id, is_unique`,
			click.PromotionID, click.ServerID, click.PromoterID, click.IP, click.Fingerprint,
			click.UserAgent, click.Referrer, utm, click.Country, click.City, uniqueSince, click.CreatedAt,
		).Scan(&click.ID, &click.IsUnique)
		if err != nil {
			return err
		}
		unique := 0
		if click.IsUnique {
			unique = 1
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO promotion_daily_stats (promotion_id, day, clicks, unique_clicks)
            VALUES ($1, $2::date, 1, $3)
            ON CONFLICT (promotion_id, day)
            DO UPDATE SET clicks = promotion_daily_stats.clicks + 1,
                          unique_clicks = promotion_daily_stats.unique_clicks + EXCLUDED.unique_clicks`,
			click.PromotionID, day(click.CreatedAt), unique)
		return err
	})
}

func lockKey(promotionID int64, fingerprint string) string {
	return "click:" + fingerprint + ":" + strconv.FormatInt(promotionID, 10)
}

// day is the UTC calendar day of t, the key of the daily aggregates.
func day(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// FindUnconverted returns the newest unconverted clicks of a fingerprint,
// or of an IP when no fingerprint is given.
func (l *ClickLedger) FindUnconverted(ctx context.Context, q port.UnconvertedQuery) ([]domain.Click, error) {
	column, value := "fingerprint", q.Fingerprint
	if value == "" {
		column, value = "ip", q.IP
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	rows, err := l.pool.Query(ctx, `
        SELECT id, promotion_id, server_id, promoter_id, ip, fingerprint, user_agent, referrer, utm,
               country, city, is_unique, created_at
        FROM clicks
        WHERE `+column+` = $1 AND NOT is_converted AND created_at >= $2
        ORDER BY created_at DESC, id DESC
        LIMIT $3`, value, q.Since, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Click, error) {
		var (
			c   domain.Click
			utm []byte
		)
		err := row.Scan(&c.ID, &c.PromotionID, &c.ServerID, &c.PromoterID, &c.IP, &c.Fingerprint,
			&c.UserAgent, &c.Referrer, &utm, &c.Country, &c.City, &c.IsUnique, &c.CreatedAt)
		if err != nil {
			return c, err
		}
		if len(utm) > 0 {
			// utm is informational; a malformed document must not block attribution
			_ = json.Unmarshal(utm, &c.UTM)
		}
		return c, nil
	})
}

// MarkConverted flips an unconverted click. The WHERE clause makes it a
// compare-and-set; the conversion aggregate is counted only by the winner.
func (l *ClickLedger) MarkConverted(ctx context.Context, clickID, userID int64, at time.Time) (bool, error) {
	var converted bool
	err := inTx(ctx, l.pool, func(tx pgx.Tx) error {
		var (
			promotionID int64
			createdAt   time.Time
		)
		err := tx.QueryRow(ctx, `
            UPDATE clicks
            SET is_converted = TRUE, converted_user_id = $2, converted_at = $3
            WHERE id = $1 AND NOT is_converted
            RETURNING promotion_id, created_at`, clickID, userID, at).Scan(&promotionID, &createdAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		converted = true
		_, err = tx.Exec(ctx, `
            INSERT INTO promotion_daily_stats (promotion_id, day, conversions)
            VALUES ($1, $2::date, 1)
            ON CONFLICT (promotion_id, day)
            DO UPDATE SET conversions = promotion_daily_stats.conversions + 1`,
			promotionID, day(createdAt))
		return err
	})
	if err != nil {
		return false, err
	}
	return converted, nil
}

// GetStats sums the daily aggregates of a promotion between From and To,
// both inclusive at day granularity.
func (l *ClickLedger) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	resp := &port.StatsResp{PromotionID: req.PromotionID}
	err := l.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(clicks), 0)::bigint, COALESCE(sum(unique_clicks), 0)::bigint, COALESCE(sum(conversions), 0)::bigint
        FROM promotion_daily_stats
        WHERE promotion_id = $1 AND day >= $2::date AND day <= $3::date`,
		req.PromotionID, day(req.From), day(req.To),
	).Scan(&resp.Clicks, &resp.UniqueClicks, &resp.Conversions)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
