package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promotrack/internal/core/domain"
)

// RewardLedger implements port.RewardLedger using pgxpool for PostgreSQL.
type RewardLedger struct {
	pool *pgxpool.Pool
}

// NewRewardLedger returns a new ledger instance.
func NewRewardLedger(pool *pgxpool.Pool) *RewardLedger {
	return &RewardLedger{pool: pool}
}

// CreateReward inserts reward. The partial unique index on
// (setting_id, click_id) turns a second reward for the same click into a
// no-op, reported as false.
func (l *RewardLedger) CreateReward(ctx context.Context, reward *domain.Reward) (bool, error) {
	metadata, err := json.Marshal(reward.Metadata)
	if err != nil {
		return false, err
	}
	distribution, err := json.Marshal(reward.DistributionConfig)
	if err != nil {
		return false, err
	}
	if reward.DistributionConfig == nil {
		distribution = []byte("{}")
	}
	err = l.pool.QueryRow(ctx, `
        INSERT INTO rewards
            (server_id, user_id, promotion_id, click_id, setting_id, type, category, amount, status,
             priority, distribution_method, distribution_config, metadata, approved_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (setting_id, click_id) WHERE click_id IS NOT NULL DO NOTHING
        RETURNING id, created_at, updated_at`,
		reward.ServerID, reward.UserID, reward.PromotionID, reward.ClickID, reward.SettingID,
		reward.Type, reward.Category, reward.Amount, reward.Status, reward.Priority,
		reward.DistributionMethod, distribution, metadata, reward.ApprovedAt,
	).Scan(&reward.ID, &reward.CreatedAt, &reward.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetReward returns a reward by id.
func (l *RewardLedger) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	var (
		r                      domain.Reward
		distribution, metadata []byte
	)
	err := l.pool.QueryRow(ctx, `
        SELECT id, server_id, user_id, promotion_id, click_id, setting_id, type, category, amount, status,
               priority, distribution_method, distribution_config, metadata, created_at, updated_at,
               approved_at, distributed_at
        FROM rewards WHERE id = $1`, id).
		Scan(&r.ID, &r.ServerID, &r.UserID, &r.PromotionID, &r.ClickID, &r.SettingID, &r.Type, &r.Category,
			&r.Amount, &r.Status, &r.Priority, &r.DistributionMethod, &distribution, &metadata,
			&r.CreatedAt, &r.UpdatedAt, &r.ApprovedAt, &r.DistributedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(metadata, &r.Metadata); err != nil {
		return nil, err
	}
	if len(distribution) > 0 {
		if err = json.Unmarshal(distribution, &r.DistributionConfig); err != nil {
			return nil, err
		}
	}
	return &r, nil
}

// TransitionReward moves a reward from `from` to `to` only if it is still in
// `from`. The failure reason lives in the metadata document; reopening a
// failed reward removes it.
func (l *RewardLedger) TransitionReward(ctx context.Context, id int64, from, to domain.RewardStatus, at time.Time, failureReason string) (bool, error) {
	tag, err := l.pool.Exec(ctx, `
        UPDATE rewards
        SET status = $3,
            updated_at = $4,
            approved_at = CASE WHEN $3 = 'approved' THEN $4 ELSE approved_at END,
            distributed_at = CASE WHEN $3 = 'distributed' THEN $4 ELSE distributed_at END,
            metadata = CASE
                WHEN $3 = 'failed' THEN jsonb_set(metadata, '{failure_reason}', to_jsonb($5::text))
                WHEN $3 = 'pending' THEN metadata - 'failure_reason'
                ELSE metadata
            END
        WHERE id = $1 AND status = $2`,
		id, string(from), string(to), at, failureReason)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdatePendingAmount rewrites amount and metadata of a reward that is still
// pending.
func (l *RewardLedger) UpdatePendingAmount(ctx context.Context, id int64, amount int64, metadata domain.RewardMetadata) (bool, error) {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return false, err
	}
	tag, err := l.pool.Exec(ctx, `
        UPDATE rewards SET amount = $2, metadata = $3, updated_at = now()
        WHERE id = $1 AND status = 'pending'`, id, amount, raw)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountUserSettingRewards counts the rewards of a setting for a user,
// cancelled ones excluded.
func (l *RewardLedger) CountUserSettingRewards(ctx context.Context, userID, settingID int64) (int64, error) {
	var n int64
	err := l.pool.QueryRow(ctx, `
        SELECT count(*) FROM rewards
        WHERE user_id = $1 AND setting_id = $2 AND status <> 'cancelled'`, userID, settingID).Scan(&n)
	return n, err
}

// RecordSettingUsage bumps the usage or error statistics of a setting.
func (l *RewardLedger) RecordSettingUsage(ctx context.Context, settingID int64, at time.Time, evalErr error) error {
	if evalErr == nil {
		_, err := l.pool.Exec(ctx, `
            UPDATE reward_settings SET usage_count = usage_count + 1, last_used_at = $2
            WHERE id = $1`, settingID, at)
		return err
	}
	_, err := l.pool.Exec(ctx, `
        UPDATE reward_settings SET error_count = error_count + 1, last_used_at = $2, last_error = $3
        WHERE id = $1`, settingID, at, evalErr.Error())
	return err
}
