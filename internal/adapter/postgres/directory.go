package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// Directory implements port.Directory over the promotion, server, user and
// reward setting tables. Those tables are owned by other services; the
// directory only reads them.
type Directory struct {
	pool *pgxpool.Pool
}

// NewDirectory returns a new directory instance.
func NewDirectory(pool *pgxpool.Pool) *Directory {
	return &Directory{pool: pool}
}

const promotionColumns = `id, server_id, promoter_id, code, link, status, expires_at, created_at, updated_at`

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(&p.ID, &p.ServerID, &p.PromoterID, &p.Code, &p.Link, &p.Status, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPromotionByCode returns a promotion by its public code.
func (d *Directory) GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	return scanPromotion(d.pool.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE code = $1`, code))
}

// GetPromotion returns a promotion by id.
func (d *Directory) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	return scanPromotion(d.pool.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id))
}

// GetServer returns a server by id.
func (d *Directory) GetServer(ctx context.Context, id int64) (*domain.Server, error) {
	var s domain.Server
	err := d.pool.QueryRow(ctx, `SELECT id, name, owner_id, active FROM servers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.OwnerID, &s.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetUser returns a user by id.
func (d *Directory) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.pool.QueryRow(ctx, `SELECT id, level, active, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Level, &u.Active, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const settingColumns = `id, server_id, setting_type, reward_type, trigger_condition, reward_config, limit_config,
auto_approve, auto_distribute, priority, active, usage_count, error_count, last_used_at, last_error`

// scanSetting decodes one reward_settings row. A JSON document that cannot
// be decoded marks the setting as malformed instead of failing the row, so
// one broken setting never hides the others of its server.
func scanSetting(row pgx.CollectableRow) (domain.RewardSetting, error) {
	var (
		s                       domain.RewardSetting
		trigger, reward, limits []byte
		lastUsed                *time.Time
	)
	err := row.Scan(
		&s.ID,
		&s.ServerID,
		&s.SettingType,
		&s.RewardType,
		&trigger,
		&reward,
		&limits,
		&s.AutoApprove,
		&s.AutoDistribute,
		&s.Priority,
		&s.Active,
		&s.UsageCount,
		&s.ErrorCount,
		&lastUsed,
		&s.LastError,
	)
	if err != nil {
		return s, err
	}
	s.LastUsedAt = lastUsed
	if err = decodeSetting(&s, trigger, reward, limits); err != nil {
		s.Malformed = err.Error()
	}
	return s, nil
}

func decodeSetting(s *domain.RewardSetting, trigger, reward, limits []byte) error {
	if err := json.Unmarshal(trigger, &s.Trigger); err != nil {
		s.Trigger = domain.TriggerCondition{}
		return fmt.Errorf("trigger: %w", err)
	}
	if err := json.Unmarshal(reward, &s.Reward); err != nil {
		return fmt.Errorf("reward config: %w", err)
	}
	if len(limits) > 0 {
		if err := json.Unmarshal(limits, &s.Limits); err != nil {
			return fmt.Errorf("limit config: %w", err)
		}
	}
	return nil
}

// GetRewardSetting returns a reward setting by id, active or not.
func (d *Directory) GetRewardSetting(ctx context.Context, id int64) (*domain.RewardSetting, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+settingColumns+` FROM reward_settings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSetting)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetActiveRewardSettings returns the active settings of a server, highest
// priority first. The reward type filter matches the explicit reward type
// or, when none is set, the setting type.
func (d *Directory) GetActiveRewardSettings(ctx context.Context, serverID int64, filter port.SettingFilter) ([]domain.RewardSetting, error) {
	query := `SELECT ` + settingColumns + `
        FROM reward_settings
        WHERE server_id = $1
          AND active
          AND ($2::text IS NULL OR setting_type = $2)
          AND ($3::text IS NULL OR COALESCE(NULLIF(reward_type, ''), setting_type) = $3)
        ORDER BY priority DESC, id`
	rows, err := d.pool.Query(ctx, query, serverID, filter.SettingType, filter.RewardType)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSetting)
}
