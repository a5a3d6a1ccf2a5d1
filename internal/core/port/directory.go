package port

import (
	"context"

	"promotrack/internal/core/domain"
)

// Directory exposes the records owned by external collaborators (promotion,
// server, user and reward setting management). The engine only reads them.
// Lookups return nil without error when the record does not exist.
type Directory interface {
	GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error)
	GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error)
	GetServer(ctx context.Context, id int64) (*domain.Server, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetRewardSetting(ctx context.Context, id int64) (*domain.RewardSetting, error)
	// GetActiveRewardSettings returns the active settings of a server,
	// highest priority first, optionally narrowed by setting and reward type.
	GetActiveRewardSettings(ctx context.Context, serverID int64, filter SettingFilter) ([]domain.RewardSetting, error)
}

// SettingFilter narrows GetActiveRewardSettings. Nil fields do not filter.
type SettingFilter struct {
	SettingType *string
	RewardType  *string
}

// SettingsInvalidator drops cached reward settings of a server after they
// were changed by their owner.
type SettingsInvalidator interface {
	InvalidateRewardSettings(ctx context.Context, serverID int64) error
}
