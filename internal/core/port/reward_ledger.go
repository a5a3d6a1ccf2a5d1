package port

import (
	"context"
	"time"

	"promotrack/internal/core/domain"
)

// RewardLedger persists rewards and setting statistics. Status changes are
// compare-and-set operations so that two concurrent transitions of the same
// reward cannot both succeed.
type RewardLedger interface {
	// CreateReward inserts reward and sets its ID and timestamps. It reports
	// false, without error, when the same setting already rewarded the same
	// click.
	CreateReward(ctx context.Context, reward *domain.Reward) (bool, error)
	// GetReward returns a reward by id, or nil when it does not exist.
	GetReward(ctx context.Context, id int64) (*domain.Reward, error)
	// TransitionReward moves the reward from `from` to `to`. It reports
	// false when the reward is no longer in `from`.
	TransitionReward(ctx context.Context, id int64, from, to domain.RewardStatus, at time.Time, failureReason string) (bool, error)
	// UpdatePendingAmount rewrites amount and metadata of a pending reward.
	// It reports false when the reward is no longer pending.
	UpdatePendingAmount(ctx context.Context, id int64, amount int64, metadata domain.RewardMetadata) (bool, error)
	// CountUserSettingRewards returns how many non-cancelled rewards the
	// setting has granted to the user.
	CountUserSettingRewards(ctx context.Context, userID, settingID int64) (int64, error)
	// RecordSettingUsage updates the running usage statistics of a setting.
	// A nil evalErr counts as a success.
	RecordSettingUsage(ctx context.Context, settingID int64, at time.Time, evalErr error) error
}
