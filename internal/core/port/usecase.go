package port

import (
	"context"

	"promotrack/internal/core/domain"
)

// TrackingUseCase defines the click and conversion operations exposed by the
// engine. This interface is the primary port used by the HTTP adapter.
type TrackingUseCase interface {
	// TrackClick records a click on the promotion identified by code. A
	// fraud rejection is reported through the result, not as an error.
	// Errors are validation, not found, invalid promotion or dependency
	// failures.
	TrackClick(ctx context.Context, code string, visitor domain.VisitorContext) (*TrackClickResult, error)

	// TrackConversion attributes a conversion of userID to the visitor's
	// recent clicks and triggers reward evaluation for every attributed
	// promotion.
	TrackConversion(ctx context.Context, userID int64, conv domain.ConversionContext) (*ConversionResult, error)

	// GetStats returns aggregated click statistics of a promotion.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// UnblockIP lifts an escalated fraud block.
	UnblockIP(ctx context.Context, ip string) error
}

// RewardUseCase defines the reward operations exposed by the engine.
type RewardUseCase interface {
	// EvaluateReward previews a single setting for a user without side
	// effects.
	EvaluateReward(ctx context.Context, settingID, userID int64, ectx domain.EvaluationContext) (*PreviewResult, error)

	// ProcessPromotionReward evaluates every matching setting of the
	// promotion's server and persists the granted rewards.
	ProcessPromotionReward(ctx context.Context, promotionID, userID int64, ectx domain.EvaluationContext) (*ProcessResult, error)

	// TransitionReward moves a reward through its lifecycle. reason is
	// recorded for failed rewards.
	TransitionReward(ctx context.Context, rewardID int64, to domain.RewardStatus, reason string) (*domain.Reward, error)

	// RecalculateReward recomputes a pending reward with patch merged into
	// its original evaluation context.
	RecalculateReward(ctx context.Context, rewardID int64, patch domain.EvaluationContext) (*domain.Reward, error)

	// InvalidateRewardSettings drops cached settings of a server.
	InvalidateRewardSettings(ctx context.Context, serverID int64) error
}

// Outcome discriminates accepted requests from deliberate rejections.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// TrackClickResult is the result of TrackClick. When Outcome is rejected
// only Reason is set.
type TrackClickResult struct {
	Outcome     Outcome
	ClickID     int64
	RedirectURL string
	IsUnique    bool
	Reason      string
}

// Conversion links an attributed click to its promotion.
type Conversion struct {
	ClickID     int64
	PromotionID int64
}

// ConversionResult is the result of TrackConversion.
type ConversionResult struct {
	Outcome     Outcome
	Reason      string
	Conversions []Conversion
	Rewards     []domain.Reward
	Errors      []SettingError
}

// SettingError is a failure isolated to one reward setting.
type SettingError struct {
	SettingID   int64
	PromotionID int64
	Err         string
}

// SkippedSetting is a candidate setting that was not granted and why.
type SkippedSetting struct {
	SettingID int64
	Reason    string
}

// ProcessResult collects the outcome of evaluating every candidate setting.
type ProcessResult struct {
	Rewards []domain.Reward
	Skipped []SkippedSetting
	Errors  []SettingError
}

// PreviewResult tells whether a setting would grant a reward and how much.
type PreviewResult struct {
	SettingID  int64
	Eligible   bool
	Reason     string
	Amount     int64
	Multiplier float64
	Bonuses    []string
}
