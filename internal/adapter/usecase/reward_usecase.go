package usecase

import (
	"context"
	"log/slog"
	"time"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
	"promotrack/internal/core/rules"
)

// RewardUseCase exposes the reward rule engine. It implements
// port.RewardUseCase.
type RewardUseCase struct {
	directory   port.Directory
	engine      *rules.Engine
	invalidator port.SettingsInvalidator
	// timeout bounds one evaluation.
	timeout         time.Duration
	conversionEvent string
	logger          *slog.Logger
}

// NewRewardUseCase wires the reward use case. invalidator may be nil when
// settings are not cached.
func NewRewardUseCase(directory port.Directory, engine *rules.Engine, invalidator port.SettingsInvalidator, timeout time.Duration, conversionEvent string, logger *slog.Logger) *RewardUseCase {
	if conversionEvent == "" {
		conversionEvent = "user_registration"
	}
	return &RewardUseCase{
		directory:       directory,
		engine:          engine,
		invalidator:     invalidator,
		timeout:         timeout,
		conversionEvent: conversionEvent,
		logger:          logger,
	}
}

func (u *RewardUseCase) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, u.timeout)
}

// EvaluateReward previews a single setting without side effects.
func (u *RewardUseCase) EvaluateReward(ctx context.Context, settingID, userID int64, ectx domain.EvaluationContext) (*port.PreviewResult, error) {
	ctx, cancel := u.bounded(ctx)
	defer cancel()
	return u.engine.Preview(ctx, settingID, userID, ectx)
}

// ProcessPromotionReward evaluates the settings of the promotion's server
// for userID. The promotion and its server must exist; rewards are not
// granted for inactive servers.
func (u *RewardUseCase) ProcessPromotionReward(ctx context.Context, promotionID, userID int64, ectx domain.EvaluationContext) (*port.ProcessResult, error) {
	if promotionID <= 0 || userID <= 0 {
		return nil, domain.Validation("promotion and user are required")
	}
	ctx, cancel := u.bounded(ctx)
	defer cancel()

	promo, err := u.directory.GetPromotion(ctx, promotionID)
	if err != nil {
		return nil, domain.Dependency("get promotion", err)
	}
	if promo == nil {
		return nil, domain.NotFound("promotion", promotionID)
	}
	server, err := u.directory.GetServer(ctx, promo.ServerID)
	if err != nil {
		return nil, domain.Dependency("get server", err)
	}
	if server == nil {
		return nil, domain.NotFound("server", promo.ServerID)
	}
	if !server.Active {
		u.logger.Info("rewards skipped for inactive server", slog.Int64("server_id", server.ID))
		return &port.ProcessResult{}, nil
	}

	ectx.UserID = userID
	ectx.PromotionID = &promotionID
	if ectx.Event == "" {
		ectx.Event = u.conversionEvent
	}
	return u.engine.Process(ctx, server.ID, nil, ectx)
}

// TransitionReward moves a reward through its lifecycle.
func (u *RewardUseCase) TransitionReward(ctx context.Context, rewardID int64, to domain.RewardStatus, reason string) (*domain.Reward, error) {
	return u.engine.Transition(ctx, rewardID, to, reason)
}

// RecalculateReward recomputes a pending reward.
func (u *RewardUseCase) RecalculateReward(ctx context.Context, rewardID int64, patch domain.EvaluationContext) (*domain.Reward, error) {
	ctx, cancel := u.bounded(ctx)
	defer cancel()
	return u.engine.Recalculate(ctx, rewardID, patch)
}

// InvalidateRewardSettings drops cached settings of a server.
func (u *RewardUseCase) InvalidateRewardSettings(ctx context.Context, serverID int64) error {
	if serverID <= 0 {
		return domain.Validation("server id must be positive")
	}
	if u.invalidator == nil {
		return nil
	}
	if err := u.invalidator.InvalidateRewardSettings(ctx, serverID); err != nil {
		return domain.Dependency("invalidate reward settings", err)
	}
	u.logger.Info("reward settings invalidated", slog.Int64("server_id", serverID))
	return nil
}
