// Package rules evaluates reward settings against an evaluation context and
// drives the reward lifecycle. Settings are evaluated independently; a
// failure of one never affects another.
package rules

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
	"promotrack/internal/metrics"
)

// Config holds the engine-wide limits.
type Config struct {
	// GlobalDailyCap limits rewards per user per server per UTC day across
	// every setting. Zero disables it.
	GlobalDailyCap int64
	// DefaultCooldown applies to settings without their own cooldown.
	DefaultCooldown time.Duration
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{GlobalDailyCap: 10, DefaultCooldown: time.Hour}
}

// Engine evaluates reward settings.
type Engine struct {
	directory port.Directory
	ledger    port.RewardLedger
	store     port.CounterStore
	publisher port.DistributionPublisher
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
	random    func() float64

	mu    sync.RWMutex
	hooks map[string]ConditionFunc
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRandom replaces the source of the random bonus. fn must return values
// in [0, 1).
func WithRandom(fn func() float64) Option {
	return func(e *Engine) { e.random = fn }
}

// NewEngine creates an engine. publisher may be nil, in which case approved
// rewards are not signalled.
func NewEngine(directory port.Directory, ledger port.RewardLedger, store port.CounterStore, publisher port.DistributionPublisher, cfg Config, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		directory: directory,
		ledger:    ledger,
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		random:    rand.Float64,
		hooks:     make(map[string]ConditionFunc),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process evaluates every active setting of serverID whose trigger event
// matches ectx.Event and persists the granted rewards. rewardType narrows
// the candidate settings when set. Per-setting failures, malformed stored
// settings included, are collected in the result; an error is returned
// only when the candidates cannot be loaded.
func (e *Engine) Process(ctx context.Context, serverID int64, rewardType *string, ectx domain.EvaluationContext) (*port.ProcessResult, error) {
	if serverID <= 0 || ectx.UserID <= 0 {
		return nil, domain.Validation("server and user are required")
	}
	if ectx.Event == "" {
		return nil, domain.Validation("event is required")
	}
	ectx.ServerID = serverID

	user, err := e.directory.GetUser(ctx, ectx.UserID)
	if err != nil {
		return nil, domain.Dependency("get user", err)
	}
	if user == nil {
		return nil, domain.NotFound("user", ectx.UserID)
	}
	settings, err := e.directory.GetActiveRewardSettings(ctx, serverID, port.SettingFilter{RewardType: rewardType})
	if err != nil {
		return nil, domain.Dependency("load reward settings", err)
	}

	res := &port.ProcessResult{}
	now := e.now().UTC()
	for i := range settings {
		s := &settings[i]
		if !s.Active || !s.Triggers(ectx.Event) {
			continue
		}
		reward, skip, err := e.processSetting(ctx, s, user, ectx, now)
		switch {
		case err != nil:
			metrics.RewardSettingEvaluations.WithLabelValues("error").Inc()
			e.logger.Error("reward setting evaluation failed",
				slog.Int64("setting_id", s.ID),
				slog.Int64("user_id", ectx.UserID),
				slog.Any("error", err),
			)
			res.Errors = append(res.Errors, port.SettingError{SettingID: s.ID, PromotionID: deref(ectx.PromotionID), Err: err.Error()})
			e.recordUsage(ctx, s.ID, now, err)
		case skip != "":
			metrics.RewardSkipsTotal.WithLabelValues(skipLabel(skip)).Inc()
			res.Skipped = append(res.Skipped, port.SkippedSetting{SettingID: s.ID, Reason: skip})
		default:
			metrics.RewardSettingEvaluations.WithLabelValues("success").Inc()
			res.Rewards = append(res.Rewards, *reward)
			e.recordUsage(ctx, s.ID, now, nil)
		}
	}
	return res, nil
}

func (e *Engine) processSetting(ctx context.Context, s *domain.RewardSetting, user *domain.User, ectx domain.EvaluationContext, now time.Time) (*domain.Reward, string, error) {
	if err := s.Invalid(); err != nil {
		return nil, "", err
	}
	failed, err := e.conditionsMet(ctx, s.Trigger.Conditions, user, ectx, now)
	if err != nil {
		return nil, "", err
	}
	if failed != "" {
		return nil, conditionPrefix + failed, nil
	}
	skip, err := e.checkLimits(ctx, s, ectx.ServerID, ectx.UserID, now)
	if err != nil || skip != "" {
		return nil, skip, err
	}
	amount, err := Compute(s.Reward, ectx, e.random)
	if err != nil {
		return nil, "", err
	}

	res, skip, err := e.reserve(ctx, s, ectx.ServerID, ectx.UserID, now)
	if err != nil || skip != "" {
		return nil, skip, err
	}

	reward := newReward(s, ectx, amount, now)
	created, err := e.ledger.CreateReward(ctx, reward)
	if err != nil {
		e.release(ctx, res)
		return nil, "", domain.Dependency("create reward", err)
	}
	if !created {
		e.release(ctx, res)
		return nil, SkipDuplicate, nil
	}
	metrics.RewardsTotal.WithLabelValues(string(reward.Status)).Inc()
	e.logger.Info("reward granted",
		slog.Int64("reward_id", reward.ID),
		slog.Int64("setting_id", s.ID),
		slog.Int64("user_id", ectx.UserID),
		slog.Int64("amount", reward.Amount),
		slog.String("status", string(reward.Status)),
	)

	if reward.Status == domain.RewardApproved && s.AutoDistribute {
		e.signal(ctx, *reward)
	}
	return reward, "", nil
}

func newReward(s *domain.RewardSetting, ectx domain.EvaluationContext, amount Amount, now time.Time) *domain.Reward {
	r := &domain.Reward{
		ServerID:           ectx.ServerID,
		UserID:             ectx.UserID,
		PromotionID:        ectx.PromotionID,
		ClickID:            ectx.ClickID,
		SettingID:          s.ID,
		Type:               s.Type(),
		Category:           s.Reward.Category,
		Amount:             amount.Value,
		Status:             domain.RewardPending,
		Priority:           s.Priority,
		DistributionMethod: s.Reward.DistributionMethod,
		DistributionConfig: s.Reward.DistributionConfig,
		Metadata: domain.RewardMetadata{
			SettingID:    s.ID,
			Context:      ectx,
			CalculatedAt: now,
			Multiplier:   amount.Multiplier,
			Bonuses:      amount.Bonuses,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.AutoApprove {
		r.Status = domain.RewardApproved
		r.ApprovedAt = &now
	}
	return r
}

// Preview tells whether settingID would grant userID a reward for ectx and
// how much, without any write. The random bonus, when enabled, is sampled
// like a real evaluation would.
func (e *Engine) Preview(ctx context.Context, settingID, userID int64, ectx domain.EvaluationContext) (*port.PreviewResult, error) {
	if settingID <= 0 || userID <= 0 {
		return nil, domain.Validation("setting and user are required")
	}
	s, err := e.directory.GetRewardSetting(ctx, settingID)
	if err != nil {
		return nil, domain.Dependency("get reward setting", err)
	}
	if s == nil {
		return nil, domain.NotFound("reward setting", settingID)
	}
	if err = s.Invalid(); err != nil {
		return nil, err
	}
	user, err := e.directory.GetUser(ctx, userID)
	if err != nil {
		return nil, domain.Dependency("get user", err)
	}
	if user == nil {
		return nil, domain.NotFound("user", userID)
	}

	ectx.UserID = userID
	ectx.ServerID = s.ServerID
	if ectx.Event == "" {
		ectx.Event = s.Trigger.Event
	}
	res := &port.PreviewResult{SettingID: settingID}
	switch {
	case !s.Active:
		res.Reason = SkipInactive
		return res, nil
	case s.Trigger.Event != ectx.Event:
		res.Reason = SkipEventMismatch
		return res, nil
	}

	now := e.now().UTC()
	failed, err := e.conditionsMet(ctx, s.Trigger.Conditions, user, ectx, now)
	if err != nil {
		return nil, err
	}
	if failed != "" {
		res.Reason = conditionPrefix + failed
		return res, nil
	}
	if res.Reason, err = e.checkLimits(ctx, s, s.ServerID, userID, now); err != nil || res.Reason != "" {
		return res, err
	}
	amount, err := Compute(s.Reward, ectx, e.random)
	if err != nil {
		return nil, err
	}
	res.Eligible = true
	res.Amount = amount.Value
	res.Multiplier = amount.Multiplier
	res.Bonuses = amount.Bonuses
	return res, nil
}

// Transition moves a reward to `to`. Illegal transitions, and transitions
// lost to a concurrent change, are conflicts. Approving a reward whose
// setting distributes automatically publishes the distribution signal.
func (e *Engine) Transition(ctx context.Context, rewardID int64, to domain.RewardStatus, reason string) (*domain.Reward, error) {
	if !to.Valid() {
		return nil, domain.Validation("unknown reward status %q", to)
	}
	if to == domain.RewardFailed && reason == "" {
		return nil, domain.Validation("failure reason is required")
	}
	r, err := e.loadReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	from := r.Status
	if !from.CanTransitionTo(to) {
		return nil, domain.Conflict("reward %d cannot move from %s to %s", rewardID, from, to)
	}

	now := e.now().UTC()
	ok, err := e.ledger.TransitionReward(ctx, rewardID, from, to, now, reason)
	if err != nil {
		return nil, domain.Dependency("transition reward", err)
	}
	if !ok {
		return nil, domain.Conflict("reward %d is no longer %s", rewardID, from)
	}
	metrics.RewardTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()

	r.Status = to
	r.UpdatedAt = now
	switch to {
	case domain.RewardApproved:
		r.ApprovedAt = &now
	case domain.RewardDistributed:
		r.DistributedAt = &now
	case domain.RewardFailed:
		r.Metadata.FailureReason = reason
	case domain.RewardPending:
		r.Metadata.FailureReason = ""
	}
	e.logger.Info("reward transitioned",
		slog.Int64("reward_id", rewardID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)

	if to == domain.RewardApproved {
		s, err := e.directory.GetRewardSetting(ctx, r.SettingID)
		if err != nil {
			e.logger.Warn("reward setting unavailable for distribution", slog.Int64("reward_id", rewardID), slog.Any("error", err))
		} else if s != nil && s.AutoDistribute {
			e.signal(ctx, *r)
		}
	}
	return r, nil
}

// Recalculate recomputes a pending reward with patch merged into its
// original evaluation context. The first computed amount is kept in the
// metadata.
func (e *Engine) Recalculate(ctx context.Context, rewardID int64, patch domain.EvaluationContext) (*domain.Reward, error) {
	r, err := e.loadReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.RewardPending {
		return nil, domain.Conflict("reward %d is %s, only pending rewards can be recalculated", rewardID, r.Status)
	}
	s, err := e.directory.GetRewardSetting(ctx, r.SettingID)
	if err != nil {
		return nil, domain.Dependency("get reward setting", err)
	}
	if s == nil {
		return nil, domain.NotFound("reward setting", r.SettingID)
	}
	if err = s.Invalid(); err != nil {
		return nil, err
	}

	ectx := r.Metadata.Context.Merge(patch)
	amount, err := Compute(s.Reward, ectx, e.random)
	if err != nil {
		return nil, err
	}

	now := e.now().UTC()
	meta := r.Metadata
	if meta.OriginalAmount == nil {
		original := r.Amount
		meta.OriginalAmount = &original
	}
	meta.Context = ectx
	meta.Multiplier = amount.Multiplier
	meta.Bonuses = amount.Bonuses
	meta.RecalculatedAt = &now

	ok, err := e.ledger.UpdatePendingAmount(ctx, rewardID, amount.Value, meta)
	if err != nil {
		return nil, domain.Dependency("update reward amount", err)
	}
	if !ok {
		return nil, domain.Conflict("reward %d is no longer pending", rewardID)
	}
	r.Amount = amount.Value
	r.Metadata = meta
	r.UpdatedAt = now
	return r, nil
}

func (e *Engine) loadReward(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	if rewardID <= 0 {
		return nil, domain.Validation("reward id must be positive")
	}
	r, err := e.ledger.GetReward(ctx, rewardID)
	if err != nil {
		return nil, domain.Dependency("get reward", err)
	}
	if r == nil {
		return nil, domain.NotFound("reward", rewardID)
	}
	return r, nil
}

// signal hands an approved reward to the distribution process. It never
// fails the caller; a lost signal is logged and counted.
func (e *Engine) signal(ctx context.Context, r domain.Reward) {
	if e.publisher == nil {
		metrics.DistributionSignalsTotal.WithLabelValues("disabled").Inc()
		return
	}
	if err := e.publisher.PublishDistribution(ctx, r); err != nil {
		metrics.DistributionSignalsTotal.WithLabelValues("error").Inc()
		e.logger.Error("distribution signal failed", slog.Int64("reward_id", r.ID), slog.Any("error", err))
		return
	}
	metrics.DistributionSignalsTotal.WithLabelValues("published").Inc()
}

func (e *Engine) recordUsage(ctx context.Context, settingID int64, at time.Time, evalErr error) {
	if err := e.ledger.RecordSettingUsage(ctx, settingID, at, evalErr); err != nil {
		e.logger.Warn("setting usage not recorded", slog.Int64("setting_id", settingID), slog.Any("error", err))
	}
}

// skipLabel bounds the metric label cardinality of condition skips.
func skipLabel(reason string) string {
	if strings.HasPrefix(reason, conditionPrefix) {
		return "condition"
	}
	return reason
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
