package rules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"promotrack/internal/core/domain"
)

// Skip reasons reported for settings that did not grant a reward.
const (
	SkipInactive       = "inactive"
	SkipEventMismatch  = "event_mismatch"
	SkipCooldown       = "cooldown"
	SkipPerUserLimit   = "per_user_limit"
	SkipPerDayLimit    = "per_day_limit"
	SkipPerWeekLimit   = "per_week_limit"
	SkipPerMonthLimit  = "per_month_limit"
	SkipGlobalDailyCap = "global_daily_cap"
	SkipDuplicate      = "duplicate"
	// conditionPrefix is prepended to the failing condition name.
	conditionPrefix = "condition:"
)

// window is one counted limit.
type window struct {
	key    string
	limit  int64
	ttl    time.Duration
	reason string
}

// windows returns the counted limits of s for userID at now. Caps of zero
// are omitted.
func (e *Engine) windows(s *domain.RewardSetting, serverID, userID int64, now time.Time) []window {
	var out []window
	if s.Limits.PerDay > 0 {
		out = append(out, window{
			key:    fmt.Sprintf("reward:limit:%d:%d:day:%s", s.ID, userID, now.Format("20060102")),
			limit:  s.Limits.PerDay,
			ttl:    25 * time.Hour,
			reason: SkipPerDayLimit,
		})
	}
	if s.Limits.PerWeek > 0 {
		y, w := now.ISOWeek()
		out = append(out, window{
			key:    fmt.Sprintf("reward:limit:%d:%d:week:%04d%02d", s.ID, userID, y, w),
			limit:  s.Limits.PerWeek,
			ttl:    8 * 24 * time.Hour,
			reason: SkipPerWeekLimit,
		})
	}
	if s.Limits.PerMonth > 0 {
		out = append(out, window{
			key:    fmt.Sprintf("reward:limit:%d:%d:month:%s", s.ID, userID, now.Format("200601")),
			limit:  s.Limits.PerMonth,
			ttl:    32 * 24 * time.Hour,
			reason: SkipPerMonthLimit,
		})
	}
	if e.cfg.GlobalDailyCap > 0 {
		out = append(out, window{
			key:    fmt.Sprintf("reward:global:%d:%d:%s", serverID, userID, now.Format("20060102")),
			limit:  e.cfg.GlobalDailyCap,
			ttl:    25 * time.Hour,
			reason: SkipGlobalDailyCap,
		})
	}
	return out
}

func (e *Engine) cooldown(s *domain.RewardSetting) time.Duration {
	if s.Limits.CooldownSeconds > 0 {
		return time.Duration(s.Limits.CooldownSeconds) * time.Second
	}
	return e.cfg.DefaultCooldown
}

func cooldownKey(userID, settingID int64) string {
	return fmt.Sprintf("reward:cooldown:%d:%d", userID, settingID)
}

// checkLimits reads every limit without changing it. It returns the skip
// reason of the first exceeded limit, or "".
func (e *Engine) checkLimits(ctx context.Context, s *domain.RewardSetting, serverID, userID int64, now time.Time) (string, error) {
	if e.cooldown(s) > 0 {
		_, active, err := e.store.Get(ctx, cooldownKey(userID, s.ID))
		if err != nil {
			return "", domain.Dependency("read cooldown", err)
		}
		if active {
			return SkipCooldown, nil
		}
	}
	if s.Limits.PerUser > 0 {
		n, err := e.ledger.CountUserSettingRewards(ctx, userID, s.ID)
		if err != nil {
			return "", domain.Dependency("count user rewards", err)
		}
		if n >= s.Limits.PerUser {
			return SkipPerUserLimit, nil
		}
	}
	for _, w := range e.windows(s, serverID, userID, now) {
		n, err := e.store.Count(ctx, w.key)
		if err != nil {
			return "", domain.Dependency("read reward limit", err)
		}
		if n >= w.limit {
			return w.reason, nil
		}
	}
	return "", nil
}

// reservation holds the limit state taken for one reward so that it can be
// given back when the reward is not persisted.
type reservation struct {
	cooldown string
	counted  []window
}

// reserve acquires the cooldown and increments every counted limit. The
// cooldown is taken with SET NX, so of two concurrent evaluations for the
// same user and setting only one proceeds. A limit overrun discovered at
// increment time releases everything taken.
func (e *Engine) reserve(ctx context.Context, s *domain.RewardSetting, serverID, userID int64, now time.Time) (*reservation, string, error) {
	r := &reservation{}
	if d := e.cooldown(s); d > 0 {
		key := cooldownKey(userID, s.ID)
		ok, err := e.store.SetNX(ctx, key, now.Format(time.RFC3339), d)
		if err != nil {
			return nil, "", domain.Dependency("acquire cooldown", err)
		}
		if !ok {
			return nil, SkipCooldown, nil
		}
		r.cooldown = key
	}
	for _, w := range e.windows(s, serverID, userID, now) {
		n, err := e.store.Increment(ctx, w.key, 1, w.ttl)
		if err != nil {
			e.release(ctx, r)
			return nil, "", domain.Dependency("increment reward limit", err)
		}
		r.counted = append(r.counted, w)
		if n > w.limit {
			e.release(ctx, r)
			return nil, w.reason, nil
		}
	}
	return r, "", nil
}

// release gives back a reservation. Failures are logged; the affected
// counter then over-counts until its window expires. A counter that expired
// in the meantime is recreated with the window ttl, so the decrement never
// outlives its window.
func (e *Engine) release(ctx context.Context, r *reservation) {
	for _, w := range r.counted {
		if _, err := e.store.Increment(ctx, w.key, -1, w.ttl); err != nil {
			e.logger.Warn("reward limit rollback failed", slog.String("key", w.key), slog.Any("error", err))
		}
	}
	if r.cooldown != "" {
		if err := e.store.Delete(ctx, r.cooldown); err != nil {
			e.logger.Warn("cooldown rollback failed", slog.String("key", r.cooldown), slog.Any("error", err))
		}
	}
}
