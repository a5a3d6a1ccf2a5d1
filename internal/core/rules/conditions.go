package rules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"promotrack/internal/core/domain"
)

// ConditionFunc evaluates a custom trigger condition. value is the raw
// document value stored under the condition key.
type ConditionFunc func(ctx context.Context, value json.RawMessage, ectx domain.EvaluationContext) (bool, error)

// RegisterCondition installs the evaluator of the custom condition key. A
// custom condition without an evaluator never passes.
func (e *Engine) RegisterCondition(key string, fn ConditionFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks[key] = fn
}

func (e *Engine) hook(key string) (ConditionFunc, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.hooks[key]
	return fn, ok
}

// conditionsMet evaluates every condition of the trigger. It returns the
// name of the first failing condition, or "" when all pass. Facts missing
// from the context fall back to the user record.
func (e *Engine) conditionsMet(ctx context.Context, conds []domain.Condition, user *domain.User, ectx domain.EvaluationContext, now time.Time) (string, error) {
	for _, c := range conds {
		ok, err := e.evalCondition(ctx, c, user, ectx, now)
		if err != nil {
			return "", fmt.Errorf("condition %s: %w", c.Name(), err)
		}
		if !ok {
			return c.Name(), nil
		}
	}
	return "", nil
}

func (e *Engine) evalCondition(ctx context.Context, c domain.Condition, user *domain.User, ectx domain.EvaluationContext, now time.Time) (bool, error) {
	switch c.Kind {
	case domain.ConditionFirstRegistration:
		return flagIs(ectx.IsFirstRegistration, c.Flag), nil
	case domain.ConditionReferralValid:
		return flagIs(ectx.ReferralValid, c.Flag), nil
	case domain.ConditionReferredUserActive:
		active := ectx.ReferredUserActive
		if active == nil && user != nil {
			active = &user.Active
		}
		return flagIs(active, c.Flag), nil
	case domain.ConditionUserLevelMin:
		switch {
		case ectx.UserLevel != nil:
			return int64(*ectx.UserLevel) >= c.Number, nil
		case user != nil:
			return int64(user.Level) >= c.Number, nil
		}
		return false, nil
	case domain.ConditionAccountAgeMin:
		var created time.Time
		switch {
		case ectx.AccountCreatedAt != nil:
			created = *ectx.AccountCreatedAt
		case user != nil:
			created = user.CreatedAt
		}
		if created.IsZero() {
			return false, nil
		}
		return now.Sub(created) >= time.Duration(c.Number)*24*time.Hour, nil
	case domain.ConditionCustom:
		fn, ok := e.hook(c.Key)
		if !ok {
			e.logger.Debug("custom condition without evaluator", slog.String("key", c.Key))
			return false, nil
		}
		return fn(ctx, c.Value, ectx)
	}
	return false, nil
}

// flagIs reports whether a known fact equals want. A missing fact matches
// nothing.
func flagIs(fact *bool, want bool) bool {
	return fact != nil && *fact == want
}
