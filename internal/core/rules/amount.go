package rules

import (
	"github.com/shopspring/decimal"

	"promotrack/internal/core/domain"
)

// MaxChainLength caps the exponent of the referral chain bonus.
const MaxChainLength = 5

// Bonus names recorded in reward metadata.
const (
	BonusFirstTime    = "first_time"
	BonusChain        = "chain"
	BonusSpecialEvent = "special_event"
	BonusRandom       = "random"
)

// Amount is a computed reward amount.
type Amount struct {
	Value      int64
	Multiplier float64
	Bonuses    []string
}

// Compute returns round(base × multiplier) where the multiplier is the
// product of every applicable bonus. random must return a value in [0, 1);
// it is only called when the random bonus is enabled. Halves round away
// from zero.
func Compute(cfg domain.RewardConfig, ectx domain.EvaluationContext, random func() float64) (Amount, error) {
	if cfg.BaseAmount < 0 {
		return Amount{}, domain.Validation("negative base amount %v", cfg.BaseAmount)
	}
	m := decimal.NewFromInt(1)
	var bonuses []string

	mult := cfg.Multipliers
	if mult.FirstTime > 0 && ectx.IsFirstRegistration != nil && *ectx.IsFirstRegistration {
		m = m.Mul(decimal.NewFromFloat(mult.FirstTime))
		bonuses = append(bonuses, BonusFirstTime)
	}
	if mult.Chain > 0 && ectx.ReferralChainLength > 0 {
		chain := decimal.NewFromFloat(mult.Chain)
		for i := 0; i < min(ectx.ReferralChainLength, MaxChainLength); i++ {
			m = m.Mul(chain)
		}
		bonuses = append(bonuses, BonusChain)
	}
	if mult.SpecialEvent > 0 && ectx.SpecialEvent != "" {
		m = m.Mul(decimal.NewFromFloat(mult.SpecialEvent))
		bonuses = append(bonuses, BonusSpecialEvent)
	}
	if mult.RandomBonus && random != nil {
		r := random()
		if r < 0 || r >= 1 {
			r = 0
		}
		m = m.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(r).Div(decimal.NewFromInt(2))))
		bonuses = append(bonuses, BonusRandom)
	}

	value := decimal.NewFromFloat(cfg.BaseAmount).Mul(m).Round(0)
	return Amount{Value: value.IntPart(), Multiplier: m.InexactFloat64(), Bonuses: bonuses}, nil
}
